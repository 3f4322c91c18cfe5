package handlers

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// Keys set on the echo context by the auth middleware.
const (
	tokenJTIContextKey    = "token_jti"
	accessTokenContextKey = "access_token"
)

func getTokenJTI(c echo.Context) string {
	jti, _ := c.Get(tokenJTIContextKey).(string)
	return jti
}

func getAccessToken(c echo.Context) string {
	token, _ := c.Get(accessTokenContextKey).(string)
	return token
}

// getIntParam reads an integer query parameter, returning defaultValue when
// it is absent or not a number.
func getIntParam(c echo.Context, name string, defaultValue int) int {
	value, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return defaultValue
	}
	return value
}
