package handlers

import (
	stderrors "errors"
	"net/http"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// AuthHandler serves login, logout and the session check.
type AuthHandler struct {
	authService  services.AuthServiceInterface
	tokenService services.TokenServiceInterface
	sessions     services.SessionManagerInterface
}

func NewAuthHandler(
	authService services.AuthServiceInterface,
	tokenService services.TokenServiceInterface,
	sessions services.SessionManagerInterface,
) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		tokenService: tokenService,
		sessions:     sessions,
	}
}

// Login exchanges the dashboard credentials for an access token
// @Summary Login
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	resp, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if stderrors.Is(err, services.ErrInvalidCredentials) {
			return SendError(c, errors.AuthInvalidCredentials)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// Logout revokes the presented token and drops its query session
// @Summary Logout
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing token"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token := getAccessToken(c)
	if token == "" {
		return SendError(c, errors.AuthMissingToken)
	}

	ctx := c.Request().Context()
	if err := h.authService.Logout(ctx, token); err != nil {
		return SendSystemError(c, err)
	}
	h.sessions.Remove(ctx, getTokenJTI(c))

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Logged out successfully"})
}

// Check reports whether the Authorization header carries a usable token.
// It never fails: anything unusable is simply unauthenticated.
func (h *AuthHandler) Check(c echo.Context) error {
	authenticated := false
	if token, err := h.tokenService.ExtractTokenFromHeader(c.Request().Header.Get("Authorization")); err == nil {
		authenticated = h.authService.CheckAuth(token)
	}

	return c.JSON(http.StatusOK, dto.AuthCheckResponse{Authenticated: authenticated})
}
