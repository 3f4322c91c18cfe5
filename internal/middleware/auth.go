package middleware

import (
	stderrors "errors"

	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/handlers"
	"finance-dashboard/internal/repositories"
	"finance-dashboard/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys set by RequireAuth.
const (
	UserIDContextKey      = "user_id"
	UserEmailContextKey   = "user_email"
	UserNameContextKey    = "user_name"
	TokenJTIContextKey    = "token_jti"
	AccessTokenContextKey = "access_token"
)

// RequireAuth rejects requests without a valid, non-revoked bearer token.
// The token's JWT ID doubles as the query session key downstream.
func RequireAuth(tokenService services.TokenServiceInterface, blacklistedTokenRepo repositories.BlacklistedTokenRepositoryInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateAccessToken(token)
			if err != nil {
				if stderrors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			revoked, err := blacklistedTokenRepo.GetByJTI(claims.ID)
			switch {
			case err == nil && revoked != nil:
				return handlers.SendError(c, errors.AuthTokenRevoked)
			case err != nil && !stderrors.Is(err, repositories.ErrTokenNotFound):
				return handlers.SendSystemError(c, err)
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Invalid user ID in token"))
			}

			c.Set(UserIDContextKey, userID)
			c.Set(UserEmailContextKey, claims.Email)
			c.Set(UserNameContextKey, claims.Name)
			c.Set(TokenJTIContextKey, claims.ID)
			c.Set(AccessTokenContextKey, token)

			return next(c)
		}
	}
}
