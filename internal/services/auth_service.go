package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories"

	"github.com/google/uuid"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService is the credential collaborator of the dashboard: login with
// email and password, logout, and token checks.
type AuthService struct {
	userRepo             repositories.UserRepositoryInterface
	blacklistedTokenRepo repositories.BlacklistedTokenRepositoryInterface
	passwordService      PasswordServiceInterface
	tokenService         TokenServiceInterface
	metrics              MetricsRecorderInterface
	logger               *slog.Logger
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	blacklistedTokenRepo repositories.BlacklistedTokenRepositoryInterface,
	passwordService PasswordServiceInterface,
	tokenService TokenServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AuthServiceInterface {
	if metrics == nil {
		metrics = NewNoopMetrics()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		userRepo:             userRepo,
		blacklistedTokenRepo: blacklistedTokenRepo,
		passwordService:      passwordService,
		tokenService:         tokenService,
		metrics:              metrics,
		logger:               logger,
	}
}

// Login checks the credentials and issues an access token. Unknown email
// and wrong password fail the same way.
func (s *AuthService) Login(ctx context.Context, email, password string) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			s.failedLogin(ctx, "user_not_found")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !s.passwordService.ComparePassword(password, user.PasswordHash) {
		s.failedLogin(ctx, "invalid_password")
		return nil, ErrInvalidCredentials
	}

	accessToken, expiresAt, err := s.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	s.metrics.IncrementCounter(MetricAuthenticationEvent, map[string]string{"event_type": "login_success"})
	s.logger.InfoContext(ctx, "user logged in",
		slog.String("event_type", "login_success"),
		slog.String("user_id", user.ID.String()),
		slog.String("request_id", getRequestID(ctx)),
	)

	return &dto.LoginResponse{
		User: dto.UserResponse{
			ID:    user.ID.String(),
			Email: user.Email,
			Name:  user.DisplayName(),
		},
		AccessToken: accessToken,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
	}, nil
}

// Logout revokes accessToken until it expires. Tokens that no longer
// validate are still revoked by JTI so they cannot be replayed.
func (s *AuthService) Logout(ctx context.Context, accessToken string) error {
	claims, err := s.tokenService.ValidateAccessToken(accessToken)
	if err != nil {
		jti, _ := s.tokenService.GetJTI(accessToken)
		if jti != "" {
			if err := s.blacklistToken(jti, uuid.Nil, time.Now().Add(24*time.Hour)); err != nil {
				s.logger.ErrorContext(ctx, "failed to blacklist expired token",
					slog.Any("error", err),
					slog.String("jti", jti),
				)
			}
		}
		return nil
	}

	userID, _ := uuid.Parse(claims.UserID)
	expiry, err := s.tokenService.GetTokenExpiry(accessToken)
	if err != nil {
		expiry = time.Now().Add(24 * time.Hour)
	}

	if err := s.blacklistToken(claims.ID, userID, expiry); err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}

	s.metrics.IncrementCounter(MetricAuthenticationEvent, map[string]string{"event_type": "logout"})
	s.logger.InfoContext(ctx, "user logged out",
		slog.String("event_type", "logout"),
		slog.String("user_id", claims.UserID),
		slog.String("request_id", getRequestID(ctx)),
	)
	return nil
}

// CheckAuth reports whether accessToken is valid and not revoked. Any
// blacklist lookup failure counts as not authenticated.
func (s *AuthService) CheckAuth(accessToken string) bool {
	claims, err := s.tokenService.ValidateAccessToken(accessToken)
	if err != nil {
		return false
	}

	_, err = s.blacklistedTokenRepo.GetByJTI(claims.ID)
	return errors.Is(err, repositories.ErrTokenNotFound)
}

func (s *AuthService) blacklistToken(jti string, userID uuid.UUID, expiresAt time.Time) error {
	err := s.blacklistedTokenRepo.Create(&models.BlacklistedToken{
		JTI:           jti,
		UserID:        userID,
		ExpiresAt:     expiresAt,
		BlacklistedAt: time.Now(),
	})
	if errors.Is(err, repositories.ErrTokenAlreadyBlacklisted) {
		return nil
	}
	return err
}

func (s *AuthService) failedLogin(ctx context.Context, reason string) {
	s.metrics.IncrementCounter(MetricAuthenticationEvent, map[string]string{"event_type": "login_failed"})
	s.logger.WarnContext(ctx, "login failed",
		slog.String("event_type", "login_failed"),
		slog.String("reason", reason),
		slog.String("request_id", getRequestID(ctx)),
	)
}
