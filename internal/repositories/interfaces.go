package repositories

import (
	"context"

	"finance-dashboard/internal/models"
)

// TransactionRepositoryInterface is the record store: read-only access to
// the transaction dataset, most recent first.
type TransactionRepositoryInterface interface {
	LoadAll(ctx context.Context, query models.RecordQuery) ([]models.Transaction, error)
	Count(ctx context.Context, query models.RecordQuery) (int64, error)
}

// BlacklistedTokenRepositoryInterface defines the contract for revoked access tokens
type BlacklistedTokenRepositoryInterface interface {
	Create(token *models.BlacklistedToken) error
	GetByJTI(jti string) (*models.BlacklistedToken, error)
	DeleteExpired() (int64, error)
}

// UserRepositoryInterface defines the contract for looking up dashboard users
type UserRepositoryInterface interface {
	GetByEmail(email string) (*models.User, error)
}
