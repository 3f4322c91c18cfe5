package repositories

import (
	"errors"
	"sync"
	"time"

	"finance-dashboard/internal/models"

	"gorm.io/gorm"
)

var (
	ErrTokenNotFound           = errors.New("token not found")
	ErrTokenAlreadyBlacklisted = errors.New("token already blacklisted")
)

type blacklistedTokenRepository struct {
	db *gorm.DB
}

// NewBlacklistedTokenRepository creates a new blacklisted token repository
func NewBlacklistedTokenRepository(db *gorm.DB) BlacklistedTokenRepositoryInterface {
	return &blacklistedTokenRepository{db: db}
}

// Create adds a token to the blacklist
func (r *blacklistedTokenRepository) Create(token *models.BlacklistedToken) error {
	token.BlacklistedAt = time.Now()
	if err := r.db.Create(token).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrTokenAlreadyBlacklisted
		}
		return err
	}
	return nil
}

// GetByJTI retrieves a blacklisted token by its JTI
func (r *blacklistedTokenRepository) GetByJTI(jti string) (*models.BlacklistedToken, error) {
	var token models.BlacklistedToken
	err := r.db.Where("jti = ?", jti).First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, err
	}
	return &token, nil
}

// DeleteExpired removes expired tokens from the blacklist
func (r *blacklistedTokenRepository) DeleteExpired() (int64, error) {
	result := r.db.Where("expires_at < ?", time.Now()).Delete(&models.BlacklistedToken{})
	return result.RowsAffected, result.Error
}

// memoryBlacklistedTokenRepository backs the blacklist when the dashboard
// runs without a database.
type memoryBlacklistedTokenRepository struct {
	mu     sync.RWMutex
	tokens map[string]models.BlacklistedToken
}

func NewMemoryBlacklistedTokenRepository() BlacklistedTokenRepositoryInterface {
	return &memoryBlacklistedTokenRepository{tokens: make(map[string]models.BlacklistedToken)}
}

func (r *memoryBlacklistedTokenRepository) Create(token *models.BlacklistedToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tokens[token.JTI]; exists {
		return ErrTokenAlreadyBlacklisted
	}
	if err := token.BeforeCreate(nil); err != nil {
		return err
	}
	token.BlacklistedAt = time.Now()
	r.tokens[token.JTI] = *token
	return nil
}

func (r *memoryBlacklistedTokenRepository) GetByJTI(jti string) (*models.BlacklistedToken, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	token, ok := r.tokens[jti]
	if !ok {
		return nil, ErrTokenNotFound
	}
	return &token, nil
}

func (r *memoryBlacklistedTokenRepository) DeleteExpired() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed int64
	for jti, token := range r.tokens {
		if token.IsExpired() {
			delete(r.tokens, jti)
			removed++
		}
	}
	return removed, nil
}
