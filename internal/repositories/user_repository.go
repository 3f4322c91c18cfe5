package repositories

import (
	"errors"
	"strings"

	"finance-dashboard/internal/models"
)

var (
	ErrUserNotFound = errors.New("user not found")
)

// staticUserRepository serves a fixed set of users configured at startup.
type staticUserRepository struct {
	users map[string]*models.User
}

// NewStaticUserRepository indexes users by normalized email. Later entries
// replace earlier ones with the same email.
func NewStaticUserRepository(users ...*models.User) UserRepositoryInterface {
	repo := &staticUserRepository{users: make(map[string]*models.User, len(users))}
	for _, u := range users {
		if u == nil {
			continue
		}
		repo.users[normalizeEmail(u.Email)] = u
	}
	return repo
}

// GetByEmail returns a copy of the user registered under email.
func (r *staticUserRepository) GetByEmail(email string) (*models.User, error) {
	user, ok := r.users[normalizeEmail(email)]
	if !ok {
		return nil, ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	return strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "UNIQUE constraint") ||
		strings.Contains(errStr, "23505")
}
