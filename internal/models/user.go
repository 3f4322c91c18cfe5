package models

import (
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// User is a dashboard login. Users come from configuration, not from the
// transaction store.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
}

// NewUser derives a stable ID from the email so tokens survive restarts.
func NewUser(email, name, passwordHash string) *User {
	email = strings.ToLower(strings.TrimSpace(email))
	return &User{
		ID:           uuid.NewSHA1(uuid.NameSpaceURL, []byte("mailto:"+email)),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
	}
}

func (u *User) Validate() error {
	if u.Email == "" {
		return errors.New("email is required")
	}

	if !emailRegex.MatchString(u.Email) {
		return errors.New("invalid email format")
	}

	if u.PasswordHash == "" {
		return errors.New("password hash is required")
	}

	return nil
}

func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Email
}
