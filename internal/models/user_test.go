package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_Validate(t *testing.T) {
	tests := []struct {
		name    string
		user    User
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid user",
			user:    User{Email: "a@a.com", PasswordHash: "hash"},
			wantErr: false,
		},
		{
			name:    "invalid email",
			user:    User{Email: "invalid-email", PasswordHash: "hash"},
			wantErr: true,
			errMsg:  "invalid email format",
		},
		{
			name:    "missing email",
			user:    User{PasswordHash: "hash"},
			wantErr: true,
			errMsg:  "email is required",
		},
		{
			name:    "missing password hash",
			user:    User{Email: "a@a.com"},
			wantErr: true,
			errMsg:  "password hash is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewUser_StableID(t *testing.T) {
	a := NewUser("A@A.com ", "Ana", "hash")
	b := NewUser("a@a.com", "Other", "hash")

	assert.Equal(t, "a@a.com", a.Email)
	assert.Equal(t, a.ID, b.ID)
	assert.Equal(t, "Ana", a.DisplayName())
	assert.Equal(t, "a@a.com", (&User{Email: "a@a.com"}).DisplayName())
}
