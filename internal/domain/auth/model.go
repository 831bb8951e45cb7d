package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"maree/internal/core/apperror"
	"maree/internal/core/entity"
)

// User is a back-office account.
type User struct {
	entity.Base

	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password_hash" json:"-"`
	DisplayName  string `db:"display_name" json:"displayName"`
	IsAdmin      bool   `db:"is_admin" json:"isAdmin"`
	Active       bool   `db:"active" json:"active"`
}

// NewUser creates an active user with a bcrypt-hashed password.
func NewUser(email, password, displayName string) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &User{
		Base:         entity.NewBase(),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(hash),
		DisplayName:  displayName,
		Active:       true,
	}, nil
}

// CheckPassword compares a candidate password with the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// Validate implements entity.Validatable.
func (u *User) Validate(ctx context.Context) error {
	if !strings.Contains(u.Email, "@") {
		return apperror.NewValidation("valid email is required").
			WithDetail("field", "email")
	}
	if u.PasswordHash == "" {
		return apperror.NewValidation("password is required").
			WithDetail("field", "password")
	}
	return nil
}
