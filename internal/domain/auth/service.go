package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"maree/internal/core/apperror"
	"maree/pkg/logger"
)

// Service provides login and account management.
type Service struct {
	repo Repository
	jwt  *JWTService
}

// NewService creates a new auth service.
func NewService(repo Repository, jwt *JWTService) *Service {
	return &Service{repo: repo, jwt: jwt}
}

// LoginResult is a successful authentication.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *User
}

// Login authenticates by email and password and issues an access token.
func (s *Service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		// Same response for unknown email and wrong password.
		return nil, apperror.NewUnauthorized("invalid credentials")
	}

	if !user.Active || !user.CheckPassword(password) {
		return nil, apperror.NewUnauthorized("invalid credentials")
	}

	token, expiresAt, err := s.jwt.GenerateAccessToken(user.ID.String(), user.Email, user.IsAdmin)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	logger.Info(ctx, "user logged in", "user_id", user.ID, "email", user.Email)

	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

// Register creates a new back-office account.
func (s *Service) Register(ctx context.Context, email, password, displayName string) (*User, error) {
	user, err := NewUser(email, password, displayName)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	if err := user.Validate(ctx); err != nil {
		return nil, err
	}

	if existing, err := s.repo.GetByEmail(ctx, user.Email); err == nil && existing != nil {
		return nil, apperror.NewDuplicate("user", "email", user.Email)
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}
