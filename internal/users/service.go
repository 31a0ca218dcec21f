// Package users stores operator credentials and answers login checks.
// Authentication compares a candidate password against the stored bcrypt
// hash for a matching username; there are no sessions or tokens.
package users

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/dporg/internal/common"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register hashes the password and appends a credential row. Empty trimmed
// username or password is a validation error; nothing is written in that
// case.
func (s *Service) Register(ctx context.Context, username, password string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("%w: username is required", common.ErrorValidation)
	}
	if strings.TrimSpace(password) == "" {
		return fmt.Errorf("%w: password is required", common.ErrorValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return s.repo.Append(ctx, User{Username: username, PasswordHash: string(hash)})
}

// Authenticate reports whether the candidate password matches a stored hash
// for the username. A missing store or unknown username is false, not an
// error.
func (s *Service) Authenticate(ctx context.Context, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, nil
	}

	all, err := s.repo.List(ctx)
	if err != nil {
		return false, err
	}

	for _, u := range all {
		if u.Username != username {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil {
			return true, nil
		}
	}
	return false, nil
}
