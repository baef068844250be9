package auth

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/imdhruv9/uttam-printing/internal/apperr"
	"github.com/imdhruv9/uttam-printing/internal/modules/user"
)

type service struct {
	userRepo user.Repository
	tokens   *TokenManager
}

// NewService creates a new auth service.
func NewService(userRepo user.Repository, tokens *TokenManager) Service {
	return &service{userRepo: userRepo, tokens: tokens}
}

// Login verifies the credentials and issues a signed token. The same
// generic error covers unknown usernames and wrong passwords.
func (s *service) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		zap.S().Debugw("login rejected", "username", username)
		return nil, apperr.Authentication("Invalid username or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		zap.S().Debugw("login rejected", "username", username)
		return nil, apperr.Authentication("Invalid username or password")
	}

	token, err := s.tokens.Issue(u.Username, u.Roles)
	if err != nil {
		return nil, err
	}

	zap.S().Infow("user logged in", "username", u.Username)
	return &LoginResponse{Token: token, Username: u.Username, Roles: u.Roles}, nil
}
