package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mschaff99/Challenge-Foro-Hub/internal/types"
)

var _ AuthService = (*AuthServiceImpl)(nil)

// AuthService defines the interface for authentication operations.
type AuthService interface {
	// Login verifies credentials and returns a signed access token.
	Login(ctx context.Context, login, secret string) (string, error)

	// Register creates a new user with a bcrypt-hashed secret.
	Register(ctx context.Context, login, secret string) (uuid.UUID, error)
}

// AuthServiceImpl implements the AuthService interface.
type AuthServiceImpl struct {
	logger *slog.Logger
	repo   AuthRepo
	tokens *TokenService
}

// NewAuthService creates a new AuthService.
func NewAuthService(repo AuthRepo, tokens *TokenService, logger *slog.Logger) *AuthServiceImpl {
	return &AuthServiceImpl{
		logger: logger,
		repo:   repo,
		tokens: tokens,
	}
}

// Login authenticates a user and returns an access token. Every failure
// mode (unknown login, secret mismatch, signing failure) collapses into
// ErrUnauthenticated so the caller cannot tell which half of the
// credential was wrong.
func (s *AuthServiceImpl) Login(ctx context.Context, login, secret string) (string, error) {
	user, err := s.repo.GetUserByLogin(ctx, login)
	if err != nil {
		if !errors.Is(err, types.ErrNotFound) {
			s.logger.ErrorContext(ctx, "Credential lookup failed", slog.Any("error", err))
		}
		return "", types.ErrUnauthenticated
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(secret)); err != nil {
		return "", types.ErrUnauthenticated
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		s.logger.ErrorContext(ctx, "Token issuance failed", slog.Any("error", err))
		return "", types.ErrUnauthenticated
	}
	return token, nil
}

// Register creates a new user record.
func (s *AuthServiceImpl) Register(ctx context.Context, login, secret string) (uuid.UUID, error) {
	if login == "" || secret == "" {
		return uuid.Nil, types.ErrValidation
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		s.logger.ErrorContext(ctx, "Password hashing failed", slog.Any("error", err))
		return uuid.Nil, types.ErrInternal
	}

	return s.repo.CreateUser(ctx, login, string(hashed))
}
