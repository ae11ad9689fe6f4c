package auth

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/mschaff99/Challenge-Foro-Hub/internal/types"
)

// MockAuthRepo is a mock implementation of the AuthRepo interface
type MockAuthRepo struct {
	mock.Mock
}

func (m *MockAuthRepo) GetUserByLogin(ctx context.Context, login string) (*types.UserAuth, error) {
	args := m.Called(ctx, login)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.UserAuth), args.Error(1)
}

func (m *MockAuthRepo) CreateUser(ctx context.Context, login, passwordHash string) (uuid.UUID, error) {
	args := m.Called(ctx, login, passwordHash)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func newTestService(repo AuthRepo) *AuthServiceImpl {
	return NewAuthService(repo, NewTokenService(testJWTConfig()), slog.Default())
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	login := "johndoe"
	secret := "password123"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	user := &types.UserAuth{
		ID:       uuid.New(),
		Login:    login,
		Password: string(hashed),
	}

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockAuthRepo)
		mockRepo.On("GetUserByLogin", ctx, login).Return(user, nil)
		service := newTestService(mockRepo)

		token, err := service.Login(ctx, login, secret)
		require.NoError(t, err)

		// The issued token must validate back to the same login.
		claims, err := NewTokenService(testJWTConfig()).Validate(token)
		require.NoError(t, err)
		assert.Equal(t, login, claims.Subject)
		mockRepo.AssertExpectations(t)
	})

	t.Run("UnknownLogin", func(t *testing.T) {
		mockRepo := new(MockAuthRepo)
		mockRepo.On("GetUserByLogin", ctx, "nobody").Return(nil, types.ErrNotFound)
		service := newTestService(mockRepo)

		_, err := service.Login(ctx, "nobody", secret)
		assert.ErrorIs(t, err, types.ErrUnauthenticated)
	})

	t.Run("WrongSecret", func(t *testing.T) {
		mockRepo := new(MockAuthRepo)
		mockRepo.On("GetUserByLogin", ctx, login).Return(user, nil)
		service := newTestService(mockRepo)

		_, err := service.Login(ctx, login, "wrong-password")
		// Same generic outcome as an unknown login.
		assert.ErrorIs(t, err, types.ErrUnauthenticated)
	})

	t.Run("SigningFailure", func(t *testing.T) {
		mockRepo := new(MockAuthRepo)
		mockRepo.On("GetUserByLogin", ctx, login).Return(user, nil)
		cfg := testJWTConfig()
		cfg.SecretKey = ""
		service := NewAuthService(mockRepo, NewTokenService(cfg), slog.Default())

		_, err := service.Login(ctx, login, secret)
		assert.ErrorIs(t, err, types.ErrUnauthenticated)
	})
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		id := uuid.New()
		mockRepo := new(MockAuthRepo)
		mockRepo.On("CreateUser", ctx, "johndoe", mock.MatchedBy(func(hash string) bool {
			return bcrypt.CompareHashAndPassword([]byte(hash), []byte("password123")) == nil
		})).Return(id, nil)
		service := newTestService(mockRepo)

		got, err := service.Register(ctx, "johndoe", "password123")
		require.NoError(t, err)
		assert.Equal(t, id, got)
		mockRepo.AssertExpectations(t)
	})

	t.Run("DuplicateLogin", func(t *testing.T) {
		mockRepo := new(MockAuthRepo)
		mockRepo.On("CreateUser", ctx, "johndoe", mock.Anything).Return(uuid.Nil, types.ErrConflict)
		service := newTestService(mockRepo)

		_, err := service.Register(ctx, "johndoe", "password123")
		assert.ErrorIs(t, err, types.ErrConflict)
	})

	t.Run("MissingFields", func(t *testing.T) {
		service := newTestService(new(MockAuthRepo))
		_, err := service.Register(ctx, "", "password123")
		assert.ErrorIs(t, err, types.ErrValidation)
	})
}
