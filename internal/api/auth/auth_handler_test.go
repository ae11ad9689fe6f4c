package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mschaff99/Challenge-Foro-Hub/app/observability/metrics"
	"github.com/mschaff99/Challenge-Foro-Hub/internal/types"
)

// MockAuthService is a mock implementation of the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, login, secret string) (string, error) {
	args := m.Called(ctx, login, secret)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Register(ctx context.Context, login, secret string) (uuid.UUID, error) {
	args := m.Called(ctx, login, secret)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func postJSON(t *testing.T, handler http.HandlerFunc, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	js, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(js))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func TestAuthHandler_Login(t *testing.T) {
	metrics.InitAppMetrics()

	t.Run("Success", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Login", mock.Anything, "johndoe", "password123").Return("signed-token", nil)
		h := NewAuthHandler(svc, slog.Default())

		rr := postJSON(t, h.Login, "/login", LoginRequest{Login: "johndoe", Secret: "password123"})

		require.Equal(t, http.StatusOK, rr.Code)
		var resp LoginResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "signed-token", resp.Token)
	})

	t.Run("BadCredentialsAreGeneric", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Login", mock.Anything, "johndoe", "wrong").Return("", types.ErrUnauthenticated)
		h := NewAuthHandler(svc, slog.Default())

		rr := postJSON(t, h.Login, "/login", LoginRequest{Login: "johndoe", Secret: "wrong"})

		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "authentication failed")
		// Must not leak which half of the credential was wrong.
		assert.NotContains(t, rr.Body.String(), "password")
		assert.NotContains(t, rr.Body.String(), "user")
	})

	t.Run("EmptyBody", func(t *testing.T) {
		h := NewAuthHandler(new(MockAuthService), slog.Default())
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		rr := httptest.NewRecorder()
		h.Login(rr, req)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAuthHandler_Register(t *testing.T) {
	metrics.InitAppMetrics()

	t.Run("Created", func(t *testing.T) {
		id := uuid.New()
		svc := new(MockAuthService)
		svc.On("Register", mock.Anything, "johndoe", "password123").Return(id, nil)
		h := NewAuthHandler(svc, slog.Default())

		rr := postJSON(t, h.Register, "/register", RegisterRequest{Login: "johndoe", Secret: "password123"})

		require.Equal(t, http.StatusCreated, rr.Code)
		var resp RegisterResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, id.String(), resp.ID)
		assert.Equal(t, "johndoe", resp.Login)
	})

	t.Run("DuplicateLogin", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Register", mock.Anything, "johndoe", "password123").Return(uuid.Nil, types.ErrConflict)
		h := NewAuthHandler(svc, slog.Default())

		rr := postJSON(t, h.Register, "/register", RegisterRequest{Login: "johndoe", Secret: "password123"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
