package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mschaff99/Challenge-Foro-Hub/config"
	"github.com/mschaff99/Challenge-Foro-Hub/internal/types"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		SecretKey:      "test-secret",
		Issuer:         "test-issuer",
		Audience:       "test-audience",
		AccessTokenTTL: 15 * time.Minute,
	}
}

func testUser() *types.UserAuth {
	return &types.UserAuth{
		ID:    uuid.New(),
		Login: "johndoe",
	}
}

func TestTokenService_IssueAndValidate(t *testing.T) {
	svc := NewTokenService(testJWTConfig())
	user := testUser()

	token, err := svc.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, user.Login, claims.Subject)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, "test-issuer", claims.Issuer)
}

func TestTokenService_Expired(t *testing.T) {
	cfg := testJWTConfig()
	cfg.AccessTokenTTL = -1 * time.Minute
	svc := NewTokenService(cfg)

	token, err := svc.Issue(testUser())
	require.NoError(t, err)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService(testJWTConfig())
	token, err := issuer.Issue(testUser())
	require.NoError(t, err)

	other := testJWTConfig()
	other.SecretKey = "a-different-secret"
	validator := NewTokenService(other)

	_, err = validator.Validate(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_WrongIssuer(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Issuer = "someone-else"
	issuer := NewTokenService(cfg)
	token, err := issuer.Issue(testUser())
	require.NoError(t, err)

	validator := NewTokenService(testJWTConfig())
	_, err = validator.Validate(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_WrongAudience(t *testing.T) {
	cfg := testJWTConfig()
	cfg.Audience = "someone-else"
	issuer := NewTokenService(cfg)
	token, err := issuer.Issue(testUser())
	require.NoError(t, err)

	validator := NewTokenService(testJWTConfig())
	_, err = validator.Validate(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenService_EmptySecret(t *testing.T) {
	cfg := testJWTConfig()
	cfg.SecretKey = ""
	svc := NewTokenService(cfg)

	_, err := svc.Issue(testUser())
	assert.ErrorIs(t, err, ErrSigning)
}

func TestTokenService_Garbage(t *testing.T) {
	svc := NewTokenService(testJWTConfig())
	_, err := svc.Validate("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
