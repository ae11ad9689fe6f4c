package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mschaff99/Challenge-Foro-Hub/config"
	"github.com/mschaff99/Challenge-Foro-Hub/internal/api"
	"github.com/mschaff99/Challenge-Foro-Hub/internal/types"
)

var (
	ErrTokenInvalid = errors.New("invalid token")
	ErrTokenExpired = errors.New("token has expired")
	ErrSigning      = errors.New("token signing failed")
)

// TokenService issues and validates signed, time-limited bearer tokens.
// It is stateless: any instance holding the same signing secret can
// validate tokens issued by any other instance.
type TokenService struct {
	secretKey []byte
	issuer    string
	audience  string
	ttl       time.Duration
}

func NewTokenService(cfg config.JWTConfig) *TokenService {
	return &TokenService{
		secretKey: []byte(cfg.SecretKey),
		issuer:    cfg.Issuer,
		audience:  cfg.Audience,
		ttl:       cfg.AccessTokenTTL,
	}
}

// Issue produces a signed HS256 token whose subject is the user's login.
func (t *TokenService) Issue(user *types.UserAuth) (string, error) {
	if len(t.secretKey) == 0 {
		return "", ErrSigning
	}

	now := time.Now()
	claims := &types.Claims{
		UserID: user.ID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.issuer,
			Subject:   user.Login,
			Audience:  jwt.ClaimStrings{t.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secretKey)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSigning, err)
	}
	return signed, nil
}

// Validate verifies signature, expiration and issuer, returning the
// claim set on success.
func (t *TokenService) Validate(tokenString string) (*types.Claims, error) {
	claims := &types.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	if claims.Issuer != t.issuer {
		return nil, ErrTokenInvalid
	}
	if !api.VerifyAudience(claims.Audience, t.audience) {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
