package types

import "github.com/golang-jwt/jwt/v5"

// Claims is the JWT claim set carried by access tokens. The subject is
// the user's login; UserID duplicates the UUID for convenience.
type Claims struct {
	UserID string `json:"user_id,omitempty"`
	jwt.RegisteredClaims
}
