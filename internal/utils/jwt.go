package utils // package utils provides helper functions for token creation and hashing

import (
	"time" // time utilities for generating expirations

	"github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens

	"github.com/plugueplus/plugueplus-api/internal/model"
)

// AccessToken represents a signed JWT access token along with its expiry.
// The Token field contains the JWT string.  Exp stores the expiration
// timestamp as a time.Time.  Tokens are short-lived and presented in the
// Authorization header when calling protected endpoints; there is no
// refresh flow, clients log in again when the token expires.
type AccessToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewAccessToken builds and signs an HS256 JWT for a user.  The claims
// carry the identity the API needs downstream: subject id, email and
// user_type, plus the standard iat/exp pair.  ttlSec controls the token
// lifetime in seconds.
func NewAccessToken(secret string, user model.User, ttlSec int) (AccessToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlSec) * time.Second)
	claims := jwt.MapClaims{
		"sub":       user.ID,
		"email":     user.Email,
		"user_type": user.UserType,
		"iat":       now.Unix(),
		"exp":       exp.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}
