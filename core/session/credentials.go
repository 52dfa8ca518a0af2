package session

import (
	"time"

	"github.com/dgrijalva/jwt-go"
)

var nowFunc = time.Now // mockable

// Credentials binds the opaque bearer token to the profile it was issued for
// and to its locally decoded expiry. The expiry claim is extracted exactly
// once, here; callers never re-parse the token.
type Credentials struct {
	Token     string
	Teacher   Teacher
	ExpiresAt time.Time
}

// NewCredentials builds Credentials from a freshly issued (or re-loaded)
// token. The token's middle segment is decoded without signature
// verification; the server remains the authority on validity. Any decode
// failure, or a missing expiry claim, yields an already-expired credential so
// the holder is pushed back to re-authentication rather than let through.
func NewCredentials(token string, tchr Teacher) Credentials {
	return Credentials{
		Token:     token,
		Teacher:   tchr,
		ExpiresAt: tokenExpiry(token),
	}
}

// Expired reports whether the credential's expiry claim is in the past.
// Credentials whose token could not be decoded are always expired.
func (c Credentials) Expired() bool {
	return !c.ExpiresAt.After(nowFunc())
}

func tokenExpiry(token string) time.Time {
	if token == "" {
		return time.Time{}
	}
	claims := new(jwt.StandardClaims)
	if _, _, err := new(jwt.Parser).ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	if claims.ExpiresAt == 0 {
		return time.Time{}
	}
	return time.Unix(claims.ExpiresAt, 0)
}
