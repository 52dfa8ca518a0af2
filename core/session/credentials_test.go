package session

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"
)

func makeToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("makeToken() failed: %v", err)
	}
	return token
}

// fixedExpiredToken has an exp claim of 2001-01-01; no clock will ever make
// it valid again.
const fixedExpiredToken = "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9." +
	"eyJzdWIiOiJ0ZWFjaGVyLTEiLCJleHAiOjk3ODMwNzIwMH0." +
	"invalidsignatureisfinehere"

func TestCredentialsExpired(t *testing.T) {
	now := time.Now()

	valid := makeToken(t, jwt.StandardClaims{ExpiresAt: now.Add(time.Hour).Unix()})
	expired := makeToken(t, jwt.StandardClaims{ExpiresAt: now.Add(-time.Hour).Unix()})
	noExpiry := makeToken(t, jwt.StandardClaims{Subject: "teacher-1"})

	tests := []struct {
		name        string
		token       string
		wantExpired bool
	}{
		{name: "no token", token: "", wantExpired: true},
		{name: "garbage token", token: "lmaooolol", wantExpired: true},
		{name: "wrong part count", token: "aaa.bbb", wantExpired: true},
		{name: "invalid base64 payload", token: "aaa.!!!.ccc", wantExpired: true},
		{name: "missing expiry claim", token: noExpiry, wantExpired: true},
		{name: "fixed expired token", token: fixedExpiredToken, wantExpired: true},
		{name: "expired token", token: expired, wantExpired: true},
		{name: "valid token", token: valid, wantExpired: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds := NewCredentials(tt.token, Teacher{})
			if got := creds.Expired(); got != tt.wantExpired {
				t.Errorf("Expired() = %v, want %v", got, tt.wantExpired)
			}
		})
	}
}

func TestCredentialsExpiryParsedOnce(t *testing.T) {
	exp := time.Now().Add(30 * time.Minute)
	creds := NewCredentials(makeToken(t, jwt.StandardClaims{ExpiresAt: exp.Unix()}), Teacher{})
	if got := creds.ExpiresAt.Unix(); got != exp.Unix() {
		t.Errorf("ExpiresAt = %v, want %v", got, exp.Unix())
	}
}

func TestCredentialsExpiredAtBoundary(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	creds := NewCredentials(makeToken(t, jwt.StandardClaims{ExpiresAt: exp.Unix()}), Teacher{})

	nowFunc = func() time.Time { return time.Unix(exp.Unix(), 0) }
	defer func() { nowFunc = time.Now }()

	// exp is not after now: expired
	if !creds.Expired() {
		t.Error("Expired() = false at the expiry instant, want true")
	}
}
