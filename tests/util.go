// Package testutil holds helpers shared by package tests.
package testutil

import (
	"testing"
	"time"

	"github.com/dgrijalva/jwt-go"

	"github.com/AI22-MohamedRayan/Attentiveness-Analysis/core"
)

// NopLogger discards everything; Fatal still fails the test.
type NopLogger struct {
	T *testing.T
}

var _ core.Logger = (*NopLogger)(nil)

func (l NopLogger) Enable(bool)                        {}
func (l NopLogger) Debug(string, ...interface{})       {}
func (l NopLogger) Info(string, ...interface{})        {}
func (l NopLogger) Warn(string, ...interface{})        {}
func (l NopLogger) Error(string, ...interface{})       {}
func (l NopLogger) Fatal(msg string, _ ...interface{}) { l.T.Fatal(msg) }

// MakeToken signs a token whose expiry claim is `exp`. The signature is
// irrelevant to the client (expiry is decoded unverified) but the token is
// structurally valid.
func MakeToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.StandardClaims{
		Subject:   "teacher-1",
		ExpiresAt: exp.Unix(),
		IssuedAt:  exp.Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("MakeToken() failed: %v", err)
	}
	return token
}
