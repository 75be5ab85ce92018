package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("remote-secret"))
	require.NoError(t, err)
	return s
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, jwt.RegisteredClaims{
		Subject:   "did:plc:abc",
		ExpiresAt: jwt.NewNumericDate(exp),
	})

	got, err := TokenExpiry(token)
	require.NoError(t, err)
	assert.True(t, exp.Equal(got))
}

func TestTokenExpiry_NoExp(t *testing.T) {
	token := signedToken(t, jwt.RegisteredClaims{Subject: "did:plc:abc"})

	_, err := TokenExpiry(token)
	assert.ErrorIs(t, err, ErrNoExpiry)
}

func TestTokenExpiry_Malformed(t *testing.T) {
	_, err := TokenExpiry("not-a-jwt")
	assert.Error(t, err)
}

func TestTokenExpiresWithin(t *testing.T) {
	now := time.Now()

	soon := signedToken(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(10 * time.Second))})
	later := signedToken(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))})

	assert.True(t, TokenExpiresWithin(soon, 30*time.Second, now))
	assert.False(t, TokenExpiresWithin(later, 30*time.Second, now))
	assert.False(t, TokenExpiresWithin("garbage", 30*time.Second, now))
}

func TestTokenSubject(t *testing.T) {
	token := signedToken(t, jwt.RegisteredClaims{Subject: "did:plc:abc"})

	sub, err := TokenSubject(token)
	require.NoError(t, err)
	assert.Equal(t, "did:plc:abc", sub)
}
