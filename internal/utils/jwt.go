package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNoExpiry = errors.New("token has no exp claim")

// TokenExpiry reads the exp claim of tokenString without verifying its
// signature. The signing key belongs to the remote service.
func TokenExpiry(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, err
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiry
	}

	return exp.Time, nil
}

// TokenExpiresWithin reports whether tokenString expires before now+window.
// Tokens whose expiry cannot be read are reported as not expiring, leaving
// the server to reject them.
func TokenExpiresWithin(tokenString string, window time.Duration, now time.Time) bool {
	exp, err := TokenExpiry(tokenString)
	if err != nil {
		return false
	}
	return exp.Before(now.Add(window))
}

// TokenSubject returns the sub claim (the account DID) of tokenString
// without verifying its signature.
func TokenSubject(tokenString string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", err
	}

	return token.Claims.GetSubject()
}
