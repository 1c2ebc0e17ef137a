// Copyright (c) 2026 Miranda Hotel. All rights reserved.

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (hashing, JWT signing) from
// the domain logic. It is an Infrastructure service injected into the
// application layer behind small interfaces, so tests can run with a
// distinct secret per test case.
package sec

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the payload embedded inside an access token.
//
// # What is NOT in here
//
// Earlier revisions of the system carried the plaintext password inside the
// claim and re-checked it on every request. The claim now holds only the
// principal's email; the session resolver re-fetches the staff record from
// the store, so token validity never round-trips the secret.
type Claims struct {
	jwt.RegisteredClaims

	// Email identifies the principal. Abbreviated key keeps the token small.
	Email string `json:"eml"`
}

// TokenService signs and verifies HS256 access tokens.
//
// The signing secret is injected at construction — never read from a global
// or defaulted. A process without a secret must not start.
type TokenService struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// ErrSecretMissing is returned when the service is constructed without a
// signing secret. It must abort startup.
var ErrSecretMissing = errors.New("sec: signing secret is not configured")

// NewTokenService creates a TokenService with a fixed token lifetime.
func NewTokenService(secret, issuer string, ttl time.Duration) (*TokenService, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrSecretMissing
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("sec: token ttl must be positive, got %s", ttl)
	}

	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}, nil
}

// Issue signs a new access token for the given principal email.
func (service *TokenService) Issue(email string) (string, error) {
	currentTime := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(service.ttl)),
		},
		Email: email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Verify checks the signature and validity window of a token string.
//
// A tampered signature, a malformed token, and an expired token all fail the
// same way: a wrapped parse error, never a partially-decoded claim.
func (service *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("sec: invalid token claims")
	}

	return claims, nil
}
