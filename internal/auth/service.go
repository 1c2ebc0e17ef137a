// Copyright (c) 2026 Miranda Hotel. All rights reserved.

/*
Package auth implements staff authentication for the hotel back office.

It covers the credential check, JWT issuance, and the login-attempt
throttle. Session resolution for incoming requests lives in the
middleware package; this package only mints and ends sessions.

Architecture:

  - Service: Orchestrates the login flow (lookup, verify, throttle, issue).
  - Throttle: Redis-backed counter of failed attempts per email.
  - Handler: HTTP delivery for POST /login and POST /logout.
*/
package auth

import (
	"context"
	"fmt"

	"github.com/mirandahotel/api/internal/platform/apperr"
	"github.com/mirandahotel/api/internal/platform/sec"
	"github.com/mirandahotel/api/internal/staff"
)

// # Contracts & Types

// TokenIssuer defines the contract for minting signed session tokens.
type TokenIssuer interface {
	// Issue creates a signed JWT whose subject is the staff email.
	Issue(email string) (string, error)
}

// StaffDirectory is the slice of the staff store the login flow needs.
type StaffDirectory interface {
	// FindByEmail returns the account with the given email, or
	// apperr.NotFound when no staff member is registered with it.
	FindByEmail(ctx context.Context, email string) (*staff.Staff, error)
}

// Service implements the authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to the credential
// check or throttle logic must be reviewed by a second engineer.
type Service struct {
	directory StaffDirectory
	tokens    TokenIssuer
	throttle  Throttle
}

// NewService constructs a new auth [Service] with its dependencies.
func NewService(directory StaffDirectory, tokens TokenIssuer, throttle Throttle) *Service {
	return &Service{
		directory: directory,
		tokens:    tokens,
		throttle:  throttle,
	}
}

// # Authentication Flow

/*
Login verifies staff credentials and mints a session token.

Description: Resolves the account by email, checks the password against
the stored bcrypt hash, and issues an HS256 JWT. Every attempt counts
against the per-email throttle; a successful login resets it.

Parameters:
  - context: context.Context
  - email: string
  - password: string

Returns:
  - *staff.Staff: The authenticated account
  - string: Signed JWT
  - error: NotFound (unknown email), Unauthorized (bad password),
    RateLimited (budget spent), or infrastructure errors
*/
func (service *Service) Login(context context.Context, email, password string) (*staff.Staff, string, error) {

	// Count the attempt before touching credentials so failures and
	// unknown emails burn budget alike.
	if err := service.throttle.Hit(context, email); err != nil {
		return nil, "", err
	}

	// Resolve the account. An unknown email surfaces as NotFound, which
	// the dashboard renders as "User not found".
	member, err := service.directory.FindByEmail(context, email)
	if err != nil {
		return nil, "", err
	}

	// Constant-time credential check via bcrypt
	if !sec.CheckPasswordHash(password, member.PasswordHash) {
		return nil, "", apperr.Unauthorized("Invalid credentials")
	}

	// Mint the session token
	token, err := service.tokens.Issue(member.Email)
	if err != nil {
		return nil, "", fmt.Errorf("auth_service_issue_failed: %w", err)
	}

	// A successful login forgives earlier failures. Throttle bookkeeping
	// must never fail the login itself.
	_ = service.throttle.Reset(context, email)

	return member, token, nil
}
