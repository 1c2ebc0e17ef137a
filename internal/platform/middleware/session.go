// Copyright (c) 2026 Miranda Hotel. All rights reserved.

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/mirandahotel/api/internal/platform/apperr"
	"github.com/mirandahotel/api/internal/platform/constants"
	"github.com/mirandahotel/api/internal/platform/ctxutil"
	"github.com/mirandahotel/api/internal/platform/respond"
	"github.com/mirandahotel/api/internal/platform/sec"
	"github.com/mirandahotel/api/internal/staff"
)

// TokenVerifier is the contract the session resolver needs to verify tokens.
//
// # Why an interface?
//
// It decouples the middleware from the concrete [sec.TokenService], so unit
// tests can inject a verifier built with a throwaway secret.
type TokenVerifier interface {
	Verify(tokenString string) (*sec.Claims, error)
}

// PrincipalSource resolves a verified claim back to a stored staff record.
type PrincipalSource interface {
	FindByEmail(ctx context.Context, email string) (*staff.Staff, error)
}

// Token source names accepted in [SessionConfig.Sources].
const (
	SourceHeader = "header"
	SourceCookie = "cookie"
)

// SessionConfig controls where the resolver looks for a carried token and in
// which order. The precedence changed between revisions of the system, so it
// is configuration rather than a hardcoded order.
type SessionConfig struct {
	// Sources is the lookup order, e.g. {"header", "cookie"}.
	Sources []string

	// CookieName is the cookie carrying the token (default "token").
	CookieName string
}

// DefaultSessionConfig returns the final-revision precedence:
// Authorization header first, token cookie as fallback.
func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		Sources:    []string{SourceHeader, SourceCookie},
		CookieName: constants.TokenCookieName,
	}
}

// ResolveSession inspects the request for a carried access token and, when
// one verifies, attaches the matching staff principal to the request context.
//
// # Flow (per request)
//
//	NoToken       -> Anonymous (public routes stay reachable)
//	TokenPresent  -> Verified   -> PrincipalAttached
//	              -> Verified   -> claim malformed  -> 401, chain halts
//	              -> NotVerified                    -> 401, chain halts
//
// A present-but-invalid token never falls through to anonymous: rejecting it
// outright keeps a tampered cookie from silently downgrading the session.
//
// The resolver itself never gates access — that is [RequireSession]'s job.
func ResolveSession(cfg SessionConfig, verifier TokenVerifier, principals PrincipalSource) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// ── 1. Token Extraction ───────────────────────────────────────────
			tokenString, found, err := extractToken(request, cfg)
			if err != nil {
				respond.Error(writer, request, err)
				return
			}
			if !found {
				// Anonymous access. Not a failure.
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Token Verification ─────────────────────────────────────────
			claims, err := verifier.Verify(tokenString)
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("Invalid token"))
				return
			}

			// ── 3. Claim Shape Validation ─────────────────────────────────────
			if strings.TrimSpace(claims.Email) == "" {
				respond.Error(writer, request, apperr.Unauthorized("Invalid schema of the token"))
				return
			}

			// ── 4. Principal Resolution ───────────────────────────────────────
			// The claim carries only the email; the authoritative record is
			// re-fetched so a deleted or renamed account stops authenticating
			// the moment the store says so.
			principal, err := principals.FindByEmail(request.Context(), claims.Email)
			if err != nil {
				if apperr.IsNotFound(err) {
					// Token is valid but the account is gone: proceed without a
					// principal and let the access guard reject protected routes.
					next.ServeHTTP(writer, request)
					return
				}
				respond.Error(writer, request, err)
				return
			}

			// ── 5. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithPrincipal(request.Context(), principal)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireSession blocks requests that carry no resolved principal.
//
// # Usage
//
// Must be registered in the router AFTER [ResolveSession], on every
// protected route group. It has no side effects.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ctxutil.GetPrincipal(request.Context()) == nil {
			respond.Error(writer, request, apperr.Unauthorized("Protected route"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// extractToken walks the configured sources and returns the first token found.
//
// A present but malformed Authorization header is an error, not a miss:
// clients that attempt bearer auth should learn their header is broken.
func extractToken(request *http.Request, cfg SessionConfig) (token string, found bool, err error) {
	for _, source := range cfg.Sources {
		switch source {
		case SourceHeader:
			authHeader := request.Header.Get(constants.HeaderAuthorization)
			if authHeader == "" {
				continue
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				return "", false, apperr.Unauthorized("Invalid authorization format")
			}
			return parts[1], true, nil

		case SourceCookie:
			cookie, cookieErr := request.Cookie(cfg.CookieName)
			if cookieErr != nil || cookie.Value == "" {
				continue
			}
			return cookie.Value, true, nil
		}
	}

	return "", false, nil
}
