// Copyright (c) 2026 Miranda Hotel. All rights reserved.

package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirandahotel/api/internal/platform/apperr"
	"github.com/mirandahotel/api/internal/platform/ctxutil"
	"github.com/mirandahotel/api/internal/platform/middleware"
	"github.com/mirandahotel/api/internal/platform/sec"
	"github.com/mirandahotel/api/internal/staff"
)

// fakeDirectory resolves principals from an in-memory map.
type fakeDirectory struct {
	members map[string]*staff.Staff
}

func (directory *fakeDirectory) FindByEmail(_ context.Context, email string) (*staff.Staff, error) {
	if member, found := directory.members[email]; found {
		return member, nil
	}
	return nil, apperr.NotFound("User")
}

// sessionFixture bundles the resolver's collaborators for a test.
type sessionFixture struct {
	tokens    *sec.TokenService
	directory *fakeDirectory
}

func newSessionFixture(t *testing.T) *sessionFixture {
	t.Helper()
	tokens, err := sec.NewTokenService("session-test-secret", "miranda-hotel", time.Hour)
	require.NoError(t, err)

	return &sessionFixture{
		tokens: tokens,
		directory: &fakeDirectory{members: map[string]*staff.Staff{
			"admin.miranda@example.com": {ID: "s1", Email: "admin.miranda@example.com", FirstName: "Admin"},
			"desk.miranda@example.com":  {ID: "s2", Email: "desk.miranda@example.com", FirstName: "Desk"},
		}},
	}
}

// resolve runs one request through ResolveSession and captures the
// principal the downstream handler observed.
func (fixture *sessionFixture) resolve(cfg middleware.SessionConfig, request *http.Request) (*httptest.ResponseRecorder, *staff.Staff, bool) {
	var observed *staff.Staff
	nextCalled := false

	handler := middleware.ResolveSession(cfg, fixture.tokens, fixture.directory)(
		http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			nextCalled = true
			observed = ctxutil.GetPrincipal(request.Context())
			writer.WriteHeader(http.StatusOK)
		}),
	)

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	return recorder, observed, nextCalled
}

func errorMessage(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	message, _ := body["error"].(string)
	return message
}

/*
TestResolveSession_NoToken verifies that a token-less request proceeds
anonymously rather than failing.
*/
func TestResolveSession_NoToken(t *testing.T) {
	fixture := newSessionFixture(t)

	request := httptest.NewRequest(http.MethodGet, "/health", nil)
	recorder, principal, nextCalled := fixture.resolve(middleware.DefaultSessionConfig(), request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, nextCalled)
	assert.Nil(t, principal)
}

/*
TestResolveSession_ValidCookie verifies the happy path through the
cookie source.
*/
func TestResolveSession_ValidCookie(t *testing.T) {
	fixture := newSessionFixture(t)
	token, err := fixture.tokens.Issue("admin.miranda@example.com")
	require.NoError(t, err)

	request := httptest.NewRequest(http.MethodGet, "/users", nil)
	request.AddCookie(&http.Cookie{Name: "token", Value: token})

	recorder, principal, _ := fixture.resolve(middleware.DefaultSessionConfig(), request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, principal)
	assert.Equal(t, "admin.miranda@example.com", principal.Email)
}

/*
TestResolveSession_ValidBearerHeader verifies the happy path through the
Authorization header.
*/
func TestResolveSession_ValidBearerHeader(t *testing.T) {
	fixture := newSessionFixture(t)
	token, err := fixture.tokens.Issue("admin.miranda@example.com")
	require.NoError(t, err)

	request := httptest.NewRequest(http.MethodGet, "/users", nil)
	request.Header.Set("Authorization", "Bearer "+token)

	recorder, principal, _ := fixture.resolve(middleware.DefaultSessionConfig(), request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, principal)
	assert.Equal(t, "admin.miranda@example.com", principal.Email)
}

/*
TestResolveSession_InvalidToken verifies that a token signed with a
different secret halts the chain with 401 instead of degrading to
anonymous.
*/
func TestResolveSession_InvalidToken(t *testing.T) {
	fixture := newSessionFixture(t)

	foreignTokens, err := sec.NewTokenService("some-other-secret", "miranda-hotel", time.Hour)
	require.NoError(t, err)
	token, err := foreignTokens.Issue("admin.miranda@example.com")
	require.NoError(t, err)

	request := httptest.NewRequest(http.MethodGet, "/users", nil)
	request.AddCookie(&http.Cookie{Name: "token", Value: token})

	recorder, _, nextCalled := fixture.resolve(middleware.DefaultSessionConfig(), request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, nextCalled)
	assert.Equal(t, "Invalid token", errorMessage(t, recorder))
}

/*
TestResolveSession_EmptyEmailClaim verifies that a verified token whose
claim lacks the principal email is rejected as malformed.
*/
func TestResolveSession_EmptyEmailClaim(t *testing.T) {
	fixture := newSessionFixture(t)
	token, err := fixture.tokens.Issue("")
	require.NoError(t, err)

	request := httptest.NewRequest(http.MethodGet, "/users", nil)
	request.AddCookie(&http.Cookie{Name: "token", Value: token})

	recorder, _, nextCalled := fixture.resolve(middleware.DefaultSessionConfig(), request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, nextCalled)
	assert.Equal(t, "Invalid schema of the token", errorMessage(t, recorder))
}

/*
TestResolveSession_UnknownPrincipal verifies that a valid token for a
deleted account proceeds anonymously, leaving rejection to the guard.
*/
func TestResolveSession_UnknownPrincipal(t *testing.T) {
	fixture := newSessionFixture(t)
	token, err := fixture.tokens.Issue("ghost@example.com")
	require.NoError(t, err)

	request := httptest.NewRequest(http.MethodGet, "/users", nil)
	request.AddCookie(&http.Cookie{Name: "token", Value: token})

	recorder, principal, nextCalled := fixture.resolve(middleware.DefaultSessionConfig(), request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, nextCalled)
	assert.Nil(t, principal)
}

/*
TestResolveSession_MalformedAuthorizationHeader verifies that a broken
bearer header is an explicit error, not a silent miss.
*/
func TestResolveSession_MalformedAuthorizationHeader(t *testing.T) {
	fixture := newSessionFixture(t)

	tests := []struct {
		name   string
		header string
	}{
		{"missing_scheme", "just-a-token"},
		{"wrong_scheme", "Basic dXNlcjpwYXNz"},
		{"empty_credentials", "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/users", nil)
			request.Header.Set("Authorization", tt.header)

			recorder, _, nextCalled := fixture.resolve(middleware.DefaultSessionConfig(), request)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.False(t, nextCalled)
			assert.Equal(t, "Invalid authorization format", errorMessage(t, recorder))
		})
	}
}

/*
TestResolveSession_SourcePrecedence verifies that the configured lookup
order decides which carried token wins when both are present.
*/
func TestResolveSession_SourcePrecedence(t *testing.T) {
	fixture := newSessionFixture(t)

	headerToken, err := fixture.tokens.Issue("admin.miranda@example.com")
	require.NoError(t, err)
	cookieToken, err := fixture.tokens.Issue("desk.miranda@example.com")
	require.NoError(t, err)

	tests := []struct {
		name      string
		sources   []string
		wantEmail string
	}{
		{"header_first", []string{middleware.SourceHeader, middleware.SourceCookie}, "admin.miranda@example.com"},
		{"cookie_first", []string{middleware.SourceCookie, middleware.SourceHeader}, "desk.miranda@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/users", nil)
			request.Header.Set("Authorization", "Bearer "+headerToken)
			request.AddCookie(&http.Cookie{Name: "token", Value: cookieToken})

			cfg := middleware.SessionConfig{Sources: tt.sources, CookieName: "token"}
			recorder, principal, _ := fixture.resolve(cfg, request)

			assert.Equal(t, http.StatusOK, recorder.Code)
			require.NotNil(t, principal)
			assert.Equal(t, tt.wantEmail, principal.Email)
		})
	}
}

/*
TestRequireSession verifies the access guard: anonymous requests are
rejected with the protected-route message, resolved ones pass.
*/
func TestRequireSession(t *testing.T) {
	nextCalled := false
	handler := middleware.RequireSession(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		nextCalled = true
		writer.WriteHeader(http.StatusOK)
	}))

	// Anonymous request
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/users", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.False(t, nextCalled)
	assert.Equal(t, "Protected route", errorMessage(t, recorder))

	// Authenticated request
	request := httptest.NewRequest(http.MethodGet, "/users", nil)
	ctx := ctxutil.WithPrincipal(request.Context(), &staff.Staff{ID: "s1"})

	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request.WithContext(ctx))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.True(t, nextCalled)
}
