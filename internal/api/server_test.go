// Copyright (c) 2026 Miranda Hotel. All rights reserved.

package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirandahotel/api/internal/auth"
	"github.com/mirandahotel/api/internal/booking"
	"github.com/mirandahotel/api/internal/contact"
	"github.com/mirandahotel/api/internal/platform/apperr"
	"github.com/mirandahotel/api/internal/platform/config"
	"github.com/mirandahotel/api/internal/platform/middleware"
	"github.com/mirandahotel/api/internal/platform/sec"
	"github.com/mirandahotel/api/internal/room"
	"github.com/mirandahotel/api/internal/staff"
	"github.com/mirandahotel/api/pkg/pagination"
)

// ── In-memory fixtures ────────────────────────────────────────────────────

type memStaffStore struct {
	members map[string]*staff.Staff
}

func (store *memStaffStore) FindByID(_ context.Context, id string) (*staff.Staff, error) {
	if member, found := store.members[id]; found {
		return member, nil
	}
	return nil, apperr.NotFound("User")
}

func (store *memStaffStore) FindByEmail(_ context.Context, email string) (*staff.Staff, error) {
	for _, member := range store.members {
		if member.Email == email {
			return member, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (store *memStaffStore) List(_ context.Context, _ string, _ pagination.Params) ([]staff.Staff, int, error) {
	members := make([]staff.Staff, 0, len(store.members))
	for _, member := range store.members {
		members = append(members, *member)
	}
	return members, len(members), nil
}

func (store *memStaffStore) Create(_ context.Context, member *staff.Staff) error {
	store.members[member.ID] = member
	return nil
}

func (store *memStaffStore) Update(_ context.Context, member *staff.Staff) error {
	store.members[member.ID] = member
	return nil
}

func (store *memStaffStore) Delete(_ context.Context, id string) error {
	delete(store.members, id)
	return nil
}

type memRoomStore struct {
	rooms map[string]*room.Room
}

func (store *memRoomStore) FindByID(_ context.Context, id string) (*room.Room, error) {
	if record, found := store.rooms[id]; found {
		return record, nil
	}
	return nil, apperr.NotFound("Room")
}

func (store *memRoomStore) List(_ context.Context, _ pagination.Params) ([]room.Room, int, error) {
	return nil, 0, nil
}

func (store *memRoomStore) Create(_ context.Context, record *room.Room) error {
	store.rooms[record.ID] = record
	return nil
}

func (store *memRoomStore) Update(_ context.Context, record *room.Room) error {
	store.rooms[record.ID] = record
	return nil
}

func (store *memRoomStore) Delete(_ context.Context, id string) error {
	delete(store.rooms, id)
	return nil
}

type memBookingStore struct{}

func (memBookingStore) FindByID(_ context.Context, _ string) (*booking.Booking, error) {
	return nil, apperr.NotFound("Booking")
}

func (memBookingStore) List(_ context.Context, _ string, _ pagination.Params) ([]booking.Booking, int, error) {
	return nil, 0, nil
}
func (memBookingStore) Create(_ context.Context, _ *booking.Booking) error { return nil }
func (memBookingStore) Update(_ context.Context, _ *booking.Booking) error { return nil }
func (memBookingStore) Delete(_ context.Context, _ string) error           { return nil }

type memContactStore struct{}

func (memContactStore) FindByID(_ context.Context, _ string) (*contact.Contact, error) {
	return nil, apperr.NotFound("Contact")
}

func (memContactStore) List(_ context.Context, _ pagination.Params) ([]contact.Contact, int, error) {
	return nil, 0, nil
}
func (memContactStore) Create(_ context.Context, _ *contact.Contact) error { return nil }
func (memContactStore) Update(_ context.Context, _ *contact.Contact) error { return nil }
func (memContactStore) Delete(_ context.Context, _ string) error           { return nil }

type noopThrottle struct{}

func (noopThrottle) Hit(_ context.Context, _ string) error   { return nil }
func (noopThrottle) Reset(_ context.Context, _ string) error { return nil }

// newTestServer assembles the full router with in-memory stores and a
// seeded admin account (password "0000").
func newTestServer(t *testing.T) *Server {
	t.Helper()

	tokens, err := sec.NewTokenService("server-test-secret", "miranda-hotel", time.Hour)
	require.NoError(t, err)

	hash, err := sec.HashPassword("0000")
	require.NoError(t, err)

	staffStore := &memStaffStore{members: map[string]*staff.Staff{
		"s1": {
			ID:           "s1",
			FirstName:    "Admin",
			LastName:     "Miranda",
			Email:        "admin.miranda@example.com",
			PasswordHash: hash,
			Status:       staff.StatusActive,
			Job:          staff.JobManager,
		},
	}}

	roomStore := &memRoomStore{rooms: map[string]*room.Room{}}

	authService := auth.NewService(staffStore, tokens, noopThrottle{})

	handlers := Handlers{
		Liveness:  func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) },
		Readiness: func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) },
		Auth:      auth.NewHandler(authService),
		Staff:     staff.NewHandler(staff.NewService(staffStore)),
		Room:      room.NewHandler(room.NewService(roomStore)),
		Booking:   booking.NewHandler(booking.NewService(memBookingStore{}, roomStore)),
		Contact:   contact.NewHandler(contact.NewService(memContactStore{})),
	}

	cfg := &config.Config{ServerPort: "0", Environment: "test"}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	server := NewServer(ctx, cfg, logger, middleware.DefaultSessionConfig(), tokens, staffStore, handlers)
	return server
}

func doRequest(server *Server, request *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	server.router.ServeHTTP(recorder, request)
	return recorder
}

func bodyError(t *testing.T, recorder *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	message, _ := body["error"].(string)
	return message
}

// ── Scenarios ─────────────────────────────────────────────────────────────

/*
TestServer_LoginFlow walks the full session lifecycle against the real
router: login, authenticated access, and logout.
*/
func TestServer_LoginFlow(t *testing.T) {
	server := newTestServer(t)

	// 1. Login with the seeded credentials.
	loginBody := strings.NewReader(`{"email": "admin.miranda@example.com", "password": "0000"}`)
	recorder := doRequest(server, httptest.NewRequest(http.MethodPost, "/login", loginBody))
	require.Equal(t, http.StatusOK, recorder.Code)

	cookies := recorder.Result().Cookies()
	require.Len(t, cookies, 1)
	sessionCookie := cookies[0]
	assert.Equal(t, "token", sessionCookie.Name)

	// 2. The cookie opens the protected staff listing.
	request := httptest.NewRequest(http.MethodGet, "/users", nil)
	request.AddCookie(sessionCookie)
	recorder = doRequest(server, request)
	assert.Equal(t, http.StatusOK, recorder.Code)

	// 3. Logout with the same cookie expires the session.
	request = httptest.NewRequest(http.MethodPost, "/logout", nil)
	request.AddCookie(sessionCookie)
	recorder = doRequest(server, request)
	require.Equal(t, http.StatusOK, recorder.Code)

	expired := recorder.Result().Cookies()
	require.Len(t, expired, 1)
	assert.Negative(t, expired[0].MaxAge)
}

/*
TestServer_LoginFailures covers the credential error taxonomy.
*/
func TestServer_LoginFailures(t *testing.T) {
	server := newTestServer(t)

	tests := []struct {
		name        string
		body        string
		wantStatus  int
		wantMessage string
	}{
		{
			"unknown_email",
			`{"email": "ghost@example.com", "password": "0000"}`,
			http.StatusNotFound,
			"User not found",
		},
		{
			"wrong_password",
			`{"email": "admin.miranda@example.com", "password": "1111"}`,
			http.StatusUnauthorized,
			"Invalid credentials",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := doRequest(server, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, recorder.Code)
			assert.Equal(t, tt.wantMessage, bodyError(t, recorder))
		})
	}
}

/*
TestServer_ProtectedRoutes verifies the access guard across the four
management route groups.
*/
func TestServer_ProtectedRoutes(t *testing.T) {
	server := newTestServer(t)

	for _, path := range []string{"/users", "/rooms", "/bookings", "/contacts"} {
		t.Run(strings.TrimPrefix(path, "/"), func(t *testing.T) {
			recorder := doRequest(server, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
			assert.Equal(t, "Protected route", bodyError(t, recorder))
		})
	}
}

/*
TestServer_ForeignToken verifies that a token signed under a different
secret is rejected outright rather than treated as anonymous.
*/
func TestServer_ForeignToken(t *testing.T) {
	server := newTestServer(t)

	foreignTokens, err := sec.NewTokenService("not-the-server-secret", "miranda-hotel", time.Hour)
	require.NoError(t, err)
	token, err := foreignTokens.Issue("admin.miranda@example.com")
	require.NoError(t, err)

	request := httptest.NewRequest(http.MethodGet, "/users", nil)
	request.AddCookie(&http.Cookie{Name: "token", Value: token})
	recorder := doRequest(server, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "Invalid token", bodyError(t, recorder))
}

/*
TestServer_LogoutWithoutSession verifies logout's own error message.
*/
func TestServer_LogoutWithoutSession(t *testing.T) {
	server := newTestServer(t)

	recorder := doRequest(server, httptest.NewRequest(http.MethodPost, "/logout", nil))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, "User is not authenticated", bodyError(t, recorder))
}

/*
TestServer_HealthEndpoints verifies the probes stay public.
*/
func TestServer_HealthEndpoints(t *testing.T) {
	server := newTestServer(t)

	assert.Equal(t, http.StatusOK, doRequest(server, httptest.NewRequest(http.MethodGet, "/health", nil)).Code)
	assert.Equal(t, http.StatusOK, doRequest(server, httptest.NewRequest(http.MethodGet, "/ready", nil)).Code)
}
