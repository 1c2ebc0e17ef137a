// Copyright (c) 2026 Miranda Hotel. All rights reserved.

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/mirandahotel/api/internal/auth"
	"github.com/mirandahotel/api/internal/booking"
	"github.com/mirandahotel/api/internal/contact"
	"github.com/mirandahotel/api/internal/platform/config"
	"github.com/mirandahotel/api/internal/platform/constants"
	"github.com/mirandahotel/api/internal/platform/middleware"
	"github.com/mirandahotel/api/internal/room"
	"github.com/mirandahotel/api/internal/staff"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles login and logout.
	Auth *auth.Handler

	// Staff manages back-office accounts under /users.
	Staff *staff.Handler

	// Room manages the room catalogue.
	Room *room.Handler

	// Booking manages guest reservations.
	Booking *booking.Handler

	// Contact manages guest messages.
	Contact *contact.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
//
// The session resolver runs globally so that any request may carry a
// token; the access guard is applied per route group, which keeps
// /health, /ready, and /login reachable anonymously.
func NewServer(
	context context.Context,
	cfg *config.Config,
	log *slog.Logger,
	sessionCfg middleware.SessionConfig,
	verifier middleware.TokenVerifier,
	principals middleware.PrincipalSource,
	h Handlers,
) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.ResolveSession(sessionCfg, verifier, principals))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Session Endpoints
	// Login is public; logout checks the principal itself so it can
	// return its own error message.
	r.Post("/login", h.Auth.Login)
	r.Post("/logout", h.Auth.Logout)

	// # Application API
	// Every management route group sits behind the access guard.
	r.Group(func(protected chi.Router) {
		protected.Use(middleware.RequireSession)

		protected.Mount("/users", h.Staff.Routes())
		protected.Mount("/rooms", h.Room.Routes())
		protected.Mount("/bookings", h.Booking.Routes())
		protected.Mount("/contacts", h.Contact.Routes())
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
