// Copyright (c) 2026 Miranda Hotel. All rights reserved.

// Package ctxutil provides helpers for values stored in [context.Context].
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/mirandahotel/api/internal/platform/ctxkey"
	"github.com/mirandahotel/api/internal/staff"
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxkey.KeyRequestID, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxkey.KeyRequestID).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxkey.KeyLogger, logger)
}

// GetLogger retrieves the logger from the context.
// If no logger is found, it returns the global default logger.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(ctxkey.KeyLogger).(*slog.Logger)
	if !ok {
		return slog.Default()
	}
	return logger
}

// # Identity & Access

// WithPrincipal returns a new context with the resolved staff principal
// attached. The session resolver sets this exactly once per request.
func WithPrincipal(ctx context.Context, principal *staff.Staff) context.Context {
	return context.WithValue(ctx, ctxkey.KeyPrincipal, principal)
}

// GetPrincipal retrieves the resolved [*staff.Staff] from the context.
// A nil return means the request is anonymous.
func GetPrincipal(ctx context.Context) *staff.Staff {
	principal, ok := ctx.Value(ctxkey.KeyPrincipal).(*staff.Staff)
	if !ok {
		return nil
	}
	return principal
}
