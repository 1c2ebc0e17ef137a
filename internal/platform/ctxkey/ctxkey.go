// Copyright (c) 2026 Miranda Hotel. All rights reserved.

// Package ctxkey defines typed context keys used by middleware and handlers.
//
// # Safety
//
// It stores and retrieves per-request values (resolved principal, request ID,
// logger). Using a private, unexported type for keys prevents collisions with
// third-party packages that also use context storage.
package ctxkey

// key is an unexported type used for context keys to ensure type safety.
//
// Even if another package uses "request_id" as a string key, it cannot
// collide with this key type because [context.Context] lookups match on
// both value AND type.
type key string

const (
	// KeyRequestID is the context key for the X-Request-ID correlation value.
	KeyRequestID key = "request_id"

	// KeyPrincipal is the context key for the resolved staff principal.
	KeyPrincipal key = "principal"

	// KeyLogger is the context key for the per-request [*log/slog.Logger].
	KeyLogger key = "logger"
)
