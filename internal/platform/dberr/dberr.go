// Copyright (c) 2026 Miranda Hotel. All rights reserved.

// Package dberr bridges low-level database errors and application errors.
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mirandahotel/api/internal/platform/apperr"
)

// Wrap inspects a database error and converts it into a meaningful
// [apperr.AppError], hiding database internals from the client.
//
// resource names the entity being acted on ("User", "Room", ...).
func Wrap(err error, resource string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return apperr.Conflict(resource + " already exists")
	}

	return apperr.Internal(err)
}
