// Copyright (c) 2026 Miranda Hotel. All rights reserved.

package staff

import (
	"context"

	"github.com/mirandahotel/api/pkg/pagination"
)

// Store defines the data access contract for staff accounts.
//
// # Implementations
//
// The canonical implementation is PostgreSQL ([PostgresStore]). The session
// resolver consumes the FindByEmail subset through its own narrow interface.
type Store interface {
	// FindByID returns the account with the given ID.
	//
	// Returns [apperr.NotFound] if the account does not exist.
	FindByID(ctx context.Context, id string) (*Staff, error)

	// FindByEmail returns the account with the given email.
	//
	// Returns [apperr.NotFound] if no staff member is registered with it.
	FindByEmail(ctx context.Context, email string) (*Staff, error)

	// List returns a page of accounts whose first or last name matches the
	// search term (empty term matches everyone), plus the total match count.
	List(ctx context.Context, searchTerm string, page pagination.Params) ([]Staff, int, error)

	// Create persists a brand-new staff account.
	Create(ctx context.Context, member *Staff) error

	// Update persists changes to all mutable fields, including the password
	// hash when the service decided to rotate it.
	Update(ctx context.Context, member *Staff) error

	// Delete removes the account row.
	//
	// Returns [apperr.NotFound] if no row was deleted.
	Delete(ctx context.Context, id string) error
}
