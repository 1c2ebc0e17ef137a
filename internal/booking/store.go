// Copyright (c) 2026 Miranda Hotel. All rights reserved.

package booking

import (
	"context"

	"github.com/mirandahotel/api/pkg/pagination"
)

// Store defines the data access contract for bookings.
//
// Reads hydrate the embedded room, facilities included.
type Store interface {
	// FindByID returns the booking with the given ID.
	//
	// Returns [apperr.NotFound] if the booking does not exist.
	FindByID(ctx context.Context, id string) (*Booking, error)

	// List returns a page of bookings whose guest first or last name
	// matches the search term (empty term matches everyone), newest
	// order date first, plus the total match count.
	List(ctx context.Context, searchTerm string, page pagination.Params) ([]Booking, int, error)

	// Create persists a new booking.
	Create(ctx context.Context, record *Booking) error

	// Update persists changes to a booking.
	Update(ctx context.Context, record *Booking) error

	// Delete removes the booking row.
	//
	// Returns [apperr.NotFound] if no row was deleted.
	Delete(ctx context.Context, id string) error
}
