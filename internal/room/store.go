// Copyright (c) 2026 Miranda Hotel. All rights reserved.

package room

import (
	"context"

	"github.com/mirandahotel/api/pkg/pagination"
)

// Store defines the data access contract for rooms.
//
// Every read returns rooms with their facilities resolved; every write
// that touches facilities happens inside a single transaction so a room
// can never persist half its amenity list.
type Store interface {
	// FindByID returns the room with the given ID, facilities included.
	//
	// Returns [apperr.NotFound] if the room does not exist.
	FindByID(ctx context.Context, id string) (*Room, error)

	// List returns a page of rooms ordered by room number, plus the
	// total room count.
	List(ctx context.Context, page pagination.Params) ([]Room, int, error)

	// Create persists a new room and its facility assignments.
	Create(ctx context.Context, record *Room) error

	// Update persists changes to the room and rewrites its facility
	// assignments to match record.Facilities exactly.
	Update(ctx context.Context, record *Room) error

	// Delete removes the room and its facility assignments.
	//
	// Returns [apperr.NotFound] if no row was deleted.
	Delete(ctx context.Context, id string) error
}
