// Copyright (c) 2026 Miranda Hotel. All rights reserved.

package contact

import (
	"context"

	"github.com/mirandahotel/api/pkg/pagination"
)

// Store defines the data access contract for guest messages.
type Store interface {
	// FindByID returns the message with the given ID.
	//
	// Returns [apperr.NotFound] if the message does not exist.
	FindByID(ctx context.Context, id string) (*Contact, error)

	// List returns a page of messages, newest first, plus the total count.
	List(ctx context.Context, page pagination.Params) ([]Contact, int, error)

	// Create persists a new message.
	Create(ctx context.Context, record *Contact) error

	// Update persists changes to a message.
	Update(ctx context.Context, record *Contact) error

	// Delete removes the message row.
	//
	// Returns [apperr.NotFound] if no row was deleted.
	Delete(ctx context.Context, id string) error
}
