// Copyright (c) 2026 Miranda Hotel. All rights reserved.

package room

import (
	"context"
	"fmt"

	"github.com/mirandahotel/api/internal/platform/validate"
	"github.com/mirandahotel/api/pkg/pagination"
	"github.com/mirandahotel/api/pkg/uuidv7"
)

// Service implements room catalogue use cases.
type Service struct {
	store Store
}

// NewService constructs a room [Service].
func NewService(store Store) *Service {
	return &Service{store: store}
}

// CreateInput holds the data required to register a new room.
type CreateInput struct {
	Number             int
	Name               string
	Type               Type
	Description        string
	CancellationPolicy string
	PriceNight         float64
	Discount           int
	HasOffer           bool
	Status             Status
	Photos             []string
	Facilities         []string
}

// UpdateInput holds the patchable fields of a room. Nil pointers leave
// the stored value untouched.
type UpdateInput struct {
	Number             *int
	Name               *string
	Type               *Type
	Description        *string
	CancellationPolicy *string
	PriceNight         *float64
	Discount           *int
	HasOffer           *bool
	Status             *Status
	Photos             *[]string
	Facilities         *[]string
}

// List returns a page of rooms.
func (service *Service) List(ctx context.Context, page pagination.Params) ([]Room, pagination.Meta, error) {
	records, total, err := service.store.List(ctx, page)
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("room_service_list: %w", err)
	}

	return records, pagination.NewMeta(page.Page, page.Limit, total), nil
}

// Get returns a single room by ID.
func (service *Service) Get(ctx context.Context, id string) (*Room, error) {
	return service.store.FindByID(ctx, id)
}

// Create validates and persists a new room.
//
// # Business Rules
//   - Status defaults to available.
//   - A non-zero discount marks the room as on offer.
func (service *Service) Create(ctx context.Context, input CreateInput) (*Room, error) {
	if input.Status == "" {
		input.Status = StatusAvailable
	}
	if input.Discount > 0 {
		input.HasOffer = true
	}

	if err := validateRoom(input.Number, input.Name, input.Type, input.Status, input.PriceNight, input.Discount); err != nil {
		return nil, err
	}

	record := &Room{
		ID:                 uuidv7.New(),
		Number:             input.Number,
		Name:               input.Name,
		Type:               input.Type,
		Description:        input.Description,
		CancellationPolicy: input.CancellationPolicy,
		PriceNight:         input.PriceNight,
		Discount:           input.Discount,
		HasOffer:           input.HasOffer,
		Status:             input.Status,
		Photos:             input.Photos,
		Facilities:         facilitiesFromNames(input.Facilities),
	}
	if record.Photos == nil {
		record.Photos = []string{}
	}

	if err := service.store.Create(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// Update applies a partial update to a room.
func (service *Service) Update(ctx context.Context, id string, input UpdateInput) (*Room, error) {
	record, err := service.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Number != nil {
		record.Number = *input.Number
	}
	if input.Name != nil {
		record.Name = *input.Name
	}
	if input.Type != nil {
		record.Type = *input.Type
	}
	if input.Description != nil {
		record.Description = *input.Description
	}
	if input.CancellationPolicy != nil {
		record.CancellationPolicy = *input.CancellationPolicy
	}
	if input.PriceNight != nil {
		record.PriceNight = *input.PriceNight
	}
	if input.Discount != nil {
		record.Discount = *input.Discount
		record.HasOffer = *input.Discount > 0
	}
	if input.HasOffer != nil {
		record.HasOffer = *input.HasOffer
	}
	if input.Status != nil {
		record.Status = *input.Status
	}
	if input.Photos != nil {
		record.Photos = *input.Photos
	}
	if input.Facilities != nil {
		record.Facilities = facilitiesFromNames(*input.Facilities)
	}

	if err := validateRoom(record.Number, record.Name, record.Type, record.Status, record.PriceNight, record.Discount); err != nil {
		return nil, err
	}

	if err := service.store.Update(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// Delete removes a room.
func (service *Service) Delete(ctx context.Context, id string) error {
	return service.store.Delete(ctx, id)
}

// validateRoom enforces the field rules shared by create and update.
func validateRoom(number int, name string, roomType Type, status Status, priceNight float64, discount int) error {
	v := &validate.Validator{}
	return v.
		Required("name", name).
		Custom("number", number <= 0, "Room number must be positive").
		Custom("type", !roomType.IsValid(), "Please, choose a type of room").
		Custom("status", !status.IsValid(), "Please, choose a type of status").
		NonNegative("price_night", priceNight).
		Custom("discount", discount < 0 || discount > 100, "Discount must be between 0 and 100").
		Err()
}

// facilitiesFromNames normalizes a list of facility names into entities,
// skipping blanks and duplicates.
func facilitiesFromNames(names []string) []Facility {
	facilities := make([]Facility, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, duplicate := seen[name]; duplicate {
			continue
		}
		seen[name] = struct{}{}
		facilities = append(facilities, Facility{Name: name})
	}
	return facilities
}
