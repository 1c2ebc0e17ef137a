// Copyright (c) 2026 Miranda Hotel. All rights reserved.

package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/mirandahotel/api/internal/platform/validate"
	"github.com/mirandahotel/api/internal/room"
	"github.com/mirandahotel/api/pkg/pagination"
	"github.com/mirandahotel/api/pkg/uuidv7"
)

// RoomFinder is the slice of the room store the booking flow needs to
// verify the referenced room exists.
type RoomFinder interface {
	FindByID(ctx context.Context, id string) (*room.Room, error)
}

// Service implements reservation use cases.
type Service struct {
	store Store
	rooms RoomFinder
}

// NewService constructs a booking [Service].
func NewService(store Store, rooms RoomFinder) *Service {
	return &Service{store: store, rooms: rooms}
}

// CreateInput holds the data required to register a reservation.
type CreateInput struct {
	FirstName      string
	LastName       string
	OrderDate      time.Time
	CheckIn        time.Time
	CheckOut       time.Time
	SpecialRequest string
	Status         Status
	RoomID         string
}

// UpdateInput holds the patchable fields of a reservation. Nil pointers
// leave the stored value untouched.
type UpdateInput struct {
	FirstName      *string
	LastName       *string
	OrderDate      *time.Time
	CheckIn        *time.Time
	CheckOut       *time.Time
	SpecialRequest *string
	Status         *Status
	RoomID         *string
}

// List returns a page of bookings matching the guest name search term.
func (service *Service) List(ctx context.Context, searchTerm string, page pagination.Params) ([]Booking, pagination.Meta, error) {
	records, total, err := service.store.List(ctx, searchTerm, page)
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("booking_service_list: %w", err)
	}

	return records, pagination.NewMeta(page.Page, page.Limit, total), nil
}

// Get returns a single booking by ID.
func (service *Service) Get(ctx context.Context, id string) (*Booking, error) {
	return service.store.FindByID(ctx, id)
}

// Create validates and persists a new reservation.
//
// # Business Rules
//   - Order date defaults to now.
//   - Status defaults to check_in.
//   - The referenced room must exist; its snapshot hydrates the
//     embedded entity in the response.
func (service *Service) Create(ctx context.Context, input CreateInput) (*Booking, error) {
	if input.OrderDate.IsZero() {
		input.OrderDate = time.Now()
	}
	if input.Status == "" {
		input.Status = StatusCheckIn
	}

	if err := validateBooking(input.FirstName, input.LastName, input.RoomID, input.Status, input.CheckIn, input.CheckOut); err != nil {
		return nil, err
	}

	bookedRoom, err := service.rooms.FindByID(ctx, input.RoomID)
	if err != nil {
		return nil, err
	}

	record := &Booking{
		ID:             uuidv7.New(),
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		OrderDate:      input.OrderDate,
		CheckIn:        input.CheckIn,
		CheckOut:       input.CheckOut,
		SpecialRequest: input.SpecialRequest,
		Status:         input.Status,
		RoomID:         input.RoomID,
		Room:           *bookedRoom,
	}

	if err := service.store.Create(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// Update applies a partial update to a reservation.
func (service *Service) Update(ctx context.Context, id string, input UpdateInput) (*Booking, error) {
	record, err := service.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		record.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		record.LastName = *input.LastName
	}
	if input.OrderDate != nil {
		record.OrderDate = *input.OrderDate
	}
	if input.CheckIn != nil {
		record.CheckIn = *input.CheckIn
	}
	if input.CheckOut != nil {
		record.CheckOut = *input.CheckOut
	}
	if input.SpecialRequest != nil {
		record.SpecialRequest = *input.SpecialRequest
	}
	if input.Status != nil {
		record.Status = *input.Status
	}

	if err := validateBooking(record.FirstName, record.LastName, record.RoomID, record.Status, record.CheckIn, record.CheckOut); err != nil {
		return nil, err
	}

	// A room move re-verifies the target and refreshes the snapshot.
	if input.RoomID != nil && *input.RoomID != record.RoomID {
		bookedRoom, err := service.rooms.FindByID(ctx, *input.RoomID)
		if err != nil {
			return nil, err
		}
		record.RoomID = *input.RoomID
		record.Room = *bookedRoom
	}

	if err := service.store.Update(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// Delete removes a reservation.
func (service *Service) Delete(ctx context.Context, id string) error {
	return service.store.Delete(ctx, id)
}

// validateBooking enforces the field rules shared by create and update.
func validateBooking(firstName, lastName, roomID string, status Status, checkIn, checkOut time.Time) error {
	v := &validate.Validator{}
	return v.
		Required("first_name", firstName).
		Required("last_name", lastName).
		Required("room_id", roomID).
		Custom("status", !status.IsValid(), "Please, choose a type of status").
		Custom("check_in", checkIn.IsZero(), "Check in date is required").
		Custom("check_out", checkOut.IsZero(), "Check out date is required").
		DateOrder("check_out", checkIn, checkOut).
		Err()
}
