// Copyright (c) 2026 Miranda Hotel. All rights reserved.

package booking_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirandahotel/api/internal/booking"
	"github.com/mirandahotel/api/internal/platform/apperr"
	"github.com/mirandahotel/api/internal/room"
	"github.com/mirandahotel/api/pkg/pagination"
)

// fakeStore is an in-memory booking.Store for service tests.
type fakeStore struct {
	bookings map[string]*booking.Booking
}

func newFakeStore() *fakeStore {
	return &fakeStore{bookings: map[string]*booking.Booking{}}
}

func (store *fakeStore) FindByID(_ context.Context, id string) (*booking.Booking, error) {
	if record, found := store.bookings[id]; found {
		copied := *record
		return &copied, nil
	}
	return nil, apperr.NotFound("Booking")
}

func (store *fakeStore) List(_ context.Context, _ string, _ pagination.Params) ([]booking.Booking, int, error) {
	records := make([]booking.Booking, 0, len(store.bookings))
	for _, record := range store.bookings {
		records = append(records, *record)
	}
	return records, len(records), nil
}

func (store *fakeStore) Create(_ context.Context, record *booking.Booking) error {
	copied := *record
	store.bookings[record.ID] = &copied
	return nil
}

func (store *fakeStore) Update(_ context.Context, record *booking.Booking) error {
	if _, found := store.bookings[record.ID]; !found {
		return apperr.NotFound("Booking")
	}
	copied := *record
	store.bookings[record.ID] = &copied
	return nil
}

func (store *fakeStore) Delete(_ context.Context, id string) error {
	if _, found := store.bookings[id]; !found {
		return apperr.NotFound("Booking")
	}
	delete(store.bookings, id)
	return nil
}

// fakeRoomFinder resolves rooms from a fixed map.
type fakeRoomFinder struct {
	rooms map[string]*room.Room
}

func (finder *fakeRoomFinder) FindByID(_ context.Context, id string) (*room.Room, error) {
	if record, found := finder.rooms[id]; found {
		copied := *record
		return &copied, nil
	}
	return nil, apperr.NotFound("Room")
}

func newFixture() *booking.Service {
	finder := &fakeRoomFinder{rooms: map[string]*room.Room{
		"room-101": {ID: "room-101", Number: 101, Name: "Deluxe Sea View", PriceNight: 195},
		"room-102": {ID: "room-102", Number: 102, Name: "Classic Double", PriceNight: 120},
	}}
	return booking.NewService(newFakeStore(), finder)
}

func validCreateInput() booking.CreateInput {
	checkIn := time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)
	return booking.CreateInput{
		FirstName: "Laura",
		LastName:  "Santos",
		CheckIn:   checkIn,
		CheckOut:  checkIn.AddDate(0, 0, 4),
		RoomID:    "room-101",
	}
}

/*
TestService_Create verifies defaults and room snapshot hydration.
*/
func TestService_Create(t *testing.T) {
	service := newFixture()

	record, err := service.Create(context.Background(), validCreateInput())
	require.NoError(t, err)

	assert.NotEmpty(t, record.ID)
	assert.Equal(t, booking.StatusCheckIn, record.Status)
	assert.False(t, record.OrderDate.IsZero())
	assert.Equal(t, "room-101", record.Room.ID)
	assert.Equal(t, 101, record.Room.Number)
}

/*
TestService_Create_UnknownRoom verifies that a booking for a missing
room is refused.
*/
func TestService_Create_UnknownRoom(t *testing.T) {
	service := newFixture()

	input := validCreateInput()
	input.RoomID = "room-999"

	_, err := service.Create(context.Background(), input)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestService_Create_Validation covers the field rules, including the
check-in/check-out ordering invariant.
*/
func TestService_Create_Validation(t *testing.T) {
	service := newFixture()

	tests := []struct {
		name   string
		mutate func(*booking.CreateInput)
	}{
		{"missing_first_name", func(input *booking.CreateInput) { input.FirstName = "" }},
		{"missing_room", func(input *booking.CreateInput) { input.RoomID = "" }},
		{"missing_check_in", func(input *booking.CreateInput) { input.CheckIn = time.Time{} }},
		{"check_out_before_check_in", func(input *booking.CreateInput) {
			input.CheckOut = input.CheckIn.AddDate(0, 0, -1)
		}},
		{"check_out_equals_check_in", func(input *booking.CreateInput) { input.CheckOut = input.CheckIn }},
		{"unknown_status", func(input *booking.CreateInput) { input.Status = "cancelled" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validCreateInput()
			tt.mutate(&input)

			_, err := service.Create(context.Background(), input)
			require.Error(t, err)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
		})
	}
}

/*
TestService_Update_RoomMove verifies that changing the room re-verifies
the target and refreshes the embedded snapshot.
*/
func TestService_Update_RoomMove(t *testing.T) {
	service := newFixture()

	record, err := service.Create(context.Background(), validCreateInput())
	require.NoError(t, err)

	newRoom := "room-102"
	updated, err := service.Update(context.Background(), record.ID, booking.UpdateInput{
		RoomID: &newRoom,
	})
	require.NoError(t, err)

	assert.Equal(t, "room-102", updated.RoomID)
	assert.Equal(t, 102, updated.Room.Number)

	missingRoom := "room-999"
	_, err = service.Update(context.Background(), record.ID, booking.UpdateInput{
		RoomID: &missingRoom,
	})
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestService_Update_Status verifies the status transition patch.
*/
func TestService_Update_Status(t *testing.T) {
	service := newFixture()

	record, err := service.Create(context.Background(), validCreateInput())
	require.NoError(t, err)

	inProgress := booking.StatusInProgress
	updated, err := service.Update(context.Background(), record.ID, booking.UpdateInput{
		Status: &inProgress,
	})
	require.NoError(t, err)
	assert.Equal(t, booking.StatusInProgress, updated.Status)
}
