// Copyright (c) 2026 Miranda Hotel. All rights reserved.

// Package booking manages guest reservations and their link to the
// room catalogue.
package booking

import (
	"time"

	"github.com/mirandahotel/api/internal/room"
)

// Status enumerates the reservation lifecycle states.
type Status string

const (
	StatusCheckIn    Status = "check_in"
	StatusCheckOut   Status = "check_out"
	StatusInProgress Status = "in_progress"
)

// IsValid reports whether the status is a known value.
func (status Status) IsValid() bool {
	switch status {
	case StatusCheckIn, StatusCheckOut, StatusInProgress:
		return true
	}
	return false
}

// Booking is a guest reservation. The room it refers to is embedded in
// every read so the dashboard never issues a second fetch.
type Booking struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	OrderDate      time.Time `json:"order_date"`
	CheckIn        time.Time `json:"check_in"`
	CheckOut       time.Time `json:"check_out"`
	SpecialRequest string    `json:"special_request"`
	Status         Status    `json:"status"`
	RoomID         string    `json:"room_id"`
	Room           room.Room `json:"room"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
