// Copyright (c) 2026 Miranda Hotel. All rights reserved.

// Package room manages the hotel room catalogue: pricing, offers,
// photos, and the facility assignments shown on the room detail page.
package room

import "time"

// Status enumerates the lifecycle states of a room.
type Status string

const (
	StatusAvailable Status = "available"
	StatusBooked    Status = "booked"
)

// IsValid reports whether the status is a known value.
func (status Status) IsValid() bool {
	switch status {
	case StatusAvailable, StatusBooked:
		return true
	}
	return false
}

// Type enumerates the room categories offered by the hotel.
type Type string

const (
	TypeSingleBed   Type = "Single Bed"
	TypeDoubleBed   Type = "Double Bed"
	TypeDoubleSuper Type = "Double Superior"
	TypeSuite       Type = "Suite"
)

// IsValid reports whether the room type is a known value.
func (roomType Type) IsValid() bool {
	switch roomType {
	case TypeSingleBed, TypeDoubleBed, TypeDoubleSuper, TypeSuite:
		return true
	}
	return false
}

// Facility is an amenity a room can offer. Facilities are shared
// between rooms through a join table and deduplicated by name.
type Facility struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Room is a bookable unit of the hotel.
type Room struct {
	ID                 string     `json:"id"`
	Number             int        `json:"number"`
	Name               string     `json:"name"`
	Type               Type       `json:"type"`
	Description        string     `json:"description"`
	CancellationPolicy string     `json:"cancellation_policy"`
	PriceNight         float64    `json:"price_night"`
	Discount           int        `json:"discount"`
	HasOffer           bool       `json:"has_offer"`
	Status             Status     `json:"status"`
	Photos             []string   `json:"photos"`
	Facilities         []Facility `json:"facilities"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}
