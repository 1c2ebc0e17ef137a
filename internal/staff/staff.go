// Copyright (c) 2026 Miranda Hotel. All rights reserved.

// Package staff defines the hotel staff domain: the accounts that operate
// the admin dashboard and double as the authentication principals.
//
// # Architecture
//
// Entities in this package represent the "Truth" of the system. They have
// no dependencies on outer layers (databases, HTTP, frameworks), which keeps
// the core rules testable.
package staff

import (
	"time"
)

// Status represents the employment state of a staff member.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// IsValid reports whether the status is one of the known values.
func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

// Job represents the position a staff member holds.
type Job string

const (
	JobManager         Job = "Manager"
	JobReservationDesk Job = "Reservation desk"
	JobRoomService     Job = "Room service"
)

// IsValid reports whether the job is one of the known positions.
func (j Job) IsValid() bool {
	return j == JobManager || j == JobReservationDesk || j == JobRoomService
}

// Staff represents a hotel employee with dashboard access.
//
// # Rules
//   - Email is unique and identifies the principal at login.
//   - PasswordHash is produced exclusively via bcrypt in the service layer
//     and is never serialized to JSON.
type Staff struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Photo          string    `json:"photo"`
	StartDate      time.Time `json:"start_date"`
	JobDescription string    `json:"job_description"`
	Telephone      string    `json:"telephone"`
	Status         Status    `json:"status"`
	Job            Job       `json:"job"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"` // Explicitly omitted from JSON for security.
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
