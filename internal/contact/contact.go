// Copyright (c) 2026 Miranda Hotel. All rights reserved.

// Package contact manages guest messages submitted through the public
// website and reviewed in the back office.
package contact

import "time"

// Status enumerates the review states of a message. The empty string
// means unread; published messages are archived once handled.
type Status string

const (
	StatusUnread   Status = ""
	StatusArchived Status = "archived"
)

// IsValid reports whether the status is a known value.
func (status Status) IsValid() bool {
	switch status {
	case StatusUnread, StatusArchived:
		return true
	}
	return false
}

// Contact is a guest message.
type Contact struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
