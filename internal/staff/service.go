// Copyright (c) 2026 Miranda Hotel. All rights reserved.

package staff

import (
	"context"
	"fmt"
	"time"

	"github.com/mirandahotel/api/internal/platform/apperr"
	"github.com/mirandahotel/api/internal/platform/sec"
	"github.com/mirandahotel/api/internal/platform/validate"
	"github.com/mirandahotel/api/pkg/pagination"
	"github.com/mirandahotel/api/pkg/uuidv7"
)

// Service implements staff management use cases.
//
// # Review Process
//
// Account creation and password rotation are security-sensitive. Changes to
// hashing or uniqueness logic need a second reviewer.
type Service struct {
	store Store
}

// NewService constructs a staff [Service].
func NewService(store Store) *Service {
	return &Service{store: store}
}

// CreateInput holds the data required to enroll a new staff member.
type CreateInput struct {
	FirstName      string
	LastName       string
	Photo          string
	StartDate      time.Time
	JobDescription string
	Telephone      string
	Status         Status
	Job            Job
	Email          string
	Password       string
}

// UpdateInput holds the patchable fields of a staff member. Nil pointers
// leave the stored value untouched.
type UpdateInput struct {
	FirstName      *string
	LastName       *string
	Photo          *string
	StartDate      *time.Time
	JobDescription *string
	Telephone      *string
	Status         *Status
	Job            *Job
	Email          *string
	Password       *string
}

// List returns a page of staff members matching the search term.
func (service *Service) List(ctx context.Context, searchTerm string, page pagination.Params) ([]Staff, pagination.Meta, error) {
	members, total, err := service.store.List(ctx, searchTerm, page)
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("staff_service_list: %w", err)
	}

	return members, pagination.NewMeta(page.Page, page.Limit, total), nil
}

// Get returns a single staff member by ID.
func (service *Service) Get(ctx context.Context, id string) (*Staff, error) {
	return service.store.FindByID(ctx, id)
}

// Create validates, hashes, and persists a brand new staff account.
//
// # Business Rules
//   - Email is unique across staff.
//   - Status defaults to active, job to Reservation desk.
func (service *Service) Create(ctx context.Context, input CreateInput) (*Staff, error) {
	// ── 1. Defaults ───────────────────────────────────────────────────────
	if input.Status == "" {
		input.Status = StatusActive
	}
	if input.Job == "" {
		input.Job = JobReservationDesk
	}

	// ── 2. Validation ─────────────────────────────────────────────────────
	v := &validate.Validator{}
	err := v.
		Required("first_name", input.FirstName).
		Required("last_name", input.LastName).
		Email("email", input.Email).
		MinLen("password", input.Password, 4).
		OneOf("status", string(input.Status), string(StatusActive), string(StatusInactive)).
		OneOf("job", string(input.Job), string(JobManager), string(JobReservationDesk), string(JobRoomService)).
		Custom("start_date", input.StartDate.IsZero(), "Starting date is required").
		Err()
	if err != nil {
		return nil, err
	}

	// ── 3. Uniqueness ─────────────────────────────────────────────────────
	if _, err := service.store.FindByEmail(ctx, input.Email); err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}

	// ── 4. Security ───────────────────────────────────────────────────────
	passwordHash, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("staff_service_hash: %w", err)
	}

	// ── 5. Persistence ────────────────────────────────────────────────────
	member := &Staff{
		ID:             uuidv7.New(),
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Photo:          input.Photo,
		StartDate:      input.StartDate,
		JobDescription: input.JobDescription,
		Telephone:      input.Telephone,
		Status:         input.Status,
		Job:            input.Job,
		Email:          input.Email,
		PasswordHash:   passwordHash,
	}

	if err := service.store.Create(ctx, member); err != nil {
		return nil, err
	}

	return member, nil
}

// Update applies a partial update to a staff account.
//
// A supplied password is re-hashed; the stored hash is otherwise preserved.
func (service *Service) Update(ctx context.Context, id string, input UpdateInput) (*Staff, error) {
	member, err := service.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		member.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		member.LastName = *input.LastName
	}
	if input.Photo != nil {
		member.Photo = *input.Photo
	}
	if input.StartDate != nil {
		member.StartDate = *input.StartDate
	}
	if input.JobDescription != nil {
		member.JobDescription = *input.JobDescription
	}
	if input.Telephone != nil {
		member.Telephone = *input.Telephone
	}
	if input.Status != nil {
		member.Status = *input.Status
	}
	if input.Job != nil {
		member.Job = *input.Job
	}
	if input.Email != nil {
		member.Email = *input.Email
	}

	v := &validate.Validator{}
	err = v.
		Required("first_name", member.FirstName).
		Required("last_name", member.LastName).
		Email("email", member.Email).
		Custom("status", !member.Status.IsValid(), "Please, choose a type of status").
		Custom("job", !member.Job.IsValid(), "Please, choose a type of job").
		Err()
	if err != nil {
		return nil, err
	}

	if input.Password != nil && *input.Password != "" {
		passwordHash, hashErr := sec.HashPassword(*input.Password)
		if hashErr != nil {
			return nil, fmt.Errorf("staff_service_rehash: %w", hashErr)
		}
		member.PasswordHash = passwordHash
	}

	if err := service.store.Update(ctx, member); err != nil {
		return nil, err
	}

	return member, nil
}

// Delete removes a staff account.
func (service *Service) Delete(ctx context.Context, id string) error {
	return service.store.Delete(ctx, id)
}
