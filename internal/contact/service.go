// Copyright (c) 2026 Miranda Hotel. All rights reserved.

package contact

import (
	"context"
	"fmt"
	"time"

	"github.com/mirandahotel/api/internal/platform/validate"
	"github.com/mirandahotel/api/pkg/pagination"
	"github.com/mirandahotel/api/pkg/uuidv7"
)

// Service implements guest message use cases.
type Service struct {
	store Store
}

// NewService constructs a contact [Service].
func NewService(store Store) *Service {
	return &Service{store: store}
}

// CreateInput holds the data of a submitted guest message.
type CreateInput struct {
	Date      time.Time
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Subject   string
	Message   string
}

// List returns a page of guest messages.
func (service *Service) List(ctx context.Context, page pagination.Params) ([]Contact, pagination.Meta, error) {
	records, total, err := service.store.List(ctx, page)
	if err != nil {
		return nil, pagination.Meta{}, fmt.Errorf("contact_service_list: %w", err)
	}

	return records, pagination.NewMeta(page.Page, page.Limit, total), nil
}

// Get returns a single message by ID.
func (service *Service) Get(ctx context.Context, id string) (*Contact, error) {
	return service.store.FindByID(ctx, id)
}

// Create validates and persists a submitted message. New messages start
// unread; the date defaults to the submission time.
func (service *Service) Create(ctx context.Context, input CreateInput) (*Contact, error) {
	if input.Date.IsZero() {
		input.Date = time.Now()
	}

	v := &validate.Validator{}
	err := v.
		Required("first_name", input.FirstName).
		Required("last_name", input.LastName).
		Email("email", input.Email).
		Required("subject", input.Subject).
		Required("message", input.Message).
		MaxLen("message", input.Message, 2000).
		Err()
	if err != nil {
		return nil, err
	}

	record := &Contact{
		ID:        uuidv7.New(),
		Date:      input.Date,
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Phone:     input.Phone,
		Subject:   input.Subject,
		Message:   input.Message,
		Status:    StatusUnread,
	}

	if err := service.store.Create(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// SetStatus archives or un-archives a message.
func (service *Service) SetStatus(ctx context.Context, id string, status Status) (*Contact, error) {
	if !status.IsValid() {
		return nil, validate.RequiredError("status", "Please, choose a type of status")
	}

	record, err := service.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	record.Status = status

	if err := service.store.Update(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// Delete removes a message.
func (service *Service) Delete(ctx context.Context, id string) error {
	return service.store.Delete(ctx, id)
}
