// Copyright (c) 2026 Miranda Hotel. All rights reserved.

package staff_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirandahotel/api/internal/platform/apperr"
	"github.com/mirandahotel/api/internal/platform/sec"
	"github.com/mirandahotel/api/internal/staff"
	"github.com/mirandahotel/api/pkg/pagination"
)

// fakeStore is an in-memory staff.Store for service tests.
type fakeStore struct {
	members map[string]*staff.Staff
}

func newFakeStore() *fakeStore {
	return &fakeStore{members: map[string]*staff.Staff{}}
}

func (store *fakeStore) FindByID(_ context.Context, id string) (*staff.Staff, error) {
	if member, found := store.members[id]; found {
		copied := *member
		return &copied, nil
	}
	return nil, apperr.NotFound("User")
}

func (store *fakeStore) FindByEmail(_ context.Context, email string) (*staff.Staff, error) {
	for _, member := range store.members {
		if member.Email == email {
			copied := *member
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (store *fakeStore) List(_ context.Context, _ string, _ pagination.Params) ([]staff.Staff, int, error) {
	members := make([]staff.Staff, 0, len(store.members))
	for _, member := range store.members {
		members = append(members, *member)
	}
	return members, len(members), nil
}

func (store *fakeStore) Create(_ context.Context, member *staff.Staff) error {
	copied := *member
	store.members[member.ID] = &copied
	return nil
}

func (store *fakeStore) Update(_ context.Context, member *staff.Staff) error {
	if _, found := store.members[member.ID]; !found {
		return apperr.NotFound("User")
	}
	copied := *member
	store.members[member.ID] = &copied
	return nil
}

func (store *fakeStore) Delete(_ context.Context, id string) error {
	if _, found := store.members[id]; !found {
		return apperr.NotFound("User")
	}
	delete(store.members, id)
	return nil
}

func validCreateInput() staff.CreateInput {
	return staff.CreateInput{
		FirstName: "Ana",
		LastName:  "Ruiz",
		StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Telephone: "+34 612 345 678",
		Email:     "ana.ruiz@mirandahotel.example",
		Password:  "s3cret",
	}
}

/*
TestService_Create verifies defaults, ID assignment, and that the stored
credential is a bcrypt hash rather than the plaintext password.
*/
func TestService_Create(t *testing.T) {
	service := staff.NewService(newFakeStore())

	member, err := service.Create(context.Background(), validCreateInput())
	require.NoError(t, err)

	assert.NotEmpty(t, member.ID)
	assert.Equal(t, staff.StatusActive, member.Status)
	assert.Equal(t, staff.JobReservationDesk, member.Job)
	assert.NotEqual(t, "s3cret", member.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("s3cret", member.PasswordHash))
}

/*
TestService_Create_Validation covers the fast-fail input rules.
*/
func TestService_Create_Validation(t *testing.T) {
	service := staff.NewService(newFakeStore())

	tests := []struct {
		name   string
		mutate func(*staff.CreateInput)
	}{
		{"missing_first_name", func(input *staff.CreateInput) { input.FirstName = "" }},
		{"bad_email", func(input *staff.CreateInput) { input.Email = "nope" }},
		{"short_password", func(input *staff.CreateInput) { input.Password = "abc" }},
		{"unknown_job", func(input *staff.CreateInput) { input.Job = "Janitor" }},
		{"missing_start_date", func(input *staff.CreateInput) { input.StartDate = time.Time{} }},
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
TestService_Create_DuplicateEmail verifies the uniqueness conflict.
*/
func TestService_Create_DuplicateEmail(t *testing.T) {
	service := staff.NewService(newFakeStore())

	_, err := service.Create(context.Background(), validCreateInput())
	require.NoError(t, err)

	_, err = service.Create(context.Background(), validCreateInput())
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
	assert.Equal(t, "Email is already registered", ae.Message)
}

/*
TestService_Update verifies pointer-patch semantics: supplied fields
change, omitted fields survive, and a new password is re-hashed.
*/
func TestService_Update(t *testing.T) {
	store := newFakeStore()
	service := staff.NewService(store)

	member, err := service.Create(context.Background(), validCreateInput())
	require.NoError(t, err)
	originalHash := member.PasswordHash

	newPhone := "+34 699 999 999"
	inactive := staff.StatusInactive
	updated, err := service.Update(context.Background(), member.ID, staff.UpdateInput{
		Telephone: &newPhone,
		Status:    &inactive,
	})
	require.NoError(t, err)

	assert.Equal(t, newPhone, updated.Telephone)
	assert.Equal(t, staff.StatusInactive, updated.Status)
	assert.Equal(t, "Ana", updated.FirstName)
	assert.Equal(t, originalHash, updated.PasswordHash)

	newPassword := "rotated-pass"
	updated, err = service.Update(context.Background(), member.ID, staff.UpdateInput{
		Password: &newPassword,
	})
	require.NoError(t, err)
	assert.NotEqual(t, originalHash, updated.PasswordHash)
	assert.True(t, sec.CheckPasswordHash(newPassword, updated.PasswordHash))
}

/*
TestService_Update_NotFound verifies the missing-account error path.
*/
func TestService_Update_NotFound(t *testing.T) {
	service := staff.NewService(newFakeStore())

	_, err := service.Update(context.Background(), "missing-id", staff.UpdateInput{})
	assert.True(t, apperr.IsNotFound(err))
}

/*
TestService_Delete verifies removal and the not-found path.
*/
func TestService_Delete(t *testing.T) {
	store := newFakeStore()
	service := staff.NewService(store)

	member, err := service.Create(context.Background(), validCreateInput())
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), member.ID))
	assert.True(t, apperr.IsNotFound(service.Delete(context.Background(), member.ID)))
}
