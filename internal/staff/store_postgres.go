// Copyright (c) 2026 Miranda Hotel. All rights reserved.

package staff

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mirandahotel/api/internal/platform/apperr"
	"github.com/mirandahotel/api/internal/platform/dberr"
	"github.com/mirandahotel/api/pkg/pagination"
)

// staffColumns is the scan order shared by every staff query.
const staffColumns = `id, first_name, last_name, photo, start_date, job_description,
	telephone, status, job, email, password_hash, created_at, updated_at`

// PostgresStore implements [Store] using pgx.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates the PostgreSQL implementation of the staff store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// FindByID retrieves a staff record by its unique ID.
func (store *PostgresStore) FindByID(ctx context.Context, id string) (*Staff, error) {
	query := fmt.Sprintf(`SELECT %s FROM staff WHERE id = $1`, staffColumns)

	member, err := scanStaff(store.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User")
		}
		return nil, fmt.Errorf("staff_store_find_by_id: %w", err)
	}

	return member, nil
}

// FindByEmail retrieves a staff record by its unique email address.
//
// This is the hot path of the session resolver: every authenticated request
// runs it once.
func (store *PostgresStore) FindByEmail(ctx context.Context, email string) (*Staff, error) {
	query := fmt.Sprintf(`SELECT %s FROM staff WHERE email = $1`, staffColumns)

	member, err := scanStaff(store.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User")
		}
		return nil, fmt.Errorf("staff_store_find_by_email: %w", err)
	}

	return member, nil
}

// List returns a page of staff accounts filtered by a name search term.
func (store *PostgresStore) List(ctx context.Context, searchTerm string, page pagination.Params) ([]Staff, int, error) {
	pattern := "%" + searchTerm + "%"

	const countQuery = `
		SELECT COUNT(*) FROM staff
		WHERE first_name ILIKE $1 OR last_name ILIKE $1`

	var total int
	if err := store.pool.QueryRow(ctx, countQuery, pattern).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("staff_store_count: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM staff
		WHERE first_name ILIKE $1 OR last_name ILIKE $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, staffColumns)

	rows, err := store.pool.Query(ctx, query, pattern, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("staff_store_list: %w", err)
	}
	defer rows.Close()

	members := make([]Staff, 0, page.Limit)
	for rows.Next() {
		member, err := scanStaff(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("staff_store_list_scan: %w", err)
		}
		members = append(members, *member)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("staff_store_list_rows: %w", err)
	}

	return members, total, nil
}

// Create persists a new staff record.
func (store *PostgresStore) Create(ctx context.Context, member *Staff) error {
	const query = `
		INSERT INTO staff (
			id, first_name, last_name, photo, start_date, job_description,
			telephone, status, job, email, password_hash, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	now := time.Now()
	if member.CreatedAt.IsZero() {
		member.CreatedAt = now
	}
	member.UpdatedAt = now

	_, err := store.pool.Exec(ctx, query,
		member.ID,
		member.FirstName,
		member.LastName,
		member.Photo,
		member.StartDate,
		member.JobDescription,
		member.Telephone,
		member.Status,
		member.Job,
		member.Email,
		member.PasswordHash,
		member.CreatedAt,
		member.UpdatedAt,
	)

	if err != nil {
		return dberr.Wrap(err, "User")
	}

	return nil
}

// Update persists changes to a staff record.
func (store *PostgresStore) Update(ctx context.Context, member *Staff) error {
	const query = `
		UPDATE staff
		SET first_name = $2, last_name = $3, photo = $4, start_date = $5,
			job_description = $6, telephone = $7, status = $8, job = $9,
			email = $10, password_hash = $11, updated_at = $12
		WHERE id = $1`

	member.UpdatedAt = time.Now()

	tag, err := store.pool.Exec(ctx, query,
		member.ID,
		member.FirstName,
		member.LastName,
		member.Photo,
		member.StartDate,
		member.JobDescription,
		member.Telephone,
		member.Status,
		member.Job,
		member.Email,
		member.PasswordHash,
		member.UpdatedAt,
	)

	if err != nil {
		return dberr.Wrap(err, "User")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("User")
	}

	return nil
}

// Delete removes a staff record by ID.
func (store *PostgresStore) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM staff WHERE id = $1`

	tag, err := store.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("staff_store_delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("User")
	}

	return nil
}

// scanStaff maps one row onto a Staff entity. The row must have been
// selected with [staffColumns].
func scanStaff(row pgx.Row) (*Staff, error) {
	member := &Staff{}
	err := row.Scan(
		&member.ID,
		&member.FirstName,
		&member.LastName,
		&member.Photo,
		&member.StartDate,
		&member.JobDescription,
		&member.Telephone,
		&member.Status,
		&member.Job,
		&member.Email,
		&member.PasswordHash,
		&member.CreatedAt,
		&member.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return member, nil
}
