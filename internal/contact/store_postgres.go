// Copyright (c) 2026 Miranda Hotel. All rights reserved.

package contact

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

// contactColumns is the scan order shared by every contact query.
const contactColumns = `id, date, first_name, last_name, email, phone,
	subject, message, status, created_at, updated_at`

// PostgresStore implements [Store] using pgx.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates the PostgreSQL implementation of the contact store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// FindByID retrieves a message by ID.
func (store *PostgresStore) FindByID(ctx context.Context, id string) (*Contact, error) {
	query := fmt.Sprintf(`SELECT %s FROM contact WHERE id = $1`, contactColumns)

	record, err := scanContact(store.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Contact")
		}
		return nil, fmt.Errorf("contact_store_find_by_id: %w", err)
	}

	return record, nil
}

// List returns a page of messages, newest first.
func (store *PostgresStore) List(ctx context.Context, page pagination.Params) ([]Contact, int, error) {
	var total int
	if err := store.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contact`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("contact_store_count: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM contact
		ORDER BY date DESC
		LIMIT $1 OFFSET $2`, contactColumns)

	rows, err := store.pool.Query(ctx, query, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("contact_store_list: %w", err)
	}
	defer rows.Close()

	records := make([]Contact, 0, page.Limit)
	for rows.Next() {
		record, err := scanContact(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("contact_store_list_scan: %w", err)
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("contact_store_list_rows: %w", err)
	}

	return records, total, nil
}

// Create persists a new message.
func (store *PostgresStore) Create(ctx context.Context, record *Contact) error {
	const query = `
		INSERT INTO contact (
			id, date, first_name, last_name, email, phone,
			subject, message, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	now := time.Now()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	record.UpdatedAt = now

	_, err := store.pool.Exec(ctx, query,
		record.ID,
		record.Date,
		record.FirstName,
		record.LastName,
		record.Email,
		record.Phone,
		record.Subject,
		record.Message,
		record.Status,
		record.CreatedAt,
		record.UpdatedAt,
	)

	if err != nil {
		return dberr.Wrap(err, "Contact")
	}

	return nil
}

// Update persists changes to a message.
func (store *PostgresStore) Update(ctx context.Context, record *Contact) error {
	const query = `
		UPDATE contact
		SET date = $2, first_name = $3, last_name = $4, email = $5,
			phone = $6, subject = $7, message = $8, status = $9, updated_at = $10
		WHERE id = $1`

	record.UpdatedAt = time.Now()

	tag, err := store.pool.Exec(ctx, query,
		record.ID,
		record.Date,
		record.FirstName,
		record.LastName,
		record.Email,
		record.Phone,
		record.Subject,
		record.Message,
		record.Status,
		record.UpdatedAt,
	)

	if err != nil {
		return dberr.Wrap(err, "Contact")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Contact")
	}

	return nil
}

// Delete removes a message by ID.
func (store *PostgresStore) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM contact WHERE id = $1`

	tag, err := store.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("contact_store_delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Contact")
	}

	return nil
}

// scanContact maps one row onto a Contact entity. The row must have
// been selected with [contactColumns].
func scanContact(row pgx.Row) (*Contact, error) {
	record := &Contact{}
	err := row.Scan(
		&record.ID,
		&record.Date,
		&record.FirstName,
		&record.LastName,
		&record.Email,
		&record.Phone,
		&record.Subject,
		&record.Message,
		&record.Status,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return record, nil
}
