// Copyright (c) 2026 Miranda Hotel. All rights reserved.

package room

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
	"github.com/mirandahotel/api/pkg/uuidv7"
)

// roomColumns is the scan order shared by every room query.
const roomColumns = `id, number, name, type, description, cancellation_policy,
	price_night, discount, has_offer, status, photos, created_at, updated_at`

// PostgresStore implements [Store] using pgx.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates the PostgreSQL implementation of the room store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// FindByID retrieves one room with its facilities.
func (store *PostgresStore) FindByID(ctx context.Context, id string) (*Room, error) {
	query := fmt.Sprintf(`SELECT %s FROM room WHERE id = $1`, roomColumns)

	record, err := scanRoom(store.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Room")
		}
		return nil, fmt.Errorf("room_store_find_by_id: %w", err)
	}

	facilitiesByRoom, err := store.loadFacilities(ctx, []string{record.ID})
	if err != nil {
		return nil, err
	}
	record.Facilities = facilitiesByRoom[record.ID]

	return record, nil
}

// List returns a page of rooms ordered by room number.
func (store *PostgresStore) List(ctx context.Context, page pagination.Params) ([]Room, int, error) {
	var total int
	if err := store.pool.QueryRow(ctx, `SELECT COUNT(*) FROM room`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("room_store_count: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM room
		ORDER BY number ASC
		LIMIT $1 OFFSET $2`, roomColumns)

	rows, err := store.pool.Query(ctx, query, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("room_store_list: %w", err)
	}
	defer rows.Close()

	records := make([]Room, 0, page.Limit)
	ids := make([]string, 0, page.Limit)
	for rows.Next() {
		record, err := scanRoom(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("room_store_list_scan: %w", err)
		}
		records = append(records, *record)
		ids = append(ids, record.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("room_store_list_rows: %w", err)
	}

	// Second round trip instead of a fan-out join: the join would
	// multiply room rows per facility and break LIMIT/OFFSET math.
	facilitiesByRoom, err := store.loadFacilities(ctx, ids)
	if err != nil {
		return nil, 0, err
	}
	for index := range records {
		records[index].Facilities = facilitiesByRoom[records[index].ID]
	}

	return records, total, nil
}

// Create persists a new room and its facilities in one transaction.
func (store *PostgresStore) Create(ctx context.Context, record *Room) error {
	now := time.Now()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	record.UpdatedAt = now

	return store.inTx(ctx, func(tx pgx.Tx) error {
		const query = `
			INSERT INTO room (
				id, number, name, type, description, cancellation_policy,
				price_night, discount, has_offer, status, photos, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

		_, err := tx.Exec(ctx, query,
			record.ID,
			record.Number,
			record.Name,
			record.Type,
			record.Description,
			record.CancellationPolicy,
			record.PriceNight,
			record.Discount,
			record.HasOffer,
			record.Status,
			record.Photos,
			record.CreatedAt,
			record.UpdatedAt,
		)
		if err != nil {
			return dberr.Wrap(err, "Room")
		}

		return store.assignFacilities(ctx, tx, record)
	})
}

// Update persists room changes and rewrites the facility assignments.
func (store *PostgresStore) Update(ctx context.Context, record *Room) error {
	record.UpdatedAt = time.Now()

	return store.inTx(ctx, func(tx pgx.Tx) error {
		const query = `
			UPDATE room
			SET number = $2, name = $3, type = $4, description = $5,
				cancellation_policy = $6, price_night = $7, discount = $8,
				has_offer = $9, status = $10, photos = $11, updated_at = $12
			WHERE id = $1`

		tag, err := tx.Exec(ctx, query,
			record.ID,
			record.Number,
			record.Name,
			record.Type,
			record.Description,
			record.CancellationPolicy,
			record.PriceNight,
			record.Discount,
			record.HasOffer,
			record.Status,
			record.Photos,
			record.UpdatedAt,
		)
		if err != nil {
			return dberr.Wrap(err, "Room")
		}
		if tag.RowsAffected() == 0 {
			return apperr.NotFound("Room")
		}

		if _, err := tx.Exec(ctx, `DELETE FROM room_facility WHERE room_id = $1`, record.ID); err != nil {
			return fmt.Errorf("room_store_clear_facilities: %w", err)
		}

		return store.assignFacilities(ctx, tx, record)
	})
}

// Delete removes a room. The room_facility rows go with it via cascade.
func (store *PostgresStore) Delete(ctx context.Context, id string) error {
	tag, err := store.pool.Exec(ctx, `DELETE FROM room WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("room_store_delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Room")
	}

	return nil
}

// inTx runs fn inside a transaction with commit/rollback handling.
func (store *PostgresStore) inTx(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := store.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("room_store_begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("room_store_commit: %w", err)
	}
	return nil
}

// assignFacilities upserts the named facilities and links them to the
// room. Facility identity is the name; IDs are filled in on the record.
func (store *PostgresStore) assignFacilities(ctx context.Context, tx pgx.Tx, record *Room) error {
	for index := range record.Facilities {
		facility := &record.Facilities[index]
		if facility.ID == "" {
			facility.ID = uuidv7.New()
		}

		const upsert = `
			INSERT INTO facility (id, name) VALUES ($1, $2)
			ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
			RETURNING id`

		if err := tx.QueryRow(ctx, upsert, facility.ID, facility.Name).Scan(&facility.ID); err != nil {
			return fmt.Errorf("room_store_upsert_facility: %w", err)
		}

		const link = `
			INSERT INTO room_facility (room_id, facility_id) VALUES ($1, $2)
			ON CONFLICT DO NOTHING`

		if _, err := tx.Exec(ctx, link, record.ID, facility.ID); err != nil {
			return fmt.Errorf("room_store_link_facility: %w", err)
		}
	}

	return nil
}

// loadFacilities fetches the facilities for a set of rooms in one query
// and groups them by room ID.
func (store *PostgresStore) loadFacilities(ctx context.Context, roomIDs []string) (map[string][]Facility, error) {
	grouped := make(map[string][]Facility, len(roomIDs))
	if len(roomIDs) == 0 {
		return grouped, nil
	}

	const query = `
		SELECT rf.room_id, f.id, f.name
		FROM room_facility rf
		JOIN facility f ON f.id = rf.facility_id
		WHERE rf.room_id = ANY($1)
		ORDER BY f.name ASC`

	rows, err := store.pool.Query(ctx, query, roomIDs)
	if err != nil {
		return nil, fmt.Errorf("room_store_load_facilities: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var roomID string
		var facility Facility
		if err := rows.Scan(&roomID, &facility.ID, &facility.Name); err != nil {
			return nil, fmt.Errorf("room_store_load_facilities_scan: %w", err)
		}
		grouped[roomID] = append(grouped[roomID], facility)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("room_store_load_facilities_rows: %w", err)
	}

	return grouped, nil
}

// scanRoom maps one row onto a Room entity. The row must have been
// selected with [roomColumns].
func scanRoom(row pgx.Row) (*Room, error) {
	record := &Room{}
	err := row.Scan(
		&record.ID,
		&record.Number,
		&record.Name,
		&record.Type,
		&record.Description,
		&record.CancellationPolicy,
		&record.PriceNight,
		&record.Discount,
		&record.HasOffer,
		&record.Status,
		&record.Photos,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if record.Photos == nil {
		record.Photos = []string{}
	}
	return record, nil
}
