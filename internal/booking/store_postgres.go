// Copyright (c) 2026 Miranda Hotel. All rights reserved.

package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mirandahotel/api/internal/platform/apperr"
	"github.com/mirandahotel/api/internal/platform/dberr"
	"github.com/mirandahotel/api/internal/room"
	"github.com/mirandahotel/api/pkg/pagination"
)

// bookingColumns is the scan order shared by every booking query. The
// room is joined on every read so the embedded entity hydrates in one
// round trip.
const bookingColumns = `
	b.id, b.first_name, b.last_name, b.order_date, b.check_in, b.check_out,
	b.special_request, b.status, b.room_id, b.created_at, b.updated_at,
	r.id, r.number, r.name, r.type, r.description, r.cancellation_policy,
	r.price_night, r.discount, r.has_offer, r.status, r.photos,
	r.created_at, r.updated_at`

// PostgresStore implements [Store] using pgx.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates the PostgreSQL implementation of the booking store.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// FindByID retrieves a booking with its embedded room.
func (store *PostgresStore) FindByID(ctx context.Context, id string) (*Booking, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM booking b
		JOIN room r ON r.id = b.room_id
		WHERE b.id = $1`, bookingColumns)

	record, err := scanBooking(store.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Booking")
		}
		return nil, fmt.Errorf("booking_store_find_by_id: %w", err)
	}

	if err := store.loadRoomFacilities(ctx, record); err != nil {
		return nil, err
	}

	return record, nil
}

// List returns a page of bookings filtered by guest name.
func (store *PostgresStore) List(ctx context.Context, searchTerm string, page pagination.Params) ([]Booking, int, error) {
	pattern := "%" + searchTerm + "%"

	const countQuery = `
		SELECT COUNT(*) FROM booking
		WHERE first_name ILIKE $1 OR last_name ILIKE $1`

	var total int
	if err := store.pool.QueryRow(ctx, countQuery, pattern).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("booking_store_count: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM booking b
		JOIN room r ON r.id = b.room_id
		WHERE b.first_name ILIKE $1 OR b.last_name ILIKE $1
		ORDER BY b.order_date DESC
		LIMIT $2 OFFSET $3`, bookingColumns)

	rows, err := store.pool.Query(ctx, query, pattern, page.Limit, page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("booking_store_list: %w", err)
	}
	defer rows.Close()

	records := make([]Booking, 0, page.Limit)
	for rows.Next() {
		record, err := scanBooking(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("booking_store_list_scan: %w", err)
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("booking_store_list_rows: %w", err)
	}

	if err := store.loadAllRoomFacilities(ctx, records); err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// Create persists a new booking.
func (store *PostgresStore) Create(ctx context.Context, record *Booking) error {
	const query = `
		INSERT INTO booking (
			id, first_name, last_name, order_date, check_in, check_out,
			special_request, status, room_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	now := time.Now()
	if record.CreatedAt.IsZero() {
		record.CreatedAt = now
	}
	record.UpdatedAt = now

	_, err := store.pool.Exec(ctx, query,
		record.ID,
		record.FirstName,
		record.LastName,
		record.OrderDate,
		record.CheckIn,
		record.CheckOut,
		record.SpecialRequest,
		record.Status,
		record.RoomID,
		record.CreatedAt,
		record.UpdatedAt,
	)

	if err != nil {
		return dberr.Wrap(err, "Booking")
	}

	return nil
}

// Update persists changes to a booking.
func (store *PostgresStore) Update(ctx context.Context, record *Booking) error {
	const query = `
		UPDATE booking
		SET first_name = $2, last_name = $3, order_date = $4, check_in = $5,
			check_out = $6, special_request = $7, status = $8, room_id = $9,
			updated_at = $10
		WHERE id = $1`

	record.UpdatedAt = time.Now()

	tag, err := store.pool.Exec(ctx, query,
		record.ID,
		record.FirstName,
		record.LastName,
		record.OrderDate,
		record.CheckIn,
		record.CheckOut,
		record.SpecialRequest,
		record.Status,
		record.RoomID,
		record.UpdatedAt,
	)

	if err != nil {
		return dberr.Wrap(err, "Booking")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Booking")
	}

	return nil
}

// Delete removes a booking by ID.
func (store *PostgresStore) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM booking WHERE id = $1`

	tag, err := store.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("booking_store_delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Booking")
	}

	return nil
}

// loadRoomFacilities hydrates the facilities of one booking's room.
func (store *PostgresStore) loadRoomFacilities(ctx context.Context, record *Booking) error {
	facilities, err := store.queryFacilities(ctx, []string{record.RoomID})
	if err != nil {
		return err
	}
	record.Room.Facilities = facilities[record.RoomID]
	return nil
}

// loadAllRoomFacilities hydrates the facilities for a page of bookings
// in one query.
func (store *PostgresStore) loadAllRoomFacilities(ctx context.Context, records []Booking) error {
	if len(records) == 0 {
		return nil
	}

	roomIDs := make([]string, 0, len(records))
	for _, record := range records {
		roomIDs = append(roomIDs, record.RoomID)
	}

	facilities, err := store.queryFacilities(ctx, roomIDs)
	if err != nil {
		return err
	}
	for index := range records {
		records[index].Room.Facilities = facilities[records[index].RoomID]
	}
	return nil
}

// queryFacilities groups facilities by room ID for a set of rooms.
func (store *PostgresStore) queryFacilities(ctx context.Context, roomIDs []string) (map[string][]room.Facility, error) {
	const query = `
		SELECT rf.room_id, f.id, f.name
		FROM room_facility rf
		JOIN facility f ON f.id = rf.facility_id
		WHERE rf.room_id = ANY($1)
		ORDER BY f.name ASC`

	rows, err := store.pool.Query(ctx, query, roomIDs)
	if err != nil {
		return nil, fmt.Errorf("booking_store_load_facilities: %w", err)
	}
	defer rows.Close()

	grouped := make(map[string][]room.Facility, len(roomIDs))
	for rows.Next() {
		var roomID string
		var facility room.Facility
		if err := rows.Scan(&roomID, &facility.ID, &facility.Name); err != nil {
			return nil, fmt.Errorf("booking_store_load_facilities_scan: %w", err)
		}
		grouped[roomID] = append(grouped[roomID], facility)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("booking_store_load_facilities_rows: %w", err)
	}

	return grouped, nil
}

// scanBooking maps one joined row onto a Booking with its embedded
// room. The row must have been selected with [bookingColumns].
func scanBooking(row pgx.Row) (*Booking, error) {
	record := &Booking{}
	err := row.Scan(
		&record.ID,
		&record.FirstName,
		&record.LastName,
		&record.OrderDate,
		&record.CheckIn,
		&record.CheckOut,
		&record.SpecialRequest,
		&record.Status,
		&record.RoomID,
		&record.CreatedAt,
		&record.UpdatedAt,
		&record.Room.ID,
		&record.Room.Number,
		&record.Room.Name,
		&record.Room.Type,
		&record.Room.Description,
		&record.Room.CancellationPolicy,
		&record.Room.PriceNight,
		&record.Room.Discount,
		&record.Room.HasOffer,
		&record.Room.Status,
		&record.Room.Photos,
		&record.Room.CreatedAt,
		&record.Room.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if record.Room.Photos == nil {
		record.Room.Photos = []string{}
	}
	return record, nil
}
