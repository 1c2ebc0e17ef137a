// Copyright (c) 2026 Miranda Hotel. All rights reserved.

// Command seed loads a development data set: the admin account, a few
// rooms with facilities, sample bookings, and guest messages.
//
// It is idempotent — rerunning against a seeded database changes
// nothing. Intended for local development and demo environments only.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/mirandahotel/api/internal/booking"
	"github.com/mirandahotel/api/internal/contact"
	"github.com/mirandahotel/api/internal/platform/apperr"
	"github.com/mirandahotel/api/internal/platform/config"
	"github.com/mirandahotel/api/internal/platform/constants"
	"github.com/mirandahotel/api/internal/platform/migration"
	pgstore "github.com/mirandahotel/api/internal/platform/postgres"
	"github.com/mirandahotel/api/internal/room"
	"github.com/mirandahotel/api/internal/staff"
	"github.com/mirandahotel/api/pkg/pagination"
)

// AdminEmail is the seeded back-office account. The password is "0000";
// change it before exposing the environment.
const AdminEmail = "admin.miranda@example.com"

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})).With(slog.String("app", constants.AppName+"-seed"))

	cfg, err := config.Load()
	must(log, err, "load configuration")

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, log)
	must(log, err, "connect to postgres")
	defer pool.Close()

	must(log, migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log), "run migrations")

	staffService := staff.NewService(staff.NewPostgresStore(pool))
	roomStore := room.NewPostgresStore(pool)
	roomService := room.NewService(roomStore)
	bookingService := booking.NewService(booking.NewPostgresStore(pool), roomStore)
	contactService := contact.NewService(contact.NewPostgresStore(pool))

	seedAdmin(ctx, log, staffService)
	rooms := seedRooms(ctx, log, roomService)
	seedBookings(ctx, log, bookingService, rooms)
	seedContacts(ctx, log, contactService)

	log.Info("seed_finished")
}

// seedAdmin creates the admin account unless it already exists.
func seedAdmin(ctx context.Context, log *slog.Logger, service *staff.Service) {
	_, err := service.Create(ctx, staff.CreateInput{
		FirstName:      "Admin",
		LastName:       "Miranda",
		StartDate:      time.Now(),
		JobDescription: "Full access to the management dashboard",
		Telephone:      "+34 600 000 000",
		Status:         staff.StatusActive,
		Job:            staff.JobManager,
		Email:          AdminEmail,
		Password:       "0000",
	})
	if err != nil {
		if isAlreadySeeded(err) {
			log.Info("seed_admin_exists", slog.String("email", AdminEmail))
			return
		}
		must(log, err, "seed admin account")
	}

	log.Info("seed_admin_created", slog.String("email", AdminEmail))
}

// seedRooms creates the demo catalogue when it is not there yet and
// returns the rooms to hang bookings on.
func seedRooms(ctx context.Context, log *slog.Logger, service *room.Service) []room.Room {
	existing, _, err := service.List(ctx, pagination.Params{Page: 1, Limit: 10})
	must(log, err, "inspect room catalogue")
	if len(existing) > 0 {
		log.Info("seed_rooms_exist", slog.Int("count", len(existing)))
		return existing
	}

	inputs := []room.CreateInput{
		{
			Number:             101,
			Name:               "Deluxe Sea View",
			Type:               room.TypeDoubleSuper,
			Description:        "Corner room on the first floor with a full sea view.",
			CancellationPolicy: "Free cancellation up to 48 hours before check-in.",
			PriceNight:         195,
			Discount:           10,
			Photos:             []string{"https://cdn.mirandahotel.example/rooms/101-1.jpg"},
			Facilities:         []string{"Air conditioning", "Sea view", "Mini bar"},
		},
		{
			Number:             102,
			Name:               "Classic Double",
			Type:               room.TypeDoubleBed,
			Description:        "Quiet double room facing the inner courtyard.",
			CancellationPolicy: "Free cancellation up to 24 hours before check-in.",
			PriceNight:         120,
			Photos:             []string{"https://cdn.mirandahotel.example/rooms/102-1.jpg"},
			Facilities:         []string{"Air conditioning", "Desk"},
		},
		{
			Number:             201,
			Name:               "Garden Suite",
			Type:               room.TypeSuite,
			Description:        "Suite with private terrace over the garden.",
			CancellationPolicy: "Non-refundable.",
			PriceNight:         310,
			Discount:           15,
			Photos:             []string{"https://cdn.mirandahotel.example/rooms/201-1.jpg"},
			Facilities:         []string{"Terrace", "Bathtub", "Mini bar"},
		},
	}

	rooms := make([]room.Room, 0, len(inputs))
	for _, input := range inputs {
		created, err := service.Create(ctx, input)
		must(log, err, "seed room")
		rooms = append(rooms, *created)
	}

	log.Info("seed_rooms_created", slog.Int("count", len(rooms)))
	return rooms
}

// seedBookings creates sample reservations when the table is empty.
func seedBookings(ctx context.Context, log *slog.Logger, service *booking.Service, rooms []room.Room) {
	if len(rooms) == 0 {
		return
	}

	existing, _, err := service.List(ctx, "", pagination.Params{Page: 1, Limit: 1})
	must(log, err, "inspect bookings")
	if len(existing) > 0 {
		log.Info("seed_bookings_exist")
		return
	}

	now := time.Now()
	inputs := []booking.CreateInput{
		{
			FirstName:      "Laura",
			LastName:       "Santos",
			CheckIn:        now.AddDate(0, 0, 3),
			CheckOut:       now.AddDate(0, 0, 7),
			SpecialRequest: "Late check-in, arriving around midnight.",
			Status:         booking.StatusCheckIn,
			RoomID:         rooms[0].ID,
		},
		{
			FirstName: "James",
			LastName:  "Holt",
			CheckIn:   now.AddDate(0, 0, -2),
			CheckOut:  now.AddDate(0, 0, 2),
			Status:    booking.StatusInProgress,
			RoomID:    rooms[len(rooms)-1].ID,
		},
	}

	for _, input := range inputs {
		_, err := service.Create(ctx, input)
		must(log, err, "seed booking")
	}

	log.Info("seed_bookings_created", slog.Int("count", len(inputs)))
}

// seedContacts creates sample guest messages when the inbox is empty.
func seedContacts(ctx context.Context, log *slog.Logger, service *contact.Service) {
	existing, _, err := service.List(ctx, pagination.Params{Page: 1, Limit: 1})
	must(log, err, "inspect contacts")
	if len(existing) > 0 {
		log.Info("seed_contacts_exist")
		return
	}

	inputs := []contact.CreateInput{
		{
			FirstName: "Marta",
			LastName:  "Iglesias",
			Email:     "marta.iglesias@example.com",
			Phone:     "+34 611 222 333",
			Subject:   "Parking availability",
			Message:   "Is there on-site parking for guests arriving by car?",
		},
		{
			FirstName: "Oliver",
			LastName:  "Grant",
			Email:     "oliver.grant@example.com",
			Subject:   "Anniversary stay",
			Message:   "We are celebrating our anniversary, any chance of a room upgrade?",
		},
	}

	for _, input := range inputs {
		_, err := service.Create(ctx, input)
		must(log, err, "seed contact")
	}

	log.Info("seed_contacts_created", slog.Int("count", len(inputs)))
}

// isAlreadySeeded reports whether the error means the record exists.
func isAlreadySeeded(err error) bool {
	appErr := apperr.As(err)
	return appErr != nil && appErr.Code == "CONFLICT"
}

func must(log *slog.Logger, err error, context string) {
	if err != nil {
		log.Error("seed failure",
			slog.String("context", context),
			slog.Any("error", err),
		)
		os.Exit(1)
	}
}
