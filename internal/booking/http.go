// Copyright (c) 2026 Miranda Hotel. All rights reserved.

package booking

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mirandahotel/api/internal/platform/respond"
	"github.com/mirandahotel/api/internal/platform/validate"
	"github.com/mirandahotel/api/pkg/datefmt"
	"github.com/mirandahotel/api/pkg/pagination"
)

// Handler implements the reservation HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a booking [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the booking CRUD endpoints.
//
// # Endpoints
//   - GET    /             : list, ?search_term= filters by guest name.
//   - POST   /             : register a reservation.
//   - GET    /{bookingID}  : detail with embedded room.
//   - PATCH  /{bookingID}  : partial update.
//   - DELETE /{bookingID}  : remove the reservation.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Get("/{bookingID}", handler.detail)
	router.Patch("/{bookingID}", handler.update)
	router.Delete("/{bookingID}", handler.remove)

	return router
}

// bookingPayload is the JSON shape shared by create and patch requests.
// Dates arrive as strings and are parsed up front so the service only
// sees time.Time values.
type bookingPayload struct {
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	OrderDate      *string `json:"order_date"`
	CheckIn        *string `json:"check_in"`
	CheckOut       *string `json:"check_out"`
	SpecialRequest *string `json:"special_request"`
	Status         *string `json:"status"`
	RoomID         *string `json:"room_id"`
}

// list handles GET /bookings.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	searchTerm := request.URL.Query().Get("search_term")
	page := pagination.FromRequest(request)

	records, meta, err := handler.service.List(request.Context(), searchTerm, page)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, records, meta)
}

// detail handles GET /bookings/{bookingID}.
func (handler *Handler) detail(writer http.ResponseWriter, request *http.Request) {
	record, err := handler.service.Get(request.Context(), chi.URLParam(request, "bookingID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, record)
}

// create handles POST /bookings.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var payload bookingPayload
	if err := json.NewDecoder(request.Body).Decode(&payload); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	input := CreateInput{}
	if payload.FirstName != nil {
		input.FirstName = *payload.FirstName
	}
	if payload.LastName != nil {
		input.LastName = *payload.LastName
	}
	if payload.SpecialRequest != nil {
		input.SpecialRequest = *payload.SpecialRequest
	}
	if payload.Status != nil {
		input.Status = Status(*payload.Status)
	}
	if payload.RoomID != nil {
		input.RoomID = *payload.RoomID
	}

	var parseErr error
	input.OrderDate, parseErr = parseOptionalDate(payload.OrderDate, "order_date", parseErr)
	input.CheckIn, parseErr = parseOptionalDate(payload.CheckIn, "check_in", parseErr)
	input.CheckOut, parseErr = parseOptionalDate(payload.CheckOut, "check_out", parseErr)
	if parseErr != nil {
		respond.Error(writer, request, parseErr)
		return
	}

	record, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, record)
}

// update handles PATCH /bookings/{bookingID}.
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var payload bookingPayload
	if err := json.NewDecoder(request.Body).Decode(&payload); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	input := UpdateInput{
		FirstName:      payload.FirstName,
		LastName:       payload.LastName,
		SpecialRequest: payload.SpecialRequest,
		RoomID:         payload.RoomID,
	}
	if payload.Status != nil {
		status := Status(*payload.Status)
		input.Status = &status
	}

	var parseErr error
	input.OrderDate, parseErr = parseOptionalDatePtr(payload.OrderDate, "order_date", parseErr)
	input.CheckIn, parseErr = parseOptionalDatePtr(payload.CheckIn, "check_in", parseErr)
	input.CheckOut, parseErr = parseOptionalDatePtr(payload.CheckOut, "check_out", parseErr)
	if parseErr != nil {
		respond.Error(writer, request, parseErr)
		return
	}

	record, err := handler.service.Update(request.Context(), chi.URLParam(request, "bookingID"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, record)
}

// remove handles DELETE /bookings/{bookingID}.
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), chi.URLParam(request, "bookingID")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// parseOptionalDate parses a date string when present, carrying through
// any earlier parse error so the first failure wins.
func parseOptionalDate(raw *string, field string, previous error) (time.Time, error) {
	if previous != nil {
		return time.Time{}, previous
	}
	if raw == nil {
		return time.Time{}, nil
	}
	parsed, err := datefmt.Parse(*raw)
	if err != nil {
		return time.Time{}, validate.RequiredError(field, "Must be a valid date")
	}
	return parsed, nil
}

// parseOptionalDatePtr is the patch-shaped variant: nil in, nil out.
func parseOptionalDatePtr(raw *string, field string, previous error) (*time.Time, error) {
	if previous != nil {
		return nil, previous
	}
	if raw == nil {
		return nil, nil
	}
	parsed, err := datefmt.Parse(*raw)
	if err != nil {
		return nil, validate.RequiredError(field, "Must be a valid date")
	}
	return &parsed, nil
}
