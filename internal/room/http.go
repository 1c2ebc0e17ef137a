// Copyright (c) 2026 Miranda Hotel. All rights reserved.

package room

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mirandahotel/api/internal/platform/respond"
	"github.com/mirandahotel/api/internal/platform/validate"
	"github.com/mirandahotel/api/pkg/pagination"
)

// Handler implements the room catalogue HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a room [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the room CRUD endpoints.
//
// # Endpoints
//   - GET    /          : paginated catalogue.
//   - POST   /          : register a room.
//   - GET    /{roomID}  : detail with facilities.
//   - PATCH  /{roomID}  : partial update.
//   - DELETE /{roomID}  : remove the room.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Get("/{roomID}", handler.detail)
	router.Patch("/{roomID}", handler.update)
	router.Delete("/{roomID}", handler.remove)

	return router
}

// roomPayload is the JSON shape shared by create and patch requests.
type roomPayload struct {
	Number             *int      `json:"number"`
	Name               *string   `json:"name"`
	Type               *string   `json:"type"`
	Description        *string   `json:"description"`
	CancellationPolicy *string   `json:"cancellation_policy"`
	PriceNight         *float64  `json:"price_night"`
	Discount           *int      `json:"discount"`
	HasOffer           *bool     `json:"has_offer"`
	Status             *string   `json:"status"`
	Photos             *[]string `json:"photos"`
	Facilities         *[]string `json:"facilities"`
}

// list handles GET /rooms.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	page := pagination.FromRequest(request)

	records, meta, err := handler.service.List(request.Context(), page)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, records, meta)
}

// detail handles GET /rooms/{roomID}.
func (handler *Handler) detail(writer http.ResponseWriter, request *http.Request) {
	record, err := handler.service.Get(request.Context(), chi.URLParam(request, "roomID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, record)
}

// create handles POST /rooms.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var payload roomPayload
	if err := json.NewDecoder(request.Body).Decode(&payload); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	input := CreateInput{}
	if payload.Number != nil {
		input.Number = *payload.Number
	}
	if payload.Name != nil {
		input.Name = *payload.Name
	}
	if payload.Type != nil {
		input.Type = Type(*payload.Type)
	}
	if payload.Description != nil {
		input.Description = *payload.Description
	}
	if payload.CancellationPolicy != nil {
		input.CancellationPolicy = *payload.CancellationPolicy
	}
	if payload.PriceNight != nil {
		input.PriceNight = *payload.PriceNight
	}
	if payload.Discount != nil {
		input.Discount = *payload.Discount
	}
	if payload.HasOffer != nil {
		input.HasOffer = *payload.HasOffer
	}
	if payload.Status != nil {
		input.Status = Status(*payload.Status)
	}
	if payload.Photos != nil {
		input.Photos = *payload.Photos
	}
	if payload.Facilities != nil {
		input.Facilities = *payload.Facilities
	}

	record, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, record)
}

// update handles PATCH /rooms/{roomID}.
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var payload roomPayload
	if err := json.NewDecoder(request.Body).Decode(&payload); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	input := UpdateInput{
		Number:             payload.Number,
		Name:               payload.Name,
		Description:        payload.Description,
		CancellationPolicy: payload.CancellationPolicy,
		PriceNight:         payload.PriceNight,
		Discount:           payload.Discount,
		HasOffer:           payload.HasOffer,
		Photos:             payload.Photos,
		Facilities:         payload.Facilities,
	}
	if payload.Type != nil {
		roomType := Type(*payload.Type)
		input.Type = &roomType
	}
	if payload.Status != nil {
		status := Status(*payload.Status)
		input.Status = &status
	}

	record, err := handler.service.Update(request.Context(), chi.URLParam(request, "roomID"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, record)
}

// remove handles DELETE /rooms/{roomID}.
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), chi.URLParam(request, "roomID")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
