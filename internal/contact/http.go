// Copyright (c) 2026 Miranda Hotel. All rights reserved.

package contact

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mirandahotel/api/internal/platform/respond"
	"github.com/mirandahotel/api/internal/platform/validate"
	"github.com/mirandahotel/api/pkg/datefmt"
	"github.com/mirandahotel/api/pkg/pagination"
)

// Handler implements the guest message HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a contact [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the contact endpoints.
//
// # Endpoints
//   - GET    /              : paginated inbox, newest first.
//   - POST   /              : record a guest message.
//   - GET    /{contactID}   : detail.
//   - PATCH  /{contactID}   : archive or un-archive.
//   - DELETE /{contactID}   : remove the message.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Get("/{contactID}", handler.detail)
	router.Patch("/{contactID}", handler.setStatus)
	router.Delete("/{contactID}", handler.remove)

	return router
}

type contactPayload struct {
	Date      *string `json:"date"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Subject   string  `json:"subject"`
	Message   string  `json:"message"`
}

type statusPayload struct {
	Status string `json:"status"`
}

// list handles GET /contacts.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	page := pagination.FromRequest(request)

	records, meta, err := handler.service.List(request.Context(), page)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, records, meta)
}

// detail handles GET /contacts/{contactID}.
func (handler *Handler) detail(writer http.ResponseWriter, request *http.Request) {
	record, err := handler.service.Get(request.Context(), chi.URLParam(request, "contactID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, record)
}

// create handles POST /contacts.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var payload contactPayload
	if err := json.NewDecoder(request.Body).Decode(&payload); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	input := CreateInput{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
		Phone:     payload.Phone,
		Subject:   payload.Subject,
		Message:   payload.Message,
	}
	if payload.Date != nil {
		date, err := datefmt.Parse(*payload.Date)
		if err != nil {
			respond.Error(writer, request, validate.RequiredError("date", "Must be a valid date"))
			return
		}
		input.Date = date
	}

	record, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, record)
}

// setStatus handles PATCH /contacts/{contactID}.
func (handler *Handler) setStatus(writer http.ResponseWriter, request *http.Request) {
	var payload statusPayload
	if err := json.NewDecoder(request.Body).Decode(&payload); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	record, err := handler.service.SetStatus(request.Context(), chi.URLParam(request, "contactID"), Status(payload.Status))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, record)
}

// remove handles DELETE /contacts/{contactID}.
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), chi.URLParam(request, "contactID")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
