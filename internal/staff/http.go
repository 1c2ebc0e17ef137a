// Copyright (c) 2026 Miranda Hotel. All rights reserved.

package staff

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mirandahotel/api/internal/platform/respond"
	"github.com/mirandahotel/api/internal/platform/validate"
	"github.com/mirandahotel/api/pkg/datefmt"
	"github.com/mirandahotel/api/pkg/pagination"
)

// Handler implements the staff management HTTP endpoints.
//
// Handlers are gatekeepers: JSON parsing, fast-fail input checks, and
// response shaping. No business logic or SQL lives here.
type Handler struct {
	service *Service
}

// NewHandler constructs a staff [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the staff CRUD endpoints.
//
// # Endpoints
//   - GET    /           : list, ?search_term= filters by name.
//   - POST   /           : create an account.
//   - GET    /{staffID}  : detail.
//   - PATCH  /{staffID}  : partial update.
//   - DELETE /{staffID}  : remove the account.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Get("/{staffID}", handler.detail)
	router.Patch("/{staffID}", handler.update)
	router.Delete("/{staffID}", handler.remove)

	return router
}

// staffPayload is the JSON shape shared by create and patch requests.
// Pointer fields distinguish "absent" from "empty" on patch.
type staffPayload struct {
	FirstName      *string `json:"first_name"`
	LastName       *string `json:"last_name"`
	Photo          *string `json:"photo"`
	StartDate      *string `json:"start_date"`
	JobDescription *string `json:"job_description"`
	Telephone      *string `json:"telephone"`
	Status         *string `json:"status"`
	Job            *string `json:"job"`
	Email          *string `json:"email"`
	Password       *string `json:"password"`
}

// list handles GET /users.
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	searchTerm := request.URL.Query().Get("search_term")
	page := pagination.FromRequest(request)

	members, meta, err := handler.service.List(request.Context(), searchTerm, page)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, members, meta)
}

// detail handles GET /users/{staffID}.
func (handler *Handler) detail(writer http.ResponseWriter, request *http.Request) {
	member, err := handler.service.Get(request.Context(), chi.URLParam(request, "staffID"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, member)
}

// create handles POST /users.
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var payload staffPayload
	if err := json.NewDecoder(request.Body).Decode(&payload); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	input := CreateInput{
		FirstName:      stringValue(payload.FirstName),
		LastName:       stringValue(payload.LastName),
		Photo:          stringValue(payload.Photo),
		JobDescription: stringValue(payload.JobDescription),
		Telephone:      stringValue(payload.Telephone),
		Email:          stringValue(payload.Email),
		Password:       stringValue(payload.Password),
	}
	if payload.Status != nil {
		input.Status = Status(*payload.Status)
	}
	if payload.Job != nil {
		input.Job = Job(*payload.Job)
	}
	if payload.StartDate != nil {
		startDate, err := datefmt.Parse(*payload.StartDate)
		if err != nil {
			respond.Error(writer, request, validate.RequiredError("start_date", "Start date must be a valid date"))
			return
		}
		input.StartDate = startDate
	}

	member, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, member)
}

// update handles PATCH /users/{staffID}.
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var payload staffPayload
	if err := json.NewDecoder(request.Body).Decode(&payload); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	input := UpdateInput{
		FirstName:      payload.FirstName,
		LastName:       payload.LastName,
		Photo:          payload.Photo,
		JobDescription: payload.JobDescription,
		Telephone:      payload.Telephone,
		Email:          payload.Email,
		Password:       payload.Password,
	}
	if payload.Status != nil {
		status := Status(*payload.Status)
		input.Status = &status
	}
	if payload.Job != nil {
		job := Job(*payload.Job)
		input.Job = &job
	}
	if payload.StartDate != nil {
		startDate, err := datefmt.Parse(*payload.StartDate)
		if err != nil {
			respond.Error(writer, request, validate.RequiredError("start_date", "Start date must be a valid date"))
			return
		}
		input.StartDate = &startDate
	}

	member, err := handler.service.Update(request.Context(), chi.URLParam(request, "staffID"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, member)
}

// remove handles DELETE /users/{staffID}.
func (handler *Handler) remove(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), chi.URLParam(request, "staffID")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// stringValue dereferences an optional string, defaulting to "".
func stringValue(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
