// Copyright (c) 2026 Miranda Hotel. All rights reserved.

package auth

import (
	"encoding/json"
	"net/http"

	"github.com/mirandahotel/api/internal/platform/apperr"
	"github.com/mirandahotel/api/internal/platform/constants"
	"github.com/mirandahotel/api/internal/platform/ctxutil"
	"github.com/mirandahotel/api/internal/platform/respond"
	"github.com/mirandahotel/api/internal/platform/validate"
	"github.com/mirandahotel/api/internal/staff"
)

// # Definitions & Constructors

// Handler implements the authentication HTTP endpoints.
//
// # Scope
//
// Login and logout only. Session resolution on every other request is
// the middleware's job.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new auth [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// # Request & Response Payloads

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *staff.Staff `json:"user"`
}

type logoutResponse struct {
	Message string `json:"message"`
}

/*
Login authenticates a staff member and establishes a session.

POST /login

Description: Verifies credentials, sets the session cookie, and returns
the token alongside the safe account projection (the password hash never
serializes).

Request:
  - Body: loginRequest (Email, Password)

Response:
  - 200: loginResponse: Token and account profile
  - 400: ErrInvalidJSON: Bad input or validation failure
  - 401: Unauthorized: Invalid credentials
  - 404: NotFound: Unknown email
  - 429: RateLimited: Too many attempts
*/
func (handler *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	var input loginRequest

	if err := json.NewDecoder(request.Body).Decode(&input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	// Fast-fail input checks
	validator := &validate.Validator{}
	err := validator.
		Required("email", input.Email).
		Email("email", input.Email).
		Required("password", input.Password).
		Err()
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Delegate the credential check and token minting
	member, token, err := handler.authService.Login(request.Context(), input.Email, input.Password)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	// Install the session cookie. HttpOnly keeps it away from scripts;
	// the dashboard also receives the raw token for bearer use.
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(constants.TokenTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	respond.OK(writer, loginResponse{Token: token, User: member})
}

/*
Logout ends the current session.

POST /logout

Description: Requires an authenticated principal, then expires the
session cookie. The JWT itself stays valid until its expiry; the server
keeps no session state to revoke.

Response:
  - 200: logoutResponse: Confirmation message
  - 401: Unauthorized: No authenticated principal on the request
*/
func (handler *Handler) Logout(writer http.ResponseWriter, request *http.Request) {

	// Anonymous callers have nothing to log out of
	if ctxutil.GetPrincipal(request.Context()) == nil {
		respond.Error(writer, request, apperr.Unauthorized("User is not authenticated"))
		return
	}

	// Expire the cookie immediately
	http.SetCookie(writer, &http.Cookie{
		Name:     constants.TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	respond.OK(writer, logoutResponse{Message: "User logged out"})
}
