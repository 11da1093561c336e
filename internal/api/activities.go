package api

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/mergington/activities/internal/registry"
)

// ActivityStore is the registry behaviour the handlers depend on.
type ActivityStore interface {
	List() map[string]registry.Activity
	Len() int
	Signup(name, email string) (string, error)
	Unregister(name, email string) (string, error)
}

// ActivitiesHandler serves the /activities endpoints.
type ActivitiesHandler struct {
	store ActivityStore
}

// NewActivitiesHandler creates a new ActivitiesHandler.
func NewActivitiesHandler(store ActivityStore) *ActivitiesHandler {
	return &ActivitiesHandler{store: store}
}

// Routes returns the router for activities endpoints.
func (h *ActivitiesHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Post("/{name}/signup", h.Signup)
	r.Delete("/{name}/unregister", h.Unregister)

	return r
}

// participantRequest is the input shared by signup and unregister.
type participantRequest struct {
	Activity string
	Email    string
}

// parseParticipantRequest reads the activity name from the path and the
// email from the query string.
func parseParticipantRequest(r *http.Request) (participantRequest, error) {
	name := chi.URLParam(r, "name")
	// chi matches on RawPath when it is set, leaving the param escaped.
	// RawPath is only ever a valid encoding, so unescaping cannot fail.
	if r.URL.RawPath != "" {
		if unescaped, err := url.PathUnescape(name); err == nil {
			name = unescaped
		}
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		return participantRequest{}, errors.New("email query parameter is required")
	}

	return participantRequest{Activity: name, Email: email}, nil
}

// List handles GET /activities
// Returns every activity keyed by name.
func (h *ActivitiesHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.List())
}

// Signup handles POST /activities/{name}/signup?email=
func (h *ActivitiesHandler) Signup(w http.ResponseWriter, r *http.Request) {
	req, err := parseParticipantRequest(r)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	msg, err := h.store.Signup(req.Activity, req.Email)
	if err != nil {
		h.writeRegistryError(w, req, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: msg})
}

// Unregister handles DELETE /activities/{name}/unregister?email=
func (h *ActivitiesHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	req, err := parseParticipantRequest(r)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	msg, err := h.store.Unregister(req.Activity, req.Email)
	if err != nil {
		h.writeRegistryError(w, req, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: msg})
}

// registryErrors maps registry errors onto HTTP status codes. The response
// detail is the error's own text, capitalised.
var registryErrors = []struct {
	err    error
	status int
}{
	{registry.ErrActivityNotFound, http.StatusNotFound},
	{registry.ErrAlreadySignedUp, http.StatusBadRequest},
	{registry.ErrNotRegistered, http.StatusBadRequest},
	{registry.ErrActivityFull, http.StatusBadRequest},
}

// writeRegistryError writes the response for a failed registry operation.
func (h *ActivitiesHandler) writeRegistryError(w http.ResponseWriter, req participantRequest, err error) {
	log.Debug().
		Err(err).
		Str("activity", req.Activity).
		Str("email", req.Email).
		Msg("Registration request rejected")

	for _, e := range registryErrors {
		if errors.Is(err, e.err) {
			writeError(w, e.status, errorDetail(e.err))
			return
		}
	}

	log.Error().Err(err).Str("activity", req.Activity).Msg("Registration request failed")
	writeError(w, http.StatusInternalServerError, "Internal server error")
}

// errorDetail turns a sentinel error into a client-facing sentence.
func errorDetail(err error) string {
	msg := err.Error()
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}
