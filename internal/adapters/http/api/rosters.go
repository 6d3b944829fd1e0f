// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/tandem/internal/adapters/repository"
	"github.com/okian/tandem/internal/domain/model"
)

// RosterDependencies defines the interface for roster operations.
type RosterDependencies interface {
	AddSeeker(ctx context.Context, s model.Seeker) error
	AddProvider(ctx context.Context, p model.Provider) error
	Seekers(ctx context.Context) ([]model.Seeker, error)
	Providers(ctx context.Context) ([]model.Provider, error)
}

// SeekersHandler handles seeker roster requests.
type SeekersHandler struct {
	deps RosterDependencies
}

// NewSeekersHandler creates a new seekers handler.
func NewSeekersHandler(deps RosterDependencies) *SeekersHandler {
	return &SeekersHandler{deps: deps}
}

// HandleSeekers handles POST /seekers and GET /seekers requests.
func (h *SeekersHandler) HandleSeekers(w http.ResponseWriter, r *http.Request) {
	const op = "api.seekers"
	switch r.Method {
	case http.MethodPost:
		var seeker model.Seeker
		if err := json.NewDecoder(r.Body).Decode(&seeker); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		if err := h.deps.AddSeeker(r.Context(), seeker); err != nil {
			writeRosterError(w, op, err)
			return
		}
		writeJSON(w, http.StatusCreated, ackResponse{Status: "created", ID: seeker.ID})
	case http.MethodGet:
		seekers, err := h.deps.Seekers(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
			return
		}
		writeJSON(w, http.StatusOK, seekers)
	default:
		http.NotFound(w, r)
	}
}

// ProvidersHandler handles provider roster requests.
type ProvidersHandler struct {
	deps RosterDependencies
}

// NewProvidersHandler creates a new providers handler.
func NewProvidersHandler(deps RosterDependencies) *ProvidersHandler {
	return &ProvidersHandler{deps: deps}
}

// HandleProviders handles POST /providers and GET /providers requests.
func (h *ProvidersHandler) HandleProviders(w http.ResponseWriter, r *http.Request) {
	const op = "api.providers"
	switch r.Method {
	case http.MethodPost:
		var provider model.Provider
		if err := json.NewDecoder(r.Body).Decode(&provider); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		if err := h.deps.AddProvider(r.Context(), provider); err != nil {
			writeRosterError(w, op, err)
			return
		}
		writeJSON(w, http.StatusCreated, ackResponse{Status: "created", ID: provider.ID})
	case http.MethodGet:
		providers, err := h.deps.Providers(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
			return
		}
		writeJSON(w, http.StatusOK, providers)
	default:
		http.NotFound(w, r)
	}
}

// writeRosterError maps roster write failures onto HTTP statuses: invalid
// records are client errors, duplicate ids are conflicts.
func writeRosterError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidRecord):
		writeError(w, http.StatusBadRequest, "invalid_record", Wrap(op, err))
	case errors.Is(err, repository.ErrDuplicateID):
		writeError(w, http.StatusConflict, "duplicate_id", Wrap(op, err))
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
	}
}
