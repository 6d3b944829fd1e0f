// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/okian/tandem/internal/adapters/repository"
	"github.com/okian/tandem/internal/domain/types"
)

// MatchDependencies defines the interface for best-match operations.
type MatchDependencies interface {
	BestMatches(ctx context.Context, seekerID string, limit int) ([]types.MatchResult, []types.PairError, error)
}

// MatchesHandler handles best-match requests.
type MatchesHandler struct {
	deps     MatchDependencies
	maxLimit int
}

// NewMatchesHandler creates a new matches handler.
func NewMatchesHandler(deps MatchDependencies, maxLimit int) *MatchesHandler {
	return &MatchesHandler{
		deps:     deps,
		maxLimit: maxLimit,
	}
}

// matchesResponse is the shape returned by GET /matches/{seeker_id}.
type matchesResponse struct {
	SeekerID string              `json:"seeker_id"`
	Matches  []types.MatchResult `json:"matches"`
	Errors   []types.PairError   `json:"errors,omitempty"`
}

// HandleGetMatches handles GET /matches/{seeker_id}?limit=N requests. When
// limit is absent the service default applies; a present limit must be a
// positive integer no larger than the configured maximum.
func (h *MatchesHandler) HandleGetMatches(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_matches"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	seekerID := strings.TrimPrefix(r.URL.Path, "/matches/")
	if seekerID == "" || strings.Contains(seekerID, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		n, err := strconv.Atoi(limitStr)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		if n > h.maxLimit {
			writeError(w, http.StatusBadRequest, "limit_exceeded", NewKind(op, ErrBadRequest))
			return
		}
		limit = n
	}

	matches, pairErrs, err := h.deps.BestMatches(r.Context(), seekerID, limit)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, matchesResponse{
		SeekerID: seekerID,
		Matches:  matches,
		Errors:   pairErrs,
	})
}
