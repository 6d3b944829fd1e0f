// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/okian/tandem/internal/domain/model"
	"github.com/okian/tandem/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Roster write operations.
	AddSeeker(ctx context.Context, s model.Seeker) error
	AddProvider(ctx context.Context, p model.Provider) error

	// Roster read operations.
	Seekers(ctx context.Context) ([]model.Seeker, error)
	Providers(ctx context.Context) ([]model.Provider, error)

	// Matching operations.
	BestMatches(ctx context.Context, seekerID string, limit int) ([]types.MatchResult, []types.PairError, error)
	PopulationReport(ctx context.Context) (types.PopulationReport, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler    *HealthHandler
	statsHandler     *StatsHandler
	seekersHandler   *SeekersHandler
	providersHandler *ProvidersHandler
	matchesHandler   *MatchesHandler
	reportHandler    *ReportHandler
}

// NewServer creates a new API server with all handlers. maxLimit caps the
// limit query parameter accepted by the matches endpoint.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxLimit int) *Server {
	return &Server{
		healthHandler:    NewHealthHandler(),
		statsHandler:     NewStatsHandler(statsProvider),
		seekersHandler:   NewSeekersHandler(deps),
		providersHandler: NewProvidersHandler(deps),
		matchesHandler:   NewMatchesHandler(deps, maxLimit),
		reportHandler:    NewReportHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/seekers", MetricsMiddleware(s.seekersHandler.HandleSeekers, "seekers"))
	mux.HandleFunc("/providers", MetricsMiddleware(s.providersHandler.HandleProviders, "providers"))
	mux.HandleFunc("/matches/", MetricsMiddleware(s.matchesHandler.HandleGetMatches, "matches"))
	mux.HandleFunc("/report", MetricsMiddleware(s.reportHandler.HandleGetReport, "report"))
}

type ackResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
