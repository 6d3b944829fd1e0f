// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	jobqueue "github.com/okian/tandem/internal/adapters/mq/queue"
	workerpool "github.com/okian/tandem/internal/adapters/mq/worker"
	"github.com/okian/tandem/internal/adapters/repository"
	"github.com/okian/tandem/internal/domain/matching"
	"github.com/okian/tandem/internal/domain/model"
	"github.com/okian/tandem/internal/domain/scoring"
	"github.com/okian/tandem/internal/domain/types"
	"github.com/okian/tandem/pkg/logger"
	"github.com/okian/tandem/pkg/metrics"
)

// Service implements the API dependencies for the matchmaking system.
type Service struct {
	mu sync.RWMutex

	// Core components
	roster   repository.Store
	engine   *matching.Engine
	jobQueue jobqueue.Queue
	pool     *workerpool.Pool

	// Configuration
	workerCount int
	queueSize   int
	matchLimit  int
	weights     scoring.Weights
	thresholds  matching.Thresholds

	// State
	started bool
	stopCh  chan struct{}

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the number of report worker goroutines.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithQueueSize sets the maximum size of the report job queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithMatchLimit sets the default best-match truncation limit.
func WithMatchLimit(limit int) Option {
	return func(s *Service) {
		if limit > 0 {
			s.matchLimit = limit
		}
	}
}

// WithWeights sets the criterion point weights.
func WithWeights(w scoring.Weights) Option {
	return func(s *Service) {
		s.weights = w
	}
}

// WithThresholds sets the tier classification floors.
func WithThresholds(t matching.Thresholds) Option {
	return func(s *Service) {
		s.thresholds = t
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount: runtime.NumCPU(),
		queueSize:   1024,
		matchLimit:  5,
		weights:     scoring.DefaultWeights(),
		thresholds:  matching.DefaultThresholds(),
		stopCh:      make(chan struct{}),
		logger:      nil, // Will be replaced when service starts
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting matchmaking service...")

	s.roster = repository.NewMemStore()
	s.engine = matching.New(
		matching.WithScorer(scoring.New(scoring.WithWeights(s.weights))),
		matching.WithThresholds(s.thresholds),
		matching.WithLimit(s.matchLimit),
	)
	s.jobQueue = jobqueue.NewInMemoryQueue(
		jobqueue.WithCapacity(s.queueSize),
		jobqueue.WithBufferSize(s.queueSize),
	)

	s.pool = workerpool.NewPool(s.workerCount, s.jobQueue, s.engine)
	s.pool.Start(ctx)

	s.started = true
	s.logger.Info(ctx, "matchmaking service started",
		logger.Int("workers", s.workerCount),
		logger.Int("queueSize", s.queueSize),
		logger.Int("matchLimit", s.matchLimit),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping matchmaking service...")

	if s.jobQueue != nil {
		if q, ok := s.jobQueue.(*jobqueue.InMemoryQueue); ok {
			_ = q.Close()
		}
	}

	if s.pool != nil {
		s.pool.Stop()
	}

	select {
	case <-s.stopCh:
		// Channel already closed
	default:
		close(s.stopCh)
	}

	s.started = false
	s.logger.Info(context.Background(), "matchmaking service stopped")
}

// AddSeeker validates and records a seeker.
func (s *Service) AddSeeker(ctx context.Context, seeker model.Seeker) error {
	if err := seeker.Validate(); err != nil {
		return err
	}
	if err := s.roster.AddSeeker(ctx, seeker); err != nil {
		return fmt.Errorf("add seeker %s: %w", seeker.ID, err)
	}
	s.logger.Debug(ctx, "seeker added", logger.String("seekerID", seeker.ID))
	return nil
}

// AddProvider validates and records a provider.
func (s *Service) AddProvider(ctx context.Context, provider model.Provider) error {
	if err := provider.Validate(); err != nil {
		return err
	}
	if err := s.roster.AddProvider(ctx, provider); err != nil {
		return fmt.Errorf("add provider %s: %w", provider.ID, err)
	}
	s.logger.Debug(ctx, "provider added", logger.String("providerID", provider.ID))
	return nil
}

// Seekers returns the seeker roster in insertion order.
func (s *Service) Seekers(ctx context.Context) ([]model.Seeker, error) {
	return s.roster.Seekers(ctx), nil
}

// Providers returns the provider roster in insertion order.
func (s *Service) Providers(ctx context.Context) ([]model.Provider, error) {
	return s.roster.Providers(ctx), nil
}

// BestMatches ranks all providers for one seeker, synchronously. Per-pair
// failures are returned alongside the results, never instead of them.
func (s *Service) BestMatches(ctx context.Context, seekerID string, limit int) ([]types.MatchResult, []types.PairError, error) {
	seeker, err := s.roster.Seeker(ctx, seekerID)
	if err != nil {
		return nil, nil, fmt.Errorf("best matches for %s: %w", seekerID, err)
	}
	providers := s.roster.Providers(ctx)

	start := time.Now()
	matches, pairErrs := s.engine.BestMatches(seeker, providers, limit)
	metrics.RecordMatchLatency(float64(time.Since(start).Milliseconds()))
	metrics.RecordPairsEvaluated(len(providers))
	metrics.RecordPairErrors(len(pairErrs))
	metrics.RecordMatchesReturned(len(matches))

	return matches, pairErrs, nil
}

// PopulationReport builds one SeekerReport per seeker, fanning the per-seeker
// work out over the worker pool and reassembling replies in roster order.
func (s *Service) PopulationReport(ctx context.Context) (types.PopulationReport, error) {
	seekers := s.roster.Seekers(ctx)
	providers := s.roster.Providers(ctx)

	start := time.Now()
	reply := make(chan jobqueue.Result, len(seekers))

	for i, seeker := range seekers {
		job := jobqueue.Job{
			Index:     i,
			Seeker:    seeker,
			Providers: providers,
			Reply:     reply,
		}
		if !s.jobQueue.Enqueue(ctx, job) {
			// Queue under pressure; compute this seeker inline rather
			// than failing the whole report.
			s.logger.Debug(ctx, "report queue full, computing inline",
				logger.String("seekerID", seeker.ID),
			)
			matches, pairErrs := s.engine.BestMatches(seeker, providers, 0)
			reply <- jobqueue.Result{
				Index: i,
				Report: types.SeekerReport{
					SeekerID:   seeker.ID,
					SeekerName: seeker.DisplayName,
					Matches:    matches,
					HasMatches: len(matches) > 0,
				},
				Errors: pairErrs,
			}
		}
	}

	reports := make([]types.SeekerReport, len(seekers))
	var pairErrs []types.PairError
	for range seekers {
		select {
		case res := <-reply:
			reports[res.Index] = res.Report
			pairErrs = append(pairErrs, res.Errors...)
		case <-ctx.Done():
			return types.PopulationReport{}, fmt.Errorf("population report: %w", ctx.Err())
		}
	}

	metrics.RecordPairsEvaluated(len(seekers) * len(providers))
	metrics.RecordPairErrors(len(pairErrs))
	metrics.RecordReportDuration(float64(time.Since(start).Milliseconds()))
	metrics.RecordReportBuilt()

	return types.PopulationReport{
		GeneratedAt: time.Now().UTC(),
		Reports:     reports,
		Errors:      pairErrs,
		Summary:     buildSummary(reports, len(seekers), len(providers)),
	}, nil
}

// buildSummary aggregates population-wide statistics over seeker reports.
func buildSummary(reports []types.SeekerReport, seekers, providers int) types.Summary {
	sum := types.Summary{Seekers: seekers, Providers: providers}
	for _, r := range reports {
		if r.HasMatches {
			sum.SeekersMatched++
		}
		sum.TotalMatches += len(r.Matches)
		for _, m := range r.Matches {
			switch m.Tier {
			case types.TierExcellent:
				sum.ExcellentMatches++
			case types.TierGood:
				sum.GoodMatches++
			case types.TierFair:
				sum.FairMatches++
			case types.TierPoor:
				sum.PoorMatches++
			}
		}
	}
	if seekers > 0 {
		sum.MatchRate = float64(sum.SeekersMatched) / float64(seekers) * 100
		sum.AverageMatches = float64(sum.TotalMatches) / float64(seekers)
	}
	return sum
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	stats := map[string]interface{}{
		"started":     s.started,
		"workerCount": s.workerCount,
		"queueSize":   s.queueSize,
		"matchLimit":  s.matchLimit,
	}

	if s.started {
		nSeekers, nProviders := s.roster.Counts(ctx)
		stats["seekers"] = nSeekers
		stats["providers"] = nProviders
		stats["queueLength"] = s.jobQueue.Len(ctx)

		metrics.UpdateRosterSeekers(nSeekers)
		metrics.UpdateRosterProviders(nProviders)
		metrics.UpdateWorkerCount(s.workerCount)
	}

	return stats
}
