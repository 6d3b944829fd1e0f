// Package matching aggregates the four criterion scores into a classified
// compatibility result and ranks providers for a seeker.
//
// Conventions:
// - Evaluate is a pure function of its two records; no hidden state.
// - Bad input data (malformed clock strings) aborts the affected pair only.
package matching

import (
	"fmt"
	"math"
	"sort"

	"github.com/okian/tandem/internal/domain/model"
	"github.com/okian/tandem/internal/domain/schedule"
	"github.com/okian/tandem/internal/domain/scoring"
	"github.com/okian/tandem/internal/domain/types"
)

// Default ranking configuration constants.
const (
	defaultLimit          = 5
	defaultExcellentFloor = 80.0
	defaultGoodFloor      = 60.0
	defaultFairFloor      = 40.0
)

// Thresholds are the tier classification floors, checked best-first.
type Thresholds struct {
	Excellent float64
	Good      float64
	Fair      float64
}

// DefaultThresholds returns the standard 80/60/40 classification floors.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Excellent: defaultExcellentFloor,
		Good:      defaultGoodFloor,
		Fair:      defaultFairFloor,
	}
}

// Option applies a configuration option to the Engine.
type Option func(*Engine)

// WithScorer sets the criterion scorer.
func WithScorer(s *scoring.Scorer) Option {
	return func(e *Engine) {
		if s != nil {
			e.scorer = s
		}
	}
}

// WithThresholds sets the tier classification floors. Floors must be
// descending to take effect.
func WithThresholds(t Thresholds) Option {
	return func(e *Engine) {
		if t.Excellent >= t.Good && t.Good >= t.Fair {
			e.thresholds = t
		}
	}
}

// WithLimit sets the default best-match truncation limit.
func WithLimit(limit int) Option {
	return func(e *Engine) {
		if limit > 0 {
			e.limit = limit
		}
	}
}

// Engine evaluates and ranks seeker/provider compatibility.
type Engine struct {
	scorer     *scoring.Scorer
	thresholds Thresholds
	limit      int
}

// New creates an Engine with configuration options.
func New(opts ...Option) *Engine {
	e := &Engine{
		scorer:     scoring.New(),
		thresholds: DefaultThresholds(),
		limit:      defaultLimit,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Limit returns the engine's default truncation limit.
func (e *Engine) Limit() int {
	return e.limit
}

// Evaluate scores one seeker/provider pair. The total is the exact sum of
// the four bounded criterion scores, rounded to one decimal half away from
// zero; the breakdown keeps each criterion's rounded score and evidence.
// The only possible error is a *schedule.ParseError wrapped with the pair's
// identifiers.
func (e *Engine) Evaluate(seeker model.Seeker, provider model.Provider) (types.MatchResult, error) {
	seekerSlots, err := schedule.ParseWindows(seeker.Availability)
	if err != nil {
		return types.MatchResult{}, fmt.Errorf("evaluate seeker %s provider %s: seeker schedule: %w", seeker.ID, provider.ID, err)
	}
	providerSlots, err := schedule.ParseWindows(provider.Availability)
	if err != nil {
		return types.MatchResult{}, fmt.Errorf("evaluate seeker %s provider %s: provider schedule: %w", seeker.ID, provider.ID, err)
	}

	subjects := e.scorer.Subjects(provider.Subjects, seeker.RequestedSubjects)
	level := e.scorer.Level(provider.Levels, seeker.Level)
	availability := e.scorer.Availability(providerSlots, seekerSlots)
	bonus := e.scorer.Bonus(provider.ExperienceYears, provider.Rating, provider.HourlyRate, seeker.Budget)

	total := round1(subjects.Score + level.Score + availability.Score + bonus.Score)

	return types.MatchResult{
		SeekerID:     seeker.ID,
		SeekerName:   seeker.DisplayName,
		ProviderID:   provider.ID,
		ProviderName: provider.DisplayName,
		TotalScore:   total,
		Tier:         e.classify(total),
		Breakdown: types.Breakdown{
			Subjects: types.SubjectBreakdown{
				Score:           round1(subjects.Score),
				MatchedSubjects: subjects.Matched,
			},
			Level: types.LevelBreakdown{
				Score: level.Score,
				Match: level.Match,
			},
			Availability: types.AvailabilityBreakdown{
				Score:               round1(availability.Score),
				CommonSlots:         availability.CommonSlots,
				TotalOverlapMinutes: availability.TotalMinutes,
			},
			Bonus: types.BonusBreakdown{
				Score: round1(bonus.Score),
				Factors: types.BonusFactors{
					ExperienceYears: provider.ExperienceYears,
					Rating:          provider.Rating,
					PriceMatch:      bonus.PriceMatch,
				},
			},
		},
	}, nil
}

// BestMatches ranks all providers for one seeker: every pair is evaluated,
// zero-total results are discarded as non-matches, the rest are sorted by
// descending total score, and the list is truncated to limit (the engine
// default when limit <= 0).
//
// Ordering contract: the sort is stable, so providers with equal totals keep
// their original input order.
//
// A pair whose evaluation fails is collected as a PairError and never aborts
// the remaining pairs.
func (e *Engine) BestMatches(seeker model.Seeker, providers []model.Provider, limit int) ([]types.MatchResult, []types.PairError) {
	results := make([]types.MatchResult, 0, len(providers))
	var pairErrs []types.PairError

	for _, provider := range providers {
		result, err := e.Evaluate(seeker, provider)
		if err != nil {
			pairErrs = append(pairErrs, types.PairError{
				SeekerID:   seeker.ID,
				ProviderID: provider.ID,
				Reason:     err.Error(),
			})
			continue
		}
		if result.TotalScore == 0 {
			continue
		}
		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].TotalScore > results[j].TotalScore
	})

	if limit <= 0 {
		limit = e.limit
	}
	if len(results) > limit {
		results = results[:limit]
	}
	return results, pairErrs
}

// classify maps a total score to its tier, checking floors best-first.
func (e *Engine) classify(total float64) types.Tier {
	switch {
	case total >= e.thresholds.Excellent:
		return types.TierExcellent
	case total >= e.thresholds.Good:
		return types.TierGood
	case total >= e.thresholds.Fair:
		return types.TierFair
	default:
		return types.TierPoor
	}
}

// round1 rounds to one decimal place, halves away from zero.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
