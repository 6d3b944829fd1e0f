// Package scoring implements the four criterion scorers that feed the
// compatibility total: subject overlap, level match, availability overlap,
// and secondary bonus factors. Each scorer is a pure function of its inputs.
package scoring

import (
	"math"
	"strings"

	"github.com/okian/tandem/internal/domain/schedule"
	"github.com/okian/tandem/internal/domain/types"
)

// Default criterion weights. Together they bound the total at 100.
const (
	defaultSubjectWeight       = 30.0
	defaultLevelWeight         = 20.0
	defaultAvailabilityWeight  = 40.0
	defaultAvailabilityPerHour = 10.0
	defaultBonusWeight         = 10.0
)

// Bonus sub-term constants.
const (
	experienceBonusCap = 3.0
	experienceDivisor  = 3.0
	ratingBonusCap     = 4.0
	ratingBaseline     = 4.0
	ratingSlope        = 8.0
	priceBonusMax      = 3.0
	pricePenalty       = 2.0
)

const minutesPerHour = 60.0

// Weights are the named point budgets of the four criteria. They are
// configuration, not literals: every call site scores against these.
type Weights struct {
	// Subject is the maximum subject-overlap score.
	Subject float64

	// Level is the score awarded for an exact level match.
	Level float64

	// Availability caps the availability-overlap score.
	Availability float64

	// AvailabilityPerHour is how many points one full hour of overlap earns.
	AvailabilityPerHour float64

	// Bonus caps the secondary-factor score.
	Bonus float64
}

// DefaultWeights returns the standard 30/20/40/10 point split.
func DefaultWeights() Weights {
	return Weights{
		Subject:             defaultSubjectWeight,
		Level:               defaultLevelWeight,
		Availability:        defaultAvailabilityWeight,
		AvailabilityPerHour: defaultAvailabilityPerHour,
		Bonus:               defaultBonusWeight,
	}
}

// Option applies a configuration option to the Scorer.
type Option func(*Scorer)

// WithWeights replaces the criterion weights. Non-positive weight sets are
// ignored in favor of the defaults.
func WithWeights(w Weights) Option {
	return func(s *Scorer) {
		if w.Subject >= 0 && w.Level >= 0 && w.Availability >= 0 && w.AvailabilityPerHour >= 0 && w.Bonus >= 0 {
			s.weights = w
		}
	}
}

// Scorer evaluates the four criteria under a fixed weight configuration.
type Scorer struct {
	weights Weights
}

// New creates a Scorer with configuration options.
func New(opts ...Option) *Scorer {
	s := &Scorer{weights: DefaultWeights()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Weights returns the scorer's weight configuration.
func (s *Scorer) Weights() Weights {
	return s.weights
}

// SubjectResult is the subject criterion outcome.
type SubjectResult struct {
	Score   float64
	Matched []string
}

// Subjects scores how many of the requested subjects the provider covers.
// A requested subject matches when it contains, or is contained in, some
// offered subject case-insensitively ("Math" matches "Mathematics").
// Requested subjects are deduplicated case-insensitively, keeping first
// occurrence order; each counts at most once no matter how many offered
// subjects it matches. An empty request scores 0 with no matches.
func (s *Scorer) Subjects(offered, requested []string) SubjectResult {
	seen := make(map[string]struct{}, len(requested))
	unique := make([]string, 0, len(requested))
	for _, subject := range requested {
		key := strings.ToLower(subject)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, subject)
	}

	matched := make([]string, 0, len(unique))
	for _, subject := range unique {
		if subjectOffered(offered, subject) {
			matched = append(matched, subject)
		}
	}

	if len(unique) == 0 {
		return SubjectResult{Score: 0, Matched: matched}
	}
	ratio := float64(len(matched)) / float64(len(unique))
	return SubjectResult{Score: ratio * s.weights.Subject, Matched: matched}
}

// subjectOffered reports whether subject matches any offered subject by
// bidirectional case-insensitive containment.
func subjectOffered(offered []string, subject string) bool {
	want := strings.ToLower(subject)
	for _, o := range offered {
		have := strings.ToLower(o)
		if strings.Contains(have, want) || strings.Contains(want, have) {
			return true
		}
	}
	return false
}

// LevelResult is the level criterion outcome.
type LevelResult struct {
	Score float64
	Match bool
}

// Level awards the full level weight iff some offered level equals the
// seeker's level case-insensitively. No partial credit for adjacent levels.
func (s *Scorer) Level(offered []string, level string) LevelResult {
	want := strings.ToLower(level)
	for _, o := range offered {
		if strings.ToLower(o) == want {
			return LevelResult{Score: s.weights.Level, Match: true}
		}
	}
	return LevelResult{Score: 0, Match: false}
}

// AvailabilityResult is the availability criterion outcome.
type AvailabilityResult struct {
	Score        float64
	CommonSlots  []types.CommonSlot
	TotalMinutes int
}

// Availability scores the total schedule overlap across the full cross
// product of provider and seeker slots. Slots are deliberately not merged
// before pairing: a provider slot covering two adjacent seeker slots counts
// twice, matching the contractual double-count semantics. Each positive
// overlap is recorded as a common slot clamped to the intersection.
func (s *Scorer) Availability(provider, seeker []schedule.Slot) AvailabilityResult {
	var total int
	common := make([]types.CommonSlot, 0)
	for _, ps := range provider {
		for _, ss := range seeker {
			overlap := schedule.OverlapMinutes(ps, ss)
			if overlap <= 0 {
				continue
			}
			total += overlap
			start := max(ps.StartMinute, ss.StartMinute)
			common = append(common, types.CommonSlot{
				Day:             string(ps.Day),
				Start:           schedule.FormatMinutes(start),
				End:             schedule.FormatMinutes(start + overlap),
				DurationMinutes: overlap,
			})
		}
	}

	score := math.Min(s.weights.Availability, float64(total)/minutesPerHour*s.weights.AvailabilityPerHour)
	return AvailabilityResult{Score: score, CommonSlots: common, TotalMinutes: total}
}

// BonusResult is the bonus criterion outcome.
type BonusResult struct {
	Score      float64
	PriceMatch bool
}

// Bonus scores the secondary factors: experience (up to 3 points), rating
// (up to 4, negative below 4.0), and price fit against the seeker's budget
// (up to 3, flat -2 penalty when over budget). The sum is clamped to
// [0, bonus weight]. A zero budget counts as over budget unless the rate is
// also zero, in which case the price fit is perfect.
func (s *Scorer) Bonus(experienceYears, rating, hourlyRate, budget float64) BonusResult {
	bonus := math.Min(experienceBonusCap, experienceYears/experienceDivisor)
	bonus += math.Min(ratingBonusCap, (rating-ratingBaseline)*ratingSlope)

	priceMatch := hourlyRate <= budget
	switch {
	case budget == 0 && hourlyRate == 0:
		bonus += priceBonusMax
	case budget > 0 && hourlyRate <= budget:
		bonus += priceBonusMax * (1 - hourlyRate/budget)
	default:
		bonus -= pricePenalty
	}

	return BonusResult{
		Score:      math.Max(0, math.Min(s.weights.Bonus, bonus)),
		PriceMatch: priceMatch,
	}
}
