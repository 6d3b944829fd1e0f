// Package types contains the plain, serializable result shapes handed to
// presentation collaborators. They carry no behavior and are never mutated
// after construction.
package types

import "time"

// Tier is the coarse classification of a total compatibility score.
type Tier string

// Classification tiers, best first.
const (
	TierExcellent Tier = "excellent"
	TierGood      Tier = "good"
	TierFair      Tier = "fair"
	TierPoor      Tier = "poor"
)

// CommonSlot is the intersection interval between one provider slot and one
// seeker slot, clamped to the overlap on both ends.
type CommonSlot struct {
	Day             string `json:"day"`
	Start           string `json:"start"`
	End             string `json:"end"`
	DurationMinutes int    `json:"duration_minutes"`
}

// SubjectBreakdown holds the subject criterion score and its evidence.
type SubjectBreakdown struct {
	Score           float64  `json:"score"`
	MatchedSubjects []string `json:"matched_subjects"`
}

// LevelBreakdown holds the level criterion score and whether it matched.
type LevelBreakdown struct {
	Score float64 `json:"score"`
	Match bool    `json:"match"`
}

// AvailabilityBreakdown holds the availability criterion score and the common
// slots backing it.
type AvailabilityBreakdown struct {
	Score               float64      `json:"score"`
	CommonSlots         []CommonSlot `json:"common_slots"`
	TotalOverlapMinutes int          `json:"total_overlap_minutes"`
}

// BonusFactors records the raw secondary factors that produced a bonus score.
type BonusFactors struct {
	ExperienceYears float64 `json:"experience_years"`
	Rating          float64 `json:"rating"`
	PriceMatch      bool    `json:"price_match"`
}

// BonusBreakdown holds the bonus criterion score and its factors.
type BonusBreakdown struct {
	Score   float64      `json:"score"`
	Factors BonusFactors `json:"factors"`
}

// Breakdown keeps one record per criterion for display and audit.
type Breakdown struct {
	Subjects     SubjectBreakdown      `json:"subjects"`
	Level        LevelBreakdown        `json:"level"`
	Availability AvailabilityBreakdown `json:"availability"`
	Bonus        BonusBreakdown        `json:"bonus"`
}

// MatchResult is the scored compatibility of one seeker/provider pair.
type MatchResult struct {
	SeekerID     string    `json:"seeker_id"`
	SeekerName   string    `json:"seeker_name"`
	ProviderID   string    `json:"provider_id"`
	ProviderName string    `json:"provider_name"`
	TotalScore   float64   `json:"total_score"`
	Tier         Tier      `json:"tier"`
	Breakdown    Breakdown `json:"breakdown"`
}

// PairError identifies a pair whose evaluation was aborted by bad input data.
// An empty ProviderID means the seeker's own record was at fault.
type PairError struct {
	SeekerID   string `json:"seeker_id"`
	ProviderID string `json:"provider_id,omitempty"`
	Reason     string `json:"reason"`
}

// SeekerReport is one seeker's ranked matches.
type SeekerReport struct {
	SeekerID   string        `json:"seeker_id"`
	SeekerName string        `json:"seeker_name"`
	Matches    []MatchResult `json:"matches"`
	HasMatches bool          `json:"has_matches"`
}

// Summary aggregates population-wide statistics over a report.
type Summary struct {
	Seekers          int     `json:"seekers"`
	Providers        int     `json:"providers"`
	SeekersMatched   int     `json:"seekers_matched"`
	TotalMatches     int     `json:"total_matches"`
	MatchRate        float64 `json:"match_rate"`
	AverageMatches   float64 `json:"average_matches"`
	ExcellentMatches int     `json:"excellent_matches"`
	GoodMatches      int     `json:"good_matches"`
	FairMatches      int     `json:"fair_matches"`
	PoorMatches      int     `json:"poor_matches"`
}

// PopulationReport holds one SeekerReport per seeker, in input population
// order, together with the per-pair errors collected along the way.
type PopulationReport struct {
	GeneratedAt time.Time      `json:"generated_at"`
	Reports     []SeekerReport `json:"reports"`
	Errors      []PairError    `json:"errors,omitempty"`
	Summary     Summary        `json:"summary"`
}
