// Package model contains the roster records handed to the matching engine.
//
// Records arrive from loaders as plain data; Validate enforces the field
// constraints once at construction time. Availability stays in raw window
// form so a malformed clock string can be reported with pair context by the
// engine that trips over it.
package model

import (
	"fmt"
	"strings"

	"github.com/okian/tandem/internal/domain/schedule"
)

// Rating bounds for providers.
const (
	minRating = 0.0
	maxRating = 5.0
)

// Urgency classifies how soon a seeker needs a match.
type Urgency string

// Urgency levels.
const (
	UrgencyHigh   Urgency = "high"
	UrgencyMedium Urgency = "medium"
	UrgencyLow    Urgency = "low"
)

// Valid reports whether u is one of the enumerated urgency levels.
func (u Urgency) Valid() bool {
	switch u {
	case UrgencyHigh, UrgencyMedium, UrgencyLow:
		return true
	default:
		return false
	}
}

// Seeker is a student looking for a provider.
type Seeker struct {
	ID                string            `json:"id"`
	DisplayName       string            `json:"display_name"`
	RequestedSubjects []string          `json:"requested_subjects"`
	Level             string            `json:"level"`
	Budget            float64           `json:"budget"`
	Availability      []schedule.Window `json:"availability"`
	Urgency           Urgency           `json:"urgency"`
}

// Validate checks the seeker's field constraints. An empty requested-subjects
// set, a zero budget, and an empty schedule are all valid degenerate inputs.
func (s Seeker) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return fmt.Errorf("%w: missing seeker id", ErrInvalidRecord)
	}
	if strings.TrimSpace(s.DisplayName) == "" {
		return fmt.Errorf("%w: seeker %s: missing display name", ErrInvalidRecord, s.ID)
	}
	if s.Budget < 0 {
		return fmt.Errorf("%w: seeker %s: negative budget", ErrInvalidRecord, s.ID)
	}
	if !s.Urgency.Valid() {
		return fmt.Errorf("%w: seeker %s: unknown urgency %q", ErrInvalidRecord, s.ID, s.Urgency)
	}
	if err := validateAvailability(s.Availability); err != nil {
		return fmt.Errorf("%w: seeker %s: %w", ErrInvalidRecord, s.ID, err)
	}
	return nil
}

// Provider is a tutor offering subjects at given levels.
type Provider struct {
	ID              string            `json:"id"`
	DisplayName     string            `json:"display_name"`
	Subjects        []string          `json:"subjects"`
	Levels          []string          `json:"levels"`
	ExperienceYears float64           `json:"experience_years"`
	Rating          float64           `json:"rating"`
	HourlyRate      float64           `json:"hourly_rate"`
	Availability    []schedule.Window `json:"availability"`
}

// Validate checks the provider's field constraints.
func (p Provider) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("%w: missing provider id", ErrInvalidRecord)
	}
	if strings.TrimSpace(p.DisplayName) == "" {
		return fmt.Errorf("%w: provider %s: missing display name", ErrInvalidRecord, p.ID)
	}
	if p.ExperienceYears < 0 {
		return fmt.Errorf("%w: provider %s: negative experience", ErrInvalidRecord, p.ID)
	}
	if p.Rating < minRating || p.Rating > maxRating {
		return fmt.Errorf("%w: provider %s: rating %.2f out of [0,5]", ErrInvalidRecord, p.ID, p.Rating)
	}
	if p.HourlyRate < 0 {
		return fmt.Errorf("%w: provider %s: negative hourly rate", ErrInvalidRecord, p.ID)
	}
	if err := validateAvailability(p.Availability); err != nil {
		return fmt.Errorf("%w: provider %s: %w", ErrInvalidRecord, p.ID, err)
	}
	return nil
}

// validateAvailability parses every window, rejecting records with malformed
// schedules at the door instead of at match time.
func validateAvailability(ws []schedule.Window) error {
	_, err := schedule.ParseWindows(ws)
	return err
}
