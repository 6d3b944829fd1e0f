package seedrosters

import (
	"context"
	"crypto/rand"
	"math/big"
	"strconv"

	"github.com/google/uuid"
	"github.com/okian/tandem/internal/domain/model"
	"github.com/okian/tandem/internal/domain/schedule"
	"github.com/okian/tandem/pkg/logger"
)

// Constants for random number generation.
const (
	randomFloatDivisor = 1000000
)

// Constants for generated record ranges.
const (
	minSubjects       = 1
	maxSeekerSubjects = 3
	maxOfferSubjects  = 4
	minWindows        = 1
	maxWindows        = 3
	minWindowHours    = 1
	maxWindowHours    = 4
	earliestStartHour = 8
	latestEndHour     = 22
	maxExperience     = 20
	minRating         = 3.0
	ratingRange       = 2.0
	minHourlyRate     = 15.0
	hourlyRateRange   = 50.0
	minBudget         = 15.0
	budgetRange       = 55.0
	maxOfferLevels    = 3
)

// Subject, level, and name pools for generated records.
var (
	subjectPool = []string{
		"Mathématiques", "Physique", "Chimie", "Français", "Anglais",
		"Espagnol", "Histoire", "Géographie", "SVT", "Philosophie",
		"Informatique", "Économie",
	}

	levelPool = []string{"Primaire", "Collège", "Lycée", "Supérieur"}

	namePool = []string{
		"Emma", "Lucas", "Chloé", "Hugo", "Léa", "Louis", "Manon", "Jules",
		"Camille", "Arthur", "Inès", "Gabriel", "Jade", "Raphaël", "Zoé",
		"Nathan", "Louise", "Adam", "Alice", "Théo",
	}

	weekdayPool = []string{
		"monday", "tuesday", "wednesday", "thursday", "friday",
		"saturday", "sunday",
	}
)

// getRandomFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func getRandomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

// getRandomInt returns a random int in [0, n) using crypto/rand.
func getRandomInt(n int) int {
	v, _ := rand.Int(rand.Reader, big.NewInt(int64(n)))
	return int(v.Int64())
}

// pickSubjects draws between minSubjects and limit distinct subjects.
func pickSubjects(limit int) []string {
	count := minSubjects + getRandomInt(limit-minSubjects+1)
	picked := make([]string, 0, count)
	seen := make(map[int]struct{}, count)
	for len(picked) < count {
		idx := getRandomInt(len(subjectPool))
		if _, ok := seen[idx]; ok {
			continue
		}
		seen[idx] = struct{}{}
		picked = append(picked, subjectPool[idx])
	}
	return picked
}

// pickLevels draws between 1 and maxOfferLevels distinct levels.
func pickLevels() []string {
	count := 1 + getRandomInt(maxOfferLevels)
	picked := make([]string, 0, count)
	seen := make(map[int]struct{}, count)
	for len(picked) < count {
		idx := getRandomInt(len(levelPool))
		if _, ok := seen[idx]; ok {
			continue
		}
		seen[idx] = struct{}{}
		picked = append(picked, levelPool[idx])
	}
	return picked
}

// generateWindows builds between minWindows and maxWindows availability
// windows with whole-hour bounds inside the 08:00-22:00 band.
func generateWindows() []schedule.Window {
	count := minWindows + getRandomInt(maxWindows-minWindows+1)
	windows := make([]schedule.Window, 0, count)
	for i := 0; i < count; i++ {
		duration := minWindowHours + getRandomInt(maxWindowHours-minWindowHours+1)
		startHour := earliestStartHour + getRandomInt(latestEndHour-earliestStartHour-duration+1)
		windows = append(windows, schedule.Window{
			Day:   weekdayPool[getRandomInt(len(weekdayPool))],
			Start: formatHour(startHour),
			End:   formatHour(startHour + duration),
		})
	}
	return windows
}

// formatHour renders a whole hour as HH:00.
func formatHour(hour int) string {
	s := strconv.Itoa(hour)
	if hour < 10 {
		s = "0" + s
	}
	return s + ":00"
}

// pickName draws a display name with a numeric suffix for uniqueness.
func pickName(index int) string {
	return namePool[getRandomInt(len(namePool))] + " " + strconv.Itoa(index+1)
}

// generateSeekers creates the configured number of seekers with unique ids.
func generateSeekers(ctx context.Context, config *Config, stats *Stats) []model.Seeker {
	logger.Get().Info(ctx, "generating seekers", logger.Int("count", config.Seekers))

	urgencies := []model.Urgency{model.UrgencyHigh, model.UrgencyMedium, model.UrgencyLow}
	seekers := make([]model.Seeker, config.Seekers)
	for i := range seekers {
		seekers[i] = model.Seeker{
			ID:                "seeker-" + uuid.New().String(),
			DisplayName:       pickName(i),
			RequestedSubjects: pickSubjects(maxSeekerSubjects),
			Level:             levelPool[getRandomInt(len(levelPool))],
			Budget:            minBudget + getRandomFloat()*budgetRange,
			Availability:      generateWindows(),
			Urgency:           urgencies[getRandomInt(len(urgencies))],
		}
	}

	stats.SeekersGenerated = len(seekers)
	return seekers
}

// generateProviders creates the configured number of providers with unique ids.
func generateProviders(ctx context.Context, config *Config, stats *Stats) []model.Provider {
	logger.Get().Info(ctx, "generating providers", logger.Int("count", config.Providers))

	providers := make([]model.Provider, config.Providers)
	for i := range providers {
		providers[i] = model.Provider{
			ID:              "provider-" + uuid.New().String(),
			DisplayName:     pickName(i),
			Subjects:        pickSubjects(maxOfferSubjects),
			Levels:          pickLevels(),
			ExperienceYears: float64(getRandomInt(maxExperience + 1)),
			Rating:          minRating + getRandomFloat()*ratingRange,
			HourlyRate:      minHourlyRate + getRandomFloat()*hourlyRateRange,
			Availability:    generateWindows(),
		}
	}

	stats.ProvidersGenerated = len(providers)
	return providers
}
