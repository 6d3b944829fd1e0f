// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults; Load() layers file and env on top.
// - Score weights, tier floors, and ranking limits are configuration, never literals.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"runtime"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// WorkerCount sets the number of report workers.
	WorkerCount int `koanf:"worker_count"`

	// ReportQueueSize bounds the in-memory report job queue.
	ReportQueueSize int `koanf:"report_queue_size"`

	// MatchLimit is the default best-match truncation limit per seeker.
	MatchLimit int `koanf:"match_limit"`

	// MaxMatchLimit caps GET /matches/{id}?limit.
	MaxMatchLimit int `koanf:"max_match_limit"`

	// Criterion point weights. Together they bound the total score at 100.
	SubjectWeight             float64 `koanf:"subject_weight"`
	LevelWeight               float64 `koanf:"level_weight"`
	AvailabilityWeight        float64 `koanf:"availability_weight"`
	AvailabilityPointsPerHour float64 `koanf:"availability_points_per_hour"`
	BonusWeight               float64 `koanf:"bonus_weight"`

	// Tier classification floors, checked best-first.
	TierExcellent float64 `koanf:"tier_excellent"`
	TierGood      float64 `koanf:"tier_good"`
	TierFair      float64 `koanf:"tier_fair"`

	// SeekerRoster and ProviderRoster point at optional JSON roster files
	// loaded at startup. Empty means no preloading.
	SeekerRoster   string `koanf:"seeker_roster"`
	ProviderRoster string `koanf:"provider_roster"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:                  "info",
		Addr:                      ":9080",
		WorkerCount:               runtime.NumCPU(),
		ReportQueueSize:           1024,
		MatchLimit:                5,
		MaxMatchLimit:             50,
		SubjectWeight:             30,
		LevelWeight:               20,
		AvailabilityWeight:        40,
		AvailabilityPointsPerHour: 10,
		BonusWeight:               10,
		TierExcellent:             80,
		TierGood:                  60,
		TierFair:                  40,
		SeekerRoster:              "",
		ProviderRoster:            "",
	}
}
