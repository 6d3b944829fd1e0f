// Package loader ingests roster files and hands validated records to the
// core. It owns file I/O and record validation so the engine only ever sees
// plain in-memory records.
package loader

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/okian/tandem/internal/domain/model"
)

// RosterSink receives validated records. The app service implements this.
type RosterSink interface {
	AddSeeker(ctx context.Context, s model.Seeker) error
	AddProvider(ctx context.Context, p model.Provider) error
}

// Files names the roster sources. Empty paths are skipped.
type Files struct {
	Seekers   string
	Providers string
}

// Stats reports how many records a load added.
type Stats struct {
	Seekers   int
	Providers int
}

// Load reads both roster files, validates every record, and feeds them to
// the sink. A malformed record aborts the load: bad roster data is a
// deployment problem, not something to skip quietly.
func Load(ctx context.Context, sink RosterSink, files Files) (Stats, error) {
	var stats Stats

	if files.Seekers != "" {
		seekers, err := readRoster[model.Seeker](files.Seekers)
		if err != nil {
			return stats, err
		}
		for i, s := range seekers {
			if err := s.Validate(); err != nil {
				return stats, fmt.Errorf("%w: %s record %d: %w", ErrLoadRoster, files.Seekers, i, err)
			}
			if err := sink.AddSeeker(ctx, s); err != nil {
				return stats, fmt.Errorf("%w: %s record %d (%s): %w", ErrLoadRoster, files.Seekers, i, s.ID, err)
			}
			stats.Seekers++
		}
	}

	if files.Providers != "" {
		providers, err := readRoster[model.Provider](files.Providers)
		if err != nil {
			return stats, err
		}
		for i, p := range providers {
			if err := p.Validate(); err != nil {
				return stats, fmt.Errorf("%w: %s record %d: %w", ErrLoadRoster, files.Providers, i, err)
			}
			if err := sink.AddProvider(ctx, p); err != nil {
				return stats, fmt.Errorf("%w: %s record %d (%s): %w", ErrLoadRoster, files.Providers, i, p.ID, err)
			}
			stats.Providers++
		}
	}

	return stats, nil
}

// readRoster decodes one JSON roster file into records.
func readRoster[T any](path string) ([]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadRoster, err)
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLoadRoster, path, err)
	}
	return records, nil
}
