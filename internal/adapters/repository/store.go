// Package repository defines the roster store interface and errors.
//
// The store is the hand-off point from data-loading collaborators: it holds
// validated seeker and provider records, keyed by id, with insertion order
// preserved so population reports keep the loading order.
package repository

import (
	"context"

	"github.com/okian/tandem/internal/domain/model"
)

// Store provides read/write access to the roster state.
type Store interface {
	// AddSeeker records a validated seeker.
	// Returns ErrDuplicateID when the id is already taken.
	AddSeeker(ctx context.Context, s model.Seeker) error

	// AddProvider records a validated provider.
	// Returns ErrDuplicateID when the id is already taken.
	AddProvider(ctx context.Context, p model.Provider) error

	// Seeker returns one seeker by id. Returns ErrNotFound when unknown.
	Seeker(ctx context.Context, id string) (model.Seeker, error)

	// Provider returns one provider by id. Returns ErrNotFound when unknown.
	Provider(ctx context.Context, id string) (model.Provider, error)

	// Seekers returns all seekers in insertion order.
	Seekers(ctx context.Context) []model.Seeker

	// Providers returns all providers in insertion order.
	Providers(ctx context.Context) []model.Provider

	// Counts returns the current roster sizes (seekers, providers).
	Counts(ctx context.Context) (int, int)
}
