package repository

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithCapacityHint pre-sizes the underlying maps and slices.
func WithCapacityHint(n int) Option {
	return func(s *MemStore) {
		if n > 0 {
			s.capacityHint = n
		}
	}
}
