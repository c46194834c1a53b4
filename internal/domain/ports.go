package domain

import "context"

// HotelSource hands out hotel records. The in-memory population store is the
// only implementation in production; tests supply fakes.
type HotelSource interface {
	// All returns the full lazily-generated population. The first call
	// materializes it; later calls return the same records.
	All(ctx context.Context) []Hotel
	// ByID resolves a single hotel, synthesizing one keyed by id when it is
	// outside the population. Returns ErrNotFound for non-positive ids.
	ByID(ctx context.Context, id int) (Hotel, error)
	// ForLocation generates a fresh batch of n hotels placed in location.
	ForLocation(ctx context.Context, location string, n int) []Hotel
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// ImageProvider is the contract shared by both photo backends. An empty
// result and an error are treated identically by callers: fall back to
// placeholders, never propagate.
type ImageProvider interface {
	Name() string
	Search(ctx context.Context, query string, count int) ([]string, error)
}
