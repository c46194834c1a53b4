package images

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"staybook/internal/domain"
)

// resolveTimeout bounds one lookup end to end; exceeding it counts as a
// provider failure and falls through to placeholders.
const resolveTimeout = 10 * time.Second

// Resolver tries each configured provider in order and converts every
// failure into "no photos". Decoration fan-out is capped by a weighted
// semaphore so a large hotel batch cannot stampede the providers.
type Resolver struct {
	providers []domain.ImageProvider
	sem       *semaphore.Weighted
}

func NewResolver(providers []domain.ImageProvider, workers int64) *Resolver {
	if workers <= 0 {
		workers = 4
	}
	return &Resolver{providers: providers, sem: semaphore.NewWeighted(workers)}
}

// Resolve returns up to count photo URLs for query, or nil when every
// provider fails or returns nothing. It never returns an error.
func (r *Resolver) Resolve(ctx context.Context, query string, count int) []string {
	if count <= 0 || len(r.providers) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, resolveTimeout)
	defer cancel()

	for _, p := range r.providers {
		urls, err := p.Search(ctx, query, count)
		if err != nil {
			log.Warn().Err(err).Str("provider", p.Name()).Str("query", query).Msg("image search failed")
			continue
		}
		if len(urls) > 0 {
			if len(urls) > count {
				urls = urls[:count]
			}
			return urls
		}
	}
	return nil
}

// Decorate replaces each hotel's placeholder images with fetched photos
// where a provider responds, leaving placeholders in place otherwise.
func (r *Resolver) Decorate(ctx context.Context, hotels []domain.Hotel) {
	var wg sync.WaitGroup
	for i := range hotels {
		if err := r.sem.Acquire(ctx, 1); err != nil {
			break // context gone; remaining hotels keep their placeholders
		}
		wg.Add(1)
		go func(h *domain.Hotel) {
			defer wg.Done()
			defer r.sem.Release(1)
			if urls := r.Resolve(ctx, h.Location+" hotel", len(h.Images)); len(urls) > 0 {
				h.Images = urls
			}
		}(&hotels[i])
	}
	wg.Wait()
}
