// warmup pre-generates the hotel population and primes the search cache
// for every catalog city, resolving photos in bounded parallel so the first
// real visitors do not pay the cost.
package main

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"staybook/internal/adapters/images"
	"staybook/internal/adapters/memcache"
	"staybook/internal/adapters/observability"
	redisad "staybook/internal/adapters/redis"
	"staybook/internal/app"
	"staybook/internal/catalog"
	"staybook/internal/domain"
	"staybook/internal/generator"
	"staybook/internal/query"
	"staybook/internal/shared"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv)

	var cache domain.Cache
	if cfg.RedisAddr != "" {
		cache = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	} else {
		cache = memcache.New(cfg.CacheTTL)
		log.Warn().Msg("no REDIS_ADDR set; warming an in-process cache is only useful for smoke testing")
	}

	var providers []domain.ImageProvider
	if cfg.PexelsKey != "" {
		providers = append(providers, images.NewPexels(cfg.PexelsBase, cfg.PexelsKey, cfg.ImageRPS))
	}
	if cfg.UnsplashKey != "" {
		providers = append(providers, images.NewUnsplash(cfg.UnsplashBase, cfg.UnsplashKey, cfg.ImageRPS))
	}
	resolver := images.NewResolver(providers, int64(cfg.ImageWorkers))

	store := app.NewPopulationStore(generator.New(generator.NewSource()), cfg.PopulationSize)
	q := app.NewQueryService(store, cache, cfg.CacheTTL)

	log.Info().Int("population", cfg.PopulationSize).Msg("generating population")
	store.All(ctx)

	sem := semaphore.NewWeighted(int64(cfg.ImageWorkers))
	var wg sync.WaitGroup

	for _, city := range catalog.AllCities() {
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}
		wg.Add(1)
		go func(city domain.City) {
			defer wg.Done()
			defer sem.Release(1)

			hotels, err := q.SearchLocation(ctx, city.Name, query.Filters{}, query.SortRatingDesc)
			if err != nil {
				log.Warn().Str("city", city.Name).Err(err).Msg("warm search failed")
				return
			}
			resolver.Decorate(ctx, hotels)
			log.Info().Str("city", city.Name).Int("hotels", len(hotels)).Msg("warmed")
		}(city)
	}

	wg.Wait()
	log.Info().Msg("warmup completed")
}
