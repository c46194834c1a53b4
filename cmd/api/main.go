package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	httpserver "staybook/internal/adapters/http_server"
	"staybook/internal/adapters/images"
	"staybook/internal/adapters/memcache"
	"staybook/internal/adapters/observability"
	redisad "staybook/internal/adapters/redis"
	"staybook/internal/app"
	"staybook/internal/domain"
	"staybook/internal/generator"
	"staybook/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve(cfg.MetricsAddr)

	// deps
	store := app.NewPopulationStore(generator.New(generator.NewSource()), cfg.PopulationSize)

	var cache domain.Cache
	if cfg.RedisAddr != "" {
		cache = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		log.Info().Str("addr", cfg.RedisAddr).Msg("using redis cache")
	} else {
		cache = memcache.New(cfg.CacheTTL)
	}

	var providers []domain.ImageProvider
	if cfg.PexelsKey != "" {
		providers = append(providers, images.NewPexels(cfg.PexelsBase, cfg.PexelsKey, cfg.ImageRPS))
	}
	if cfg.UnsplashKey != "" {
		providers = append(providers, images.NewUnsplash(cfg.UnsplashBase, cfg.UnsplashKey, cfg.ImageRPS))
	}
	var resolver *images.Resolver
	if len(providers) > 0 {
		resolver = images.NewResolver(providers, int64(cfg.ImageWorkers))
	}

	q := app.NewQueryService(store, cache, cfg.CacheTTL)
	favs := app.NewFavoritesService(store)

	// http
	srv := httpserver.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&httpserver.Handlers{Q: q, Favorites: favs, Images: resolver})

	log.Info().Str("addr", cfg.HTTPAddr).Int("population", cfg.PopulationSize).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
