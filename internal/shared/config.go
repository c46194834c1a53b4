package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv         string
	HTTPAddr       string
	MetricsAddr    string
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	PexelsBase     string
	PexelsKey      string
	UnsplashBase   string
	UnsplashKey    string
	ImageRPS       int
	ImageWorkers   int
	PopulationSize int
	CacheTTL       time.Duration
}

func Load() Config {
	// .env is a dev convenience; absent in production
	_ = godotenv.Load()

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
		}
		return def
	}
	c := Config{
		AppEnv:         env("APP_ENV", "prod"),
		HTTPAddr:       env("HTTP_ADDR", ":8080"),
		MetricsAddr:    env("METRICS_ADDR", ""),
		RedisAddr:      env("REDIS_ADDR", ""),
		RedisPass:      env("REDIS_PASSWORD", ""),
		RedisDB:        atoi("REDIS_DB", 0),
		PexelsBase:     env("PEXELS_BASE_URL", "https://api.pexels.com"),
		PexelsKey:      env("PEXELS_API_KEY", ""),
		UnsplashBase:   env("UNSPLASH_BASE_URL", "https://api.unsplash.com"),
		UnsplashKey:    env("UNSPLASH_ACCESS_KEY", ""),
		ImageRPS:       atoi("IMAGE_RPS", 2),
		ImageWorkers:   atoi("IMAGE_WORKERS", 4),
		PopulationSize: atoi("POPULATION_SIZE", 1000),
		CacheTTL:       time.Duration(atoi("CACHE_TTL_SECONDS", 300)) * time.Second,
	}
	if c.PexelsKey == "" && c.UnsplashKey == "" {
		log.Warn().Msg("no image provider keys set; serving placeholder images only")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
