package shared

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"hotel_search/internal/domain"
)

type Config struct {
	AppEnv       string
	LogLevel     string
	HTTPAddr     string
	MetricsAddr  string
	HotelsURL    string
	RoomsBaseURL string
	HTTPTimeout  time.Duration // 0 = requests never time out
	ViewIdleTTL  time.Duration // 0 = views live until deleted
	Filter       domain.FilterCriteria
}

// Load reads the configuration from the environment. A .env file in the
// working directory, if present, fills in variables that are not set.
func Load() Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg("failed to read .env")
	}

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("key", k).Str("value", v).Msg("ignoring non-integer setting")
		}
		return def
	}
	c := Config{
		AppEnv:       env("APP_ENV", "prod"),
		LogLevel:     env("LOG_LEVEL", "info"),
		HTTPAddr:     env("HTTP_ADDR", ":8080"),
		MetricsAddr:  env("METRICS_ADDR", ""),
		HotelsURL:    env("HOTELS_URL", "https://obmng.dbm.guestline.net/api/hotels?collection-id=OBMNG"),
		RoomsBaseURL: env("ROOMS_BASE_URL", "https://obmng.dbm.guestline.net/api/roomRates/OBMNG"),
		HTTPTimeout:  time.Duration(atoi("HTTP_TIMEOUT_SECONDS", 0)) * time.Second,
		ViewIdleTTL:  time.Duration(atoi("VIEW_IDLE_TTL_SECONDS", 1800)) * time.Second,
		Filter: domain.FilterCriteria{
			Rating:   domain.Int(atoi("DEFAULT_RATING", 3)).Clamp(domain.MinRating, domain.MaxRating),
			Adults:   domain.Int(atoi("DEFAULT_ADULTS", 2)).Clamp(domain.MinAdults, domain.MaxAdults),
			Children: domain.Int(atoi("DEFAULT_CHILDREN", 0)).Clamp(domain.MinChildren, domain.MaxChildren),
		},
	}
	if c.HTTPTimeout < 0 {
		c.HTTPTimeout = 0
	}
	if c.ViewIdleTTL < 0 {
		c.ViewIdleTTL = 0
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
