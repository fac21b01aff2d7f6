package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Default values
const (
	DefaultAPIBaseURL      = "https://data.education.gouv.fr/api/explore/v2.1/catalog/datasets/fr-en-calendrier-scolaire/records"
	DefaultFetchTimeout    = 15 * time.Second
	DefaultCacheTTL        = 24 * time.Hour
	DefaultRefreshSchedule = "0 3 * * *"
)

// Config 应用配置
type Config struct {
	Port            string
	DBPath          string
	JWTSecret       string
	APIBaseURL      string
	FetchTimeout    time.Duration
	CacheTTL        time.Duration
	RefreshSchedule string // cron spec, empty disables the refresh job
	Timezone        string
	DefaultZone     string
	MalformedPolicy string // skip or reject
	RateLimit       int    // requests per minute per IP
}

// Load 加载配置
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded, using system environment")
	}

	return &Config{
		Port:            getEnv("PORT", ":8080"),
		DBPath:          getEnv("DB_PATH", "./data/vacances.db"),
		JWTSecret:       getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		APIBaseURL:      getEnv("API_BASE_URL", DefaultAPIBaseURL),
		FetchTimeout:    getDuration("FETCH_TIMEOUT", DefaultFetchTimeout),
		CacheTTL:        getDuration("CACHE_TTL", DefaultCacheTTL),
		RefreshSchedule: getEnv("REFRESH_SCHEDULE", DefaultRefreshSchedule),
		Timezone:        getEnv("TIMEZONE", "Europe/Paris"),
		DefaultZone:     getEnv("DEFAULT_ZONE", "A"),
		MalformedPolicy: getEnv("MALFORMED_POLICY", "skip"),
		RateLimit:       getInt("RATE_LIMIT", 120),
	}
}

// Location returns the configured time zone, falling back to local time
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("Warning: unknown timezone %q, using local time: %v", c.Timezone, err)
		return time.Local
	}
	return loc
}

func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("Warning: invalid %s=%q, using %s", key, v, def)
		return def
	}
	return d
}

func getInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("Warning: invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}
