package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Cache policies for the finder list queries. TrustAnyHit returns any
// non-empty store result without refreshing from the partner service;
// RefreshAlways bypasses the store read and refetches the full remote set.
const (
	CachePolicyTrustAnyHit   = "trust-any-hit"
	CachePolicyRefreshAlways = "refresh-always"
)

// Config holds all process configuration, populated from the environment.
type Config struct {
	AppEnv string
	Port   int

	// Partner service endpoints
	SindicateBaseURL   string
	SindicatePlanets   string
	SindicateDistances string
	EmpireBaseURL      string
	EmpireSpyReport    string
	EmpireAircrafts    string
	EmpirePrices       string

	// Monetary rounding: number of decimal places applied to every
	// amount leaving the pricing engine.
	DecimalPlaces int32

	// Finder behaviour for list queries.
	ListCachePolicy string

	// TTL for cached partner payloads (fleet catalog, fuel price list).
	ProviderCacheTTL time.Duration

	// Cache backend: "memory" or "redis".
	CacheBackend string
}

// Load reads the configuration from the environment, applying defaults
// suitable for local development.
func Load() *Config {
	return &Config{
		AppEnv: getEnv("APP_ENV", "development"),
		Port:   getEnvInt("PORT", 8080),

		SindicateBaseURL:   getEnv("SINDICATE_BASE_URL", "http://localhost:5001"),
		SindicatePlanets:   getEnv("SINDICATE_PLANETS_PATH", "/planets"),
		SindicateDistances: getEnv("SINDICATE_DISTANCES_PATH", "/distances"),
		EmpireBaseURL:      getEnv("EMPIRE_BASE_URL", "http://localhost:5002"),
		EmpireSpyReport:    getEnv("EMPIRE_SPY_REPORT_PATH", "/spy-report"),
		EmpireAircrafts:    getEnv("EMPIRE_AIRCRAFTS_PATH", "/aircrafts"),
		EmpirePrices:       getEnv("EMPIRE_PRICES_PATH", "/prices"),

		DecimalPlaces:   int32(getEnvInt("DECIMAL_PLACES", 2)),
		ListCachePolicy: getEnv("LIST_CACHE_POLICY", CachePolicyTrustAnyHit),

		ProviderCacheTTL: time.Duration(getEnvInt("PROVIDER_CACHE_TTL_SECONDS", 300)) * time.Second,
		CacheBackend:     getEnv("CACHE_BACKEND", "memory"),
	}
}

// PostgresDSN builds the connection string from PG_* variables.
func PostgresDSN() string {
	host := os.Getenv("PG_HOST")
	port := os.Getenv("PG_PORT")
	user := os.Getenv("PG_USER")
	dbname := os.Getenv("PG_DB")
	password := os.Getenv("PG_PASSWORD")
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbname)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
