package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all runtime settings, loaded from the environment.
type Config struct {
	Addr            string
	DBPath          string
	JWTSecret       string
	TokenTTL        time.Duration
	RateLimitPerMin int
	BcryptCost      int
}

// Load reads the configuration from environment variables, falling back
// to development defaults.
func Load() Config {
	addr := envString("BLOGAPI_ADDR", "")
	if addr == "" {
		if port := os.Getenv("PORT"); port != "" {
			addr = ":" + port
		} else {
			addr = ":8080"
		}
	}
	return Config{
		Addr:            addr,
		DBPath:          envString("BLOGAPI_DB", "data/badger"),
		JWTSecret:       envString("BLOGAPI_JWT_SECRET", "dev-jwt-secret"),
		TokenTTL:        envDuration("BLOGAPI_TOKEN_TTL", 24*time.Hour),
		RateLimitPerMin: envInt("BLOGAPI_RL_PER_MIN", 40),
		BcryptCost:      envInt("BLOGAPI_BCRYPT_COST", 10),
	}
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
