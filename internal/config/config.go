// Package config loads runtime settings from the process environment.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for the server.
type Config struct {
	// Port is the HTTP listen port.
	Port string

	// MongoURI is the MongoDB connection string.
	MongoURI string

	// MongoDB is the database name.
	MongoDB string

	// RedisAddr is the optional Redis address (host:port). Empty disables
	// the product list cache.
	RedisAddr string

	// RedisPassword is the optional Redis password.
	RedisPassword string

	// CacheTTL is the lifetime of cached product list queries.
	CacheTTL time.Duration
}

// Load builds a Config from the environment, loading a .env file first if
// one is present (ok if missing in prod).
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getenvDefault("PORT", "8080"),
		MongoURI:      getenvDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:       getenvDefault("MONGO_DB", "shop"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		CacheTTL:      5 * time.Minute,
	}

	if host := os.Getenv("REDIS_HOST"); host != "" {
		cfg.RedisAddr = host + ":" + getenvDefault("REDIS_PORT", "6379")
	}

	if raw := os.Getenv("CACHE_TTL"); raw != "" {
		if ttl, err := time.ParseDuration(raw); err == nil && ttl > 0 {
			cfg.CacheTTL = ttl
		}
	}

	return cfg
}

func getenvDefault(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
