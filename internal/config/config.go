// Package config loads engine configuration from environment variables.
// Empty values for DSN, redis address or maps key disable that collaborator
// entirely; the engine then runs local-only, which is valid configuration,
// not an error.
package config

import "os"

type Config struct {
	HTTP struct {
		Addr string
	}
	DB struct {
		DSN string
	}
	Redis struct {
		Addr string
	}
	Maps struct {
		APIKey string
	}
	Log struct {
		Level string
	}
}

func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("RIDECHECKA_HTTP_ADDR", ":8080")
	cfg.DB.DSN = os.Getenv("RIDECHECKA_DB_DSN")
	cfg.Redis.Addr = os.Getenv("RIDECHECKA_REDIS_ADDR")
	cfg.Maps.APIKey = os.Getenv("RIDECHECKA_MAPS_API_KEY")
	cfg.Log.Level = envOrDefault("RIDECHECKA_LOG_LEVEL", "info")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
