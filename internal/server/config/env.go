package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment.
// A .env file in the working directory is merged in first; variables already
// set in the environment win over the file.
//
// Recognized variables:
//
//	TRATTORIA_SERVER_ADDR       HTTP bind address
//	TRATTORIA_DATABASE_TYPE     sqlite or postgres
//	TRATTORIA_DATABASE_DSN      SQLite path or PostgreSQL DSN
//	TRATTORIA_SHUTDOWN_TIMEOUT  e.g. "5s"
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("TRATTORIA_SERVER_ADDR"); ok {
		cfg.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("TRATTORIA_DATABASE_TYPE"); ok {
		cfg.DatabaseType = v
	}
	if v, ok := os.LookupEnv("TRATTORIA_DATABASE_DSN"); ok {
		cfg.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("TRATTORIA_SHUTDOWN_TIMEOUT"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.ShutdownTimeout = d
		}
	}
}
