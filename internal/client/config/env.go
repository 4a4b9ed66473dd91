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
//	TRATTORIA_STORE            backend kind: memory, file or sqlite
//	TRATTORIA_STATE_FILE       state document path for the file backend
//	TRATTORIA_DATABASE_DSN     SQLite DSN
//	TRATTORIA_SERVER_ENDPOINT  base URL of the sync server
//	TRATTORIA_REQUEST_TIMEOUT  per-request deadline, e.g. "5s"
func parseEnv(cfg *Config) {
	// Missing .env is the normal case.
	_ = godotenv.Load()

	if v, ok := os.LookupEnv("TRATTORIA_STORE"); ok {
		cfg.Store = v
	}
	if v, ok := os.LookupEnv("TRATTORIA_STATE_FILE"); ok {
		cfg.StateFile = v
	}
	if v, ok := os.LookupEnv("TRATTORIA_DATABASE_DSN"); ok {
		cfg.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("TRATTORIA_SERVER_ENDPOINT"); ok {
		cfg.ServerEndpointAddr = v
	}
	if v, ok := os.LookupEnv("TRATTORIA_REQUEST_TIMEOUT"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
}
