// Package config handles configuration for the server component,
// including defaults, environment overlay, JSON overlay, and command-line
// flags.
package config

import "time"

// Database backends the server can run on.
const (
	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

// Config holds runtime settings for the profile-sync server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP API.
//   - DatabaseType: "sqlite" or "postgres".
//   - DatabaseDSN: SQLite path or PostgreSQL DSN (pgx).
//   - ShutdownTimeout: how long to wait for in-flight requests on shutdown.
type Config struct {
	EndpointAddr    string
	DatabaseType    string
	DatabaseDSN     string
	ShutdownTimeout time.Duration
}

// LoadDefaults populates Config with sensible development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":3001"
	c.DatabaseType = DatabaseSQLite
	c.DatabaseDSN = "restaurant.db"
	c.ShutdownTimeout = 5 * time.Second
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment, an optional JSON file and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
