package config

import "time"

// Store backends selectable at startup. All of them implement the same
// store.Store contract; the choice only affects where state lives.
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreSQLite = "sqlite"
)

// Config holds runtime settings for the Trattoria CLI.
//
// Fields:
//   - Store: which persistence backend to use ("memory", "file" or "sqlite").
//   - StateFile: path of the JSON state document for the file backend.
//   - DatabaseDSN: SQLite DSN for the sqlite backend.
//   - ServerEndpointAddr: base URL of the profile-sync server.
//   - RequestTimeout: per-request deadline for server calls.
type Config struct {
	Store              string
	StateFile          string
	DatabaseDSN        string
	ServerEndpointAddr string
	RequestTimeout     time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.Store = StoreSQLite
	c.StateFile = "trattoria_state.json"
	c.DatabaseDSN = "trattoria.db"
	c.ServerEndpointAddr = "http://127.0.0.1:3001"
	c.RequestTimeout = 5 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
