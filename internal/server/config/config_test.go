package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":3001", c.EndpointAddr)
	assert.Equal(t, DatabaseSQLite, c.DatabaseType)
	assert.Equal(t, "restaurant.db", c.DatabaseDSN)
	assert.Equal(t, 5*time.Second, c.ShutdownTimeout)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	cfg := LoadConfig()

	require.NotNil(t, cfg, "LoadConfig must not return nil")
	assert.Equal(t, ":3001", cfg.EndpointAddr)
	assert.Equal(t, DatabaseSQLite, cfg.DatabaseType)
}

func TestParseEnv_Overlays(t *testing.T) {
	t.Setenv("TRATTORIA_SERVER_ADDR", ":9001")
	t.Setenv("TRATTORIA_DATABASE_TYPE", DatabasePostgres)
	t.Setenv("TRATTORIA_DATABASE_DSN", "postgres://u:p@db:5432/menu?sslmode=disable")
	t.Setenv("TRATTORIA_SHUTDOWN_TIMEOUT", "15s")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, ":9001", cfg.EndpointAddr)
	assert.Equal(t, DatabasePostgres, cfg.DatabaseType)
	assert.Equal(t, "postgres://u:p@db:5432/menu?sslmode=disable", cfg.DatabaseDSN)
	assert.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
}
