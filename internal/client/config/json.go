package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/trattoria/internal/flagx"
	"github.com/dmitrijs2005/trattoria/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like "5s"
// or as integer nanoseconds.
type JsonConfig struct {
	Store              string         `json:"store"`
	StateFile          string         `json:"state_file"`
	DatabaseDSN        string         `json:"database_dsn"`
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
}

// parseJson overlays Config with values loaded from a JSON file. The file
// path comes from the -c/-config flags via flagx.JsonConfigFlags; when no
// path is given the function returns without changes. Read and unmarshal
// errors panic, matching the rest of the config pipeline.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.Store != "" {
		cfg.Store = jc.Store
	}
	if jc.StateFile != "" {
		cfg.StateFile = jc.StateFile
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
}
