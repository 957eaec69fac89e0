package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/listbot/internal/flagx"
	"github.com/dmitrijs2005/listbot/internal/timex"
)

// JsonConfig is the on-disk form of Config. Durations use timex.Duration so
// both "200ms" and integer nanoseconds are accepted.
type JsonConfig struct {
	EndpointAddrHTTP      string         `json:"endpoint_addr_http"`
	EndpointAddrGRPC      string         `json:"endpoint_addr_grpc"`
	DatabaseDriver        string         `json:"database_driver"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	ReservedListID        string         `json:"reserved_list_id"`
	LogFile               string         `json:"log_file"`
	LogLevel              string         `json:"log_level"`
	AlertLogFile          string         `json:"alert_log_file"`
	DBRetryAttempts       uint           `json:"db_retry_attempts"`
	DBRetryDelay          timex.Duration `json:"db_retry_delay"`
}

// parseJson overlays values from the JSON file named by -c or -config.
// Fields missing from the file keep their current value. An unreadable or
// malformed file panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDriver, c.DatabaseDriver)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.ReservedListID, c.ReservedListID)
	setString(&config.LogFile, c.LogFile)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.AlertLogFile, c.AlertLogFile)
	if c.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	if c.DBRetryAttempts != 0 {
		config.DBRetryAttempts = c.DBRetryAttempts
	}
	if c.DBRetryDelay.Duration != 0 {
		config.DBRetryDelay = c.DBRetryDelay.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
