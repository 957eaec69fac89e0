// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the listbot server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the command webhook.
//   - EndpointAddrGRPC: bind address for the gRPC Lists and health services.
//   - DatabaseDriver / DatabaseDSN: "sqlite" (modernc) or "pgx" (PostgreSQL) and its DSN.
//   - SecretKey: HMAC secret for webhook tokens (HS256). Do not use test defaults in prod.
//   - TokenValidityDuration: lifetime of minted webhook tokens.
//   - ReservedListID: id of the list every owner gets.
//   - LogFile / LogLevel: rotating log file (stdout when empty) and minimum level.
//   - AlertLogFile: separate file for incident reports; the main log when empty.
//   - DBRetryAttempts / DBRetryDelay: connection health check retries.
type Config struct {
	EndpointAddrHTTP      string
	EndpointAddrGRPC      string
	DatabaseDriver        string
	DatabaseDSN           string
	SecretKey             string
	TokenValidityDuration time.Duration
	ReservedListID        string
	LogFile               string
	LogLevel              string
	AlertLogFile          string
	DBRetryAttempts       uint
	DBRetryDelay          time.Duration
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8080"
	c.EndpointAddrGRPC = ":50051"
	c.DatabaseDriver = "sqlite"
	c.DatabaseDSN = "listbot.db"
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = 30 * 24 * time.Hour
	c.ReservedListID = "bestgirl"
	c.LogLevel = "info"
	c.DBRetryAttempts = 3
	c.DBRetryDelay = 200 * time.Millisecond
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
