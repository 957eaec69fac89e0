package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/listbot/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   webhook bind address (e.g., ":8080")
//	-g string   gRPC bind address (e.g., ":50051")
//	-t string   database driver, "sqlite" or "pgx"
//	-d string   database DSN
//	-s string   webhook token secret key
//	-r string   reserved list id
//	-l string   log file
//	-v string   log level
//	-x string   alert log file
//	-n int      database retry attempts
//	-w int      database retry delay, milliseconds
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, so -c and -mint do not reach this flag set.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-g", "-t", "-d", "-s", "-r", "-l", "-v", "-x", "-n", "-w"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "webhook address and port")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "gRPC address and port")
	fs.StringVar(&config.DatabaseDriver, "t", config.DatabaseDriver, "database driver (sqlite or pgx)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	fs.StringVar(&config.ReservedListID, "r", config.ReservedListID, "reserved list id")
	fs.StringVar(&config.LogFile, "l", config.LogFile, "log file")
	fs.StringVar(&config.LogLevel, "v", config.LogLevel, "log level")
	fs.StringVar(&config.AlertLogFile, "x", config.AlertLogFile, "alert log file")
	fs.UintVar(&config.DBRetryAttempts, "n", config.DBRetryAttempts, "database retry attempts")

	retryDelay := fs.Int("w", int(config.DBRetryDelay.Milliseconds()), "database retry delay (in milliseconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.DBRetryDelay = time.Duration(*retryDelay) * time.Millisecond
}
