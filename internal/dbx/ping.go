package dbx

import (
	"context"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
)

// Pinger is implemented by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// PingOptions controls how hard Ping tries before giving up.
type PingOptions struct {
	Attempts uint
	Delay    time.Duration
}

// DefaultPingOptions are used when the caller passes a zero PingOptions.
var DefaultPingOptions = PingOptions{Attempts: 3, Delay: 200 * time.Millisecond}

// Ping checks the connection before it is used and lets database/sql
// re-dial a dropped connection. Transient failures are retried with a fixed
// delay; the last error is returned once all attempts are spent.
func Ping(ctx context.Context, db Pinger, opts PingOptions) error {
	if opts.Attempts == 0 {
		opts = DefaultPingOptions
	}

	err := retry.Do(
		func() error { return db.PingContext(ctx) },
		retry.Context(ctx),
		retry.Attempts(opts.Attempts),
		retry.Delay(opts.Delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return fmt.Errorf("database unavailable: %w", err)
	}
	return nil
}
