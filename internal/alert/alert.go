// Package alert reports failures that are not the user's fault to the
// operators. Each report gets an incident id the user can quote back.
package alert

import (
	"context"

	"github.com/dmitrijs2005/listbot/internal/logging"
	"github.com/google/uuid"
)

// Incident describes the command that hit an unexpected failure.
type Incident struct {
	Owner     int64
	Function  string
	Parameter string
	ListID    string
	Err       error
}

type Notifier interface {
	// Notify records the incident and returns its id.
	Notify(ctx context.Context, in Incident) string
}

// LogNotifier writes incidents as error records to a dedicated logger.
type LogNotifier struct {
	logger logging.Logger
	newID  func() string
}

func NewLogNotifier(logger logging.Logger) *LogNotifier {
	return &LogNotifier{
		logger: logger.With("module", "alert"),
		newID:  uuid.NewString,
	}
}

func (n *LogNotifier) Notify(ctx context.Context, in Incident) string {
	id := n.newID()
	n.logger.Error(ctx, "unexpected failure",
		"incident", id,
		"owner", in.Owner,
		"function", in.Function,
		"parameter", in.Parameter,
		"list", in.ListID,
		"error", in.Err,
	)
	return id
}

// NotifyStartup reports a failure found while loading persisted state.
func (n *LogNotifier) NotifyStartup(ctx context.Context, err error) string {
	id := n.newID()
	n.logger.Error(ctx, "startup integrity failure", "incident", id, "error", err)
	return id
}
