package errutil

import (
	"context"
	"errors"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/intakebox/intakebox/pkg/utils/logging"
)

// Handle logs the error with its goerr context and returns it unchanged.
func Handle(ctx context.Context, err error, msg string) error {
	if err == nil {
		return nil
	}

	logger := logging.From(ctx)

	var ge *goerr.Error
	if errors.As(err, &ge) {
		logger.Error(msg,
			"error", err.Error(),
			"values", ge.Values(),
			"stack", ge.Stacks(),
		)
	} else {
		logger.Error(msg, "error", err.Error())
	}

	return err
}

// ReportPermission emits a diagnostic event for a backing-store permission
// rejection. The operation, document path, and attempted payload are
// attached so operators can distinguish rule violations from outages.
// No-op for the event sink when sentry is not initialized; the log line
// is always written.
func ReportPermission(ctx context.Context, err error, operation, path string, payload any) {
	logging.From(ctx).Error("store permission denied",
		"operation", operation,
		"path", path,
		"payload", payload,
		"error", err.Error(),
	)

	if hub := sentry.CurrentHub(); hub.Client() != nil {
		hub.CaptureEvent(&sentry.Event{
			Level:   sentry.LevelError,
			Message: "store permission denied: " + operation,
			Extra: map[string]any{
				"operation": operation,
				"path":      path,
				"payload":   payload,
				"error":     err.Error(),
			},
		})
	}
}
