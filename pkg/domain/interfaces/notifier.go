package interfaces

import (
	"context"

	"github.com/intakebox/intakebox/pkg/domain/model"
)

// Notifier delivers best-effort operational notifications to officers.
// Failures are logged and never fail the triggering operation.
type Notifier interface {
	NotifySubmission(ctx context.Context, report *model.Report) error
	NotifyClosed(ctx context.Context, report *model.Report, closedBy string) error
}
