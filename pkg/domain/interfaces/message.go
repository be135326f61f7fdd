package interfaces

import (
	"context"

	"github.com/intakebox/intakebox/pkg/domain/model"
	"github.com/intakebox/intakebox/pkg/domain/types"
)

// MessageRepository defines the interface for the per-case message log
type MessageRepository interface {
	// Append stores a new message. SentAt must already carry the
	// server-assigned timestamp.
	Append(ctx context.Context, msg *model.Message) error

	// List returns all messages of a case ordered by SentAt ascending
	List(ctx context.Context, reportID types.ReportID) ([]*model.Message, error)

	// Watch streams messages of a case: the current log first, then each
	// new append, in SentAt order. The channel is closed when ctx is
	// cancelled or the underlying subscription fails.
	Watch(ctx context.Context, reportID types.ReportID) (<-chan *model.Message, error)

	// DeleteByReport removes all messages of a case (admin cascade delete)
	DeleteByReport(ctx context.Context, reportID types.ReportID) error
}
