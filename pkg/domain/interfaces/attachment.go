package interfaces

import (
	"context"

	"github.com/intakebox/intakebox/pkg/domain/model"
	"github.com/intakebox/intakebox/pkg/domain/types"
)

// AttachmentRepository defines the interface for attachment metadata
type AttachmentRepository interface {
	// Put stores an attachment metadata record
	Put(ctx context.Context, attachment *model.Attachment) error

	// List returns all attachments of a case ordered by upload time ascending
	List(ctx context.Context, reportID types.ReportID) ([]*model.Attachment, error)

	// DeleteByReport removes all attachment records of a case
	DeleteByReport(ctx context.Context, reportID types.ReportID) error
}
