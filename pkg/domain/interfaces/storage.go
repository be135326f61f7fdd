package interfaces

import (
	"context"
	"time"

	"github.com/intakebox/intakebox/pkg/domain/types"
)

// UploadTarget is a time-boxed capability to upload one object directly
// to external storage.
type UploadTarget struct {
	UploadURL string
	PublicURL string
	ExpiresAt time.Time
}

// ObjectStorage issues capability-scoped upload URLs. Binary content
// never passes through this application.
type ObjectStorage interface {
	IssueUploadURL(ctx context.Context, reportID types.ReportID, fileName, fileType string) (*UploadTarget, error)
}
