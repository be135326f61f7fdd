package interfaces

import (
	"context"

	"github.com/intakebox/intakebox/pkg/domain/model"
	"github.com/intakebox/intakebox/pkg/domain/types"
)

// ReportRepository defines the interface for Report data access
type ReportRepository interface {
	// Create persists a new report. ID, tracking code, and timestamps must
	// already be set by the caller.
	Create(ctx context.Context, report *model.Report) error

	// Get retrieves a report by internal ID
	Get(ctx context.Context, id types.ReportID) (*model.Report, error)

	// GetByTrackingCode retrieves a report by its public tracking code
	GetByTrackingCode(ctx context.Context, code types.TrackingCode) (*model.Report, error)

	// List retrieves all reports ordered by submission time descending
	List(ctx context.Context) ([]*model.Report, error)

	// Update overwrites an existing report (last writer wins)
	Update(ctx context.Context, report *model.Report) (*model.Report, error)

	// Delete removes a report by ID
	Delete(ctx context.Context, id types.ReportID) error
}
