package interfaces

import (
	"context"

	"github.com/intakebox/intakebox/pkg/domain/model"
	"github.com/intakebox/intakebox/pkg/domain/types"
)

// AuditRepository defines the interface for the append-only audit trail.
// There are no update or delete operations in this contract.
type AuditRepository interface {
	// Append stores a new audit entry
	Append(ctx context.Context, entry *model.AuditEntry) error

	// List returns all entries ordered by timestamp descending
	List(ctx context.Context) ([]*model.AuditEntry, error)

	// ListByReport returns all entries for one case, timestamp descending
	ListByReport(ctx context.Context, reportID types.ReportID) ([]*model.AuditEntry, error)
}
