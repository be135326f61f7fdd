package interfaces

import (
	"context"

	"github.com/intakebox/intakebox/pkg/domain/model"
	"github.com/intakebox/intakebox/pkg/domain/types"
)

// ShareLinkRepository defines the interface for share-token persistence.
// There is deliberately no single-token delete: issued links stay valid
// until natural expiry.
type ShareLinkRepository interface {
	// Put stores a share link
	Put(ctx context.Context, link *model.ShareLink) error

	// Get retrieves a share link by token
	Get(ctx context.Context, token types.ShareToken) (*model.ShareLink, error)

	// DeleteByReport removes all links of a case (admin cascade delete)
	DeleteByReport(ctx context.Context, reportID types.ReportID) error
}
