package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/intakebox/intakebox/pkg/domain/interfaces"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Sentinels re-exported from interfaces so callers inside this package can
// wrap them uniformly.
var (
	ErrNotFound         = interfaces.ErrNotFound
	ErrPermissionDenied = interfaces.ErrPermissionDenied
)

// wrapStoreErr maps gRPC status codes of the Firestore client onto the
// repository sentinels. PermissionDenied must stay distinguishable from
// transport failures (policy contract of every mutating operation).
func wrapStoreErr(err error, msg string, options ...goerr.Option) error {
	switch status.Code(err) {
	case codes.NotFound:
		return goerr.Wrap(ErrNotFound, msg, options...)
	case codes.PermissionDenied:
		return goerr.Wrap(ErrPermissionDenied, msg, options...)
	default:
		return goerr.Wrap(err, msg, options...)
	}
}

// Firestore is the managed-store implementation of interfaces.Repository
type Firestore struct {
	client     *firestore.Client
	report     *reportRepository
	message    *messageRepository
	attachment *attachmentRepository
	audit      *auditRepository
	shareLink  *shareLinkRepository
	identity   *identityRepository
}

var _ interfaces.Repository = &Firestore{}

func New(ctx context.Context, projectID, databaseID string) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID))
	}

	return &Firestore{
		client:     client,
		report:     newReportRepository(client),
		message:    newMessageRepository(client),
		attachment: newAttachmentRepository(client),
		audit:      newAuditRepository(client),
		shareLink:  newShareLinkRepository(client),
		identity:   newIdentityRepository(client),
	}, nil
}

func (f *Firestore) Report() interfaces.ReportRepository {
	return f.report
}

func (f *Firestore) Message() interfaces.MessageRepository {
	return f.message
}

func (f *Firestore) Attachment() interfaces.AttachmentRepository {
	return f.attachment
}

func (f *Firestore) Audit() interfaces.AuditRepository {
	return f.audit
}

func (f *Firestore) ShareLink() interfaces.ShareLinkRepository {
	return f.shareLink
}

func (f *Firestore) Identity() interfaces.IdentityRepository {
	return f.identity
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
