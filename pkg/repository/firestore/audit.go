package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/intakebox/intakebox/pkg/domain/model"
	"github.com/intakebox/intakebox/pkg/domain/types"
	"google.golang.org/api/iterator"
)

const auditCollection = "audit_logs"

type auditDoc struct {
	ID        string    `firestore:"ID"`
	ReportID  string    `firestore:"ReportID"`
	ActorID   string    `firestore:"ActorID"`
	ActorName string    `firestore:"ActorName"`
	Action    string    `firestore:"Action"`
	Timestamp time.Time `firestore:"Timestamp"`
}

func toAuditDoc(e *model.AuditEntry) *auditDoc {
	return &auditDoc{
		ID:        e.ID.String(),
		ReportID:  e.ReportID.String(),
		ActorID:   e.Actor.ID.String(),
		ActorName: e.Actor.Name,
		Action:    e.Action,
		Timestamp: e.Timestamp,
	}
}

func fromAuditDoc(d *auditDoc) *model.AuditEntry {
	return &model.AuditEntry{
		ID:        types.AuditID(d.ID),
		ReportID:  types.ReportID(d.ReportID),
		Actor:     model.ActorRef{ID: types.IdentityID(d.ActorID), Name: d.ActorName},
		Action:    d.Action,
		Timestamp: d.Timestamp,
	}
}

type auditRepository struct {
	client *firestore.Client
}

func newAuditRepository(client *firestore.Client) *auditRepository {
	return &auditRepository{client: client}
}

func (r *auditRepository) Append(ctx context.Context, entry *model.AuditEntry) error {
	if entry == nil {
		return goerr.New("audit entry is nil")
	}

	ref := r.client.Collection(auditCollection).Doc(entry.ID.String())
	if _, err := ref.Create(ctx, toAuditDoc(entry)); err != nil {
		return wrapStoreErr(err, "failed to append audit entry", goerr.V("id", entry.ID))
	}
	return nil
}

func (r *auditRepository) List(ctx context.Context) ([]*model.AuditEntry, error) {
	iter := r.client.Collection(auditCollection).
		OrderBy("Timestamp", firestore.Desc).
		Documents(ctx)
	return collectAudit(iter)
}

func (r *auditRepository) ListByReport(ctx context.Context, reportID types.ReportID) ([]*model.AuditEntry, error) {
	// requires the composite index applied by `intakebox migrate`
	iter := r.client.Collection(auditCollection).
		Where("ReportID", "==", reportID.String()).
		OrderBy("Timestamp", firestore.Desc).
		Documents(ctx)
	return collectAudit(iter)
}

func collectAudit(iter *firestore.DocumentIterator) ([]*model.AuditEntry, error) {
	defer iter.Stop()

	var entries []*model.AuditEntry
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapStoreErr(err, "failed to iterate audit entries")
		}

		var doc auditDoc
		if err := docSnap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode audit entry", goerr.V("doc_id", docSnap.Ref.ID))
		}
		entries = append(entries, fromAuditDoc(&doc))
	}
	return entries, nil
}
