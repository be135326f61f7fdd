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

const attachmentsCollection = "attachments"

type attachmentDoc struct {
	ID             string    `firestore:"ID"`
	ReportID       string    `firestore:"ReportID"`
	URL            string    `firestore:"URL"`
	FileName       string    `firestore:"FileName"`
	FileType       string    `firestore:"FileType"`
	UploadedAt     time.Time `firestore:"UploadedAt"`
	UploadedByID   string    `firestore:"UploadedByID"`
	UploadedByName string    `firestore:"UploadedByName"`
}

func toAttachmentDoc(a *model.Attachment) *attachmentDoc {
	return &attachmentDoc{
		ID:             a.ID.String(),
		ReportID:       a.ReportID.String(),
		URL:            a.URL,
		FileName:       a.FileName,
		FileType:       a.FileType,
		UploadedAt:     a.UploadedAt,
		UploadedByID:   a.UploadedBy.ID.String(),
		UploadedByName: a.UploadedBy.Name,
	}
}

func fromAttachmentDoc(d *attachmentDoc) *model.Attachment {
	return &model.Attachment{
		ID:         types.AttachmentID(d.ID),
		ReportID:   types.ReportID(d.ReportID),
		URL:        d.URL,
		FileName:   d.FileName,
		FileType:   d.FileType,
		UploadedAt: d.UploadedAt,
		UploadedBy: model.UploaderRef{ID: types.IdentityID(d.UploadedByID), Name: d.UploadedByName},
	}
}

type attachmentRepository struct {
	client *firestore.Client
}

func newAttachmentRepository(client *firestore.Client) *attachmentRepository {
	return &attachmentRepository{client: client}
}

func (r *attachmentRepository) attachments(reportID types.ReportID) *firestore.CollectionRef {
	return r.client.
		Collection(reportsCollection).Doc(reportID.String()).
		Collection(attachmentsCollection)
}

func (r *attachmentRepository) Put(ctx context.Context, attachment *model.Attachment) error {
	if attachment == nil {
		return goerr.New("attachment is nil")
	}

	ref := r.attachments(attachment.ReportID).Doc(attachment.ID.String())
	if _, err := ref.Set(ctx, toAttachmentDoc(attachment)); err != nil {
		return wrapStoreErr(err, "failed to save attachment",
			goerr.V("report_id", attachment.ReportID),
			goerr.V("attachment_id", attachment.ID))
	}
	return nil
}

func (r *attachmentRepository) List(ctx context.Context, reportID types.ReportID) ([]*model.Attachment, error) {
	iter := r.attachments(reportID).
		OrderBy("UploadedAt", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var attachments []*model.Attachment
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapStoreErr(err, "failed to iterate attachments", goerr.V("report_id", reportID))
		}

		var doc attachmentDoc
		if err := docSnap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode attachment", goerr.V("doc_id", docSnap.Ref.ID))
		}
		attachments = append(attachments, fromAttachmentDoc(&doc))
	}
	return attachments, nil
}

func (r *attachmentRepository) DeleteByReport(ctx context.Context, reportID types.ReportID) error {
	return deleteCollection(ctx, r.client, r.attachments(reportID))
}
