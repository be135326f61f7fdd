package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/intakebox/intakebox/pkg/domain/model"
	"github.com/intakebox/intakebox/pkg/domain/types"
	"github.com/intakebox/intakebox/pkg/utils/logging"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const messagesCollection = "messages"

type senderInfoDoc struct {
	IdentityID string `firestore:"IdentityID"`
	Name       string `firestore:"Name"`
	AvatarURL  string `firestore:"AvatarURL"`
}

type messageDoc struct {
	ID         string         `firestore:"ID"`
	ReportID   string         `firestore:"ReportID"`
	Sender     string         `firestore:"Sender"`
	Content    string         `firestore:"Content"`
	SenderInfo *senderInfoDoc `firestore:"SenderInfo"`
	SentAt     time.Time      `firestore:"SentAt"`
}

func toMessageDoc(m *model.Message) *messageDoc {
	doc := &messageDoc{
		ID:       m.ID.String(),
		ReportID: m.ReportID.String(),
		Sender:   m.Sender.String(),
		Content:  m.Content,
		SentAt:   m.SentAt,
	}
	if m.SenderInfo != nil {
		doc.SenderInfo = &senderInfoDoc{
			IdentityID: m.SenderInfo.IdentityID.String(),
			Name:       m.SenderInfo.Name,
			AvatarURL:  m.SenderInfo.AvatarURL,
		}
	}
	return doc
}

func fromMessageDoc(d *messageDoc) *model.Message {
	msg := &model.Message{
		ID:       types.MessageID(d.ID),
		ReportID: types.ReportID(d.ReportID),
		Sender:   types.Sender(d.Sender),
		Content:  d.Content,
		SentAt:   d.SentAt,
	}
	if d.SenderInfo != nil {
		msg.SenderInfo = &model.SenderInfo{
			IdentityID: types.IdentityID(d.SenderInfo.IdentityID),
			Name:       d.SenderInfo.Name,
			AvatarURL:  d.SenderInfo.AvatarURL,
		}
	}
	return msg
}

type messageRepository struct {
	client *firestore.Client
}

func newMessageRepository(client *firestore.Client) *messageRepository {
	return &messageRepository{client: client}
}

func (r *messageRepository) messages(reportID types.ReportID) *firestore.CollectionRef {
	return r.client.
		Collection(reportsCollection).Doc(reportID.String()).
		Collection(messagesCollection)
}

func (r *messageRepository) Append(ctx context.Context, msg *model.Message) error {
	if msg == nil {
		return goerr.New("message is nil")
	}

	ref := r.messages(msg.ReportID).Doc(msg.ID.String())
	if _, err := ref.Create(ctx, toMessageDoc(msg)); err != nil {
		return wrapStoreErr(err, "failed to append message",
			goerr.V("report_id", msg.ReportID),
			goerr.V("message_id", msg.ID))
	}
	return nil
}

func (r *messageRepository) List(ctx context.Context, reportID types.ReportID) ([]*model.Message, error) {
	iter := r.messages(reportID).
		OrderBy("SentAt", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var messages []*model.Message
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapStoreErr(err, "failed to iterate messages", goerr.V("report_id", reportID))
		}

		var doc messageDoc
		if err := docSnap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode message", goerr.V("doc_id", docSnap.Ref.ID))
		}
		messages = append(messages, fromMessageDoc(&doc))
	}
	return messages, nil
}

// Watch streams the message log through Firestore query snapshots. The
// first snapshot replays the existing log; later snapshots deliver only
// the added documents, already in SentAt order.
func (r *messageRepository) Watch(ctx context.Context, reportID types.ReportID) (<-chan *model.Message, error) {
	snapIter := r.messages(reportID).
		OrderBy("SentAt", firestore.Asc).
		Snapshots(ctx)

	out := make(chan *model.Message, 64)
	go func() {
		defer snapIter.Stop()
		defer close(out)

		for {
			snap, err := snapIter.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					logging.From(ctx).Error("message snapshot stream failed",
						"report_id", reportID.String(),
						"error", err.Error(),
					)
				}
				return
			}

			for _, change := range snap.Changes {
				if change.Kind != firestore.DocumentAdded {
					continue
				}
				var doc messageDoc
				if err := change.Doc.DataTo(&doc); err != nil {
					logging.From(ctx).Error("failed to decode streamed message",
						"doc_id", change.Doc.Ref.ID,
						"error", err.Error(),
					)
					continue
				}
				select {
				case out <- fromMessageDoc(&doc):
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

func (r *messageRepository) DeleteByReport(ctx context.Context, reportID types.ReportID) error {
	return deleteCollection(ctx, r.client, r.messages(reportID))
}
