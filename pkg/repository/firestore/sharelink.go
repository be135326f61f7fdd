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

const shareLinksCollection = "share_links"

type shareLinkDoc struct {
	Token     string    `firestore:"Token"`
	ReportID  string    `firestore:"ReportID"`
	CreatedAt time.Time `firestore:"CreatedAt"`
	ExpiresAt time.Time `firestore:"ExpiresAt"`
}

type shareLinkRepository struct {
	client *firestore.Client
}

func newShareLinkRepository(client *firestore.Client) *shareLinkRepository {
	return &shareLinkRepository{client: client}
}

func (r *shareLinkRepository) Put(ctx context.Context, link *model.ShareLink) error {
	if link == nil {
		return goerr.New("share link is nil")
	}

	doc := &shareLinkDoc{
		Token:     link.Token.String(),
		ReportID:  link.ReportID.String(),
		CreatedAt: link.CreatedAt,
		ExpiresAt: link.ExpiresAt,
	}
	ref := r.client.Collection(shareLinksCollection).Doc(link.Token.String())
	if _, err := ref.Create(ctx, doc); err != nil {
		return wrapStoreErr(err, "failed to save share link", goerr.V("report_id", link.ReportID))
	}
	return nil
}

func (r *shareLinkRepository) Get(ctx context.Context, token types.ShareToken) (*model.ShareLink, error) {
	docSnap, err := r.client.Collection(shareLinksCollection).Doc(token.String()).Get(ctx)
	if err != nil {
		// token value deliberately not logged
		return nil, wrapStoreErr(err, "failed to get share link")
	}

	var doc shareLinkDoc
	if err := docSnap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode share link")
	}
	return &model.ShareLink{
		Token:     types.ShareToken(doc.Token),
		ReportID:  types.ReportID(doc.ReportID),
		CreatedAt: doc.CreatedAt,
		ExpiresAt: doc.ExpiresAt,
	}, nil
}

func (r *shareLinkRepository) DeleteByReport(ctx context.Context, reportID types.ReportID) error {
	iter := r.client.Collection(shareLinksCollection).
		Where("ReportID", "==", reportID.String()).
		Documents(ctx)
	defer iter.Stop()

	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return wrapStoreErr(err, "failed to iterate share links", goerr.V("report_id", reportID))
		}
		if _, err := docSnap.Ref.Delete(ctx); err != nil {
			return wrapStoreErr(err, "failed to delete share link", goerr.V("report_id", reportID))
		}
	}
	return nil
}
