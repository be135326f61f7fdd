package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/intakebox/intakebox/pkg/domain/model"
	"github.com/intakebox/intakebox/pkg/domain/types"
	"google.golang.org/api/iterator"
)

const identitiesCollection = "identities"

type identityDoc struct {
	ID        string `firestore:"ID"`
	Name      string `firestore:"Name"`
	Email     string `firestore:"Email"`
	AvatarURL string `firestore:"AvatarURL"`
	Role      string `firestore:"Role"`
}

type identityRepository struct {
	client *firestore.Client
}

func newIdentityRepository(client *firestore.Client) *identityRepository {
	return &identityRepository{client: client}
}

func (r *identityRepository) Put(ctx context.Context, identity *model.Identity) error {
	if err := identity.Validate(); err != nil {
		return goerr.Wrap(err, "invalid identity")
	}

	doc := &identityDoc{
		ID:        identity.ID.String(),
		Name:      identity.Name,
		Email:     identity.Email,
		AvatarURL: identity.AvatarURL,
		Role:      identity.Role.String(),
	}
	ref := r.client.Collection(identitiesCollection).Doc(identity.ID.String())
	if _, err := ref.Set(ctx, doc); err != nil {
		return wrapStoreErr(err, "failed to save identity", goerr.V("id", identity.ID))
	}
	return nil
}

func (r *identityRepository) Get(ctx context.Context, id types.IdentityID) (*model.Identity, error) {
	docSnap, err := r.client.Collection(identitiesCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		return nil, wrapStoreErr(err, "failed to get identity", goerr.V("id", id))
	}

	var doc identityDoc
	if err := docSnap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode identity", goerr.V("id", id))
	}
	return &model.Identity{
		ID:        types.IdentityID(doc.ID),
		Name:      doc.Name,
		Email:     doc.Email,
		AvatarURL: doc.AvatarURL,
		Role:      types.Role(doc.Role),
	}, nil
}

func (r *identityRepository) List(ctx context.Context) ([]*model.Identity, error) {
	iter := r.client.Collection(identitiesCollection).
		OrderBy("Name", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var identities []*model.Identity
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, wrapStoreErr(err, "failed to iterate identities")
		}

		var doc identityDoc
		if err := docSnap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode identity", goerr.V("doc_id", docSnap.Ref.ID))
		}
		identities = append(identities, &model.Identity{
			ID:        types.IdentityID(doc.ID),
			Name:      doc.Name,
			Email:     doc.Email,
			AvatarURL: doc.AvatarURL,
			Role:      types.Role(doc.Role),
		})
	}
	return identities, nil
}

func (r *identityRepository) Delete(ctx context.Context, id types.IdentityID) error {
	docRef := r.client.Collection(identitiesCollection).Doc(id.String())

	if _, err := docRef.Get(ctx); err != nil {
		return wrapStoreErr(err, "failed to check identity existence", goerr.V("id", id))
	}
	if _, err := docRef.Delete(ctx); err != nil {
		return wrapStoreErr(err, "failed to delete identity", goerr.V("id", id))
	}
	return nil
}
