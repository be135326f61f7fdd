package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/intakebox/intakebox/pkg/domain/model"
	"github.com/intakebox/intakebox/pkg/domain/types"
)

type identityRepository struct {
	mu         sync.RWMutex
	identities map[types.IdentityID]*model.Identity
}

func newIdentityRepository() *identityRepository {
	return &identityRepository{
		identities: make(map[types.IdentityID]*model.Identity),
	}
}

func (r *identityRepository) Put(ctx context.Context, identity *model.Identity) error {
	if err := identity.Validate(); err != nil {
		return goerr.Wrap(err, "invalid identity")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *identity
	r.identities[identity.ID] = &copied
	return nil
}

func (r *identityRepository) Get(ctx context.Context, id types.IdentityID) (*model.Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	identity, exists := r.identities[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "identity not found", goerr.V("id", id))
	}
	copied := *identity
	return &copied, nil
}

func (r *identityRepository) List(ctx context.Context) ([]*model.Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	identities := make([]*model.Identity, 0, len(r.identities))
	for _, identity := range r.identities {
		copied := *identity
		identities = append(identities, &copied)
	}
	sort.Slice(identities, func(i, j int) bool {
		return identities[i].Name < identities[j].Name
	})
	return identities, nil
}

func (r *identityRepository) Delete(ctx context.Context, id types.IdentityID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.identities[id]; !exists {
		return goerr.Wrap(ErrNotFound, "identity not found", goerr.V("id", id))
	}
	delete(r.identities, id)
	return nil
}
