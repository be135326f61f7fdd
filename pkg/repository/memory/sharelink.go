package memory

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/intakebox/intakebox/pkg/domain/model"
	"github.com/intakebox/intakebox/pkg/domain/types"
)

type shareLinkRepository struct {
	mu    sync.RWMutex
	links map[types.ShareToken]*model.ShareLink
}

func newShareLinkRepository() *shareLinkRepository {
	return &shareLinkRepository{
		links: make(map[types.ShareToken]*model.ShareLink),
	}
}

func (r *shareLinkRepository) Put(ctx context.Context, link *model.ShareLink) error {
	if link == nil {
		return goerr.New("share link is nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *link
	r.links[link.Token] = &copied
	return nil
}

func (r *shareLinkRepository) Get(ctx context.Context, token types.ShareToken) (*model.ShareLink, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	link, exists := r.links[token]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "share link not found")
	}
	copied := *link
	return &copied, nil
}

func (r *shareLinkRepository) DeleteByReport(ctx context.Context, reportID types.ReportID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for token, link := range r.links {
		if link.ReportID == reportID {
			delete(r.links, token)
		}
	}
	return nil
}
