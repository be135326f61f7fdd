package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/intakebox/intakebox/pkg/domain/model"
	"github.com/intakebox/intakebox/pkg/domain/types"
)

type auditRepository struct {
	mu      sync.RWMutex
	entries []*model.AuditEntry
}

func newAuditRepository() *auditRepository {
	return &auditRepository{}
}

func copyEntry(e *model.AuditEntry) *model.AuditEntry {
	copied := *e
	return &copied
}

func (r *auditRepository) Append(ctx context.Context, entry *model.AuditEntry) error {
	if entry == nil {
		return goerr.New("audit entry is nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, copyEntry(entry))
	return nil
}

func (r *auditRepository) List(ctx context.Context) ([]*model.AuditEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]*model.AuditEntry, 0, len(r.entries))
	for _, e := range r.entries {
		entries = append(entries, copyEntry(e))
	}
	sortAuditDescending(entries)
	return entries, nil
}

func (r *auditRepository) ListByReport(ctx context.Context, reportID types.ReportID) ([]*model.AuditEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var entries []*model.AuditEntry
	for _, e := range r.entries {
		if e.ReportID == reportID {
			entries = append(entries, copyEntry(e))
		}
	}
	sortAuditDescending(entries)
	return entries, nil
}

func sortAuditDescending(entries []*model.AuditEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})
}
