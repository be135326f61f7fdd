package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/intakebox/intakebox/pkg/domain/model"
	"github.com/intakebox/intakebox/pkg/domain/types"
)

type reportRepository struct {
	mu      sync.RWMutex
	reports map[types.ReportID]*model.Report
	byCode  map[types.TrackingCode]types.ReportID
}

func newReportRepository() *reportRepository {
	return &reportRepository{
		reports: make(map[types.ReportID]*model.Report),
		byCode:  make(map[types.TrackingCode]types.ReportID),
	}
}

func (r *reportRepository) Create(ctx context.Context, report *model.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.reports[report.ID]; exists {
		return goerr.New("report already exists", goerr.V("id", report.ID))
	}

	stored := report.Clone()
	r.reports[stored.ID] = stored
	r.byCode[stored.TrackingCode] = stored.ID
	return nil
}

func (r *reportRepository) Get(ctx context.Context, id types.ReportID) (*model.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	report, exists := r.reports[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "report not found", goerr.V("id", id))
	}
	return report.Clone(), nil
}

func (r *reportRepository) GetByTrackingCode(ctx context.Context, code types.TrackingCode) (*model.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, exists := r.byCode[code]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "report not found", goerr.V("code", code))
	}
	return r.reports[id].Clone(), nil
}

func (r *reportRepository) List(ctx context.Context) ([]*model.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reports := make([]*model.Report, 0, len(r.reports))
	for _, report := range r.reports {
		reports = append(reports, report.Clone())
	}
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].SubmittedAt.After(reports[j].SubmittedAt)
	})
	return reports, nil
}

func (r *reportRepository) Update(ctx context.Context, report *model.Report) (*model.Report, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, exists := r.reports[report.ID]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "report not found", goerr.V("id", report.ID))
	}

	updated := report.Clone()
	updated.SubmittedAt = existing.SubmittedAt
	updated.UpdatedAt = time.Now().UTC()

	r.reports[updated.ID] = updated
	return updated.Clone(), nil
}

func (r *reportRepository) Delete(ctx context.Context, id types.ReportID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	report, exists := r.reports[id]
	if !exists {
		return goerr.Wrap(ErrNotFound, "report not found", goerr.V("id", id))
	}

	delete(r.byCode, report.TrackingCode)
	delete(r.reports, id)
	return nil
}
