package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/intakebox/intakebox/pkg/domain/model"
	"github.com/intakebox/intakebox/pkg/domain/types"
)

type attachmentRepository struct {
	mu          sync.RWMutex
	attachments map[types.ReportID][]*model.Attachment
}

func newAttachmentRepository() *attachmentRepository {
	return &attachmentRepository{
		attachments: make(map[types.ReportID][]*model.Attachment),
	}
}

func (r *attachmentRepository) Put(ctx context.Context, attachment *model.Attachment) error {
	if attachment == nil {
		return goerr.New("attachment is nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *attachment
	r.attachments[attachment.ReportID] = append(r.attachments[attachment.ReportID], &copied)
	return nil
}

func (r *attachmentRepository) List(ctx context.Context, reportID types.ReportID) ([]*model.Attachment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	attachments := make([]*model.Attachment, 0, len(r.attachments[reportID]))
	for _, a := range r.attachments[reportID] {
		copied := *a
		attachments = append(attachments, &copied)
	}
	sort.SliceStable(attachments, func(i, j int) bool {
		return attachments[i].UploadedAt.Before(attachments[j].UploadedAt)
	})
	return attachments, nil
}

func (r *attachmentRepository) DeleteByReport(ctx context.Context, reportID types.ReportID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.attachments, reportID)
	return nil
}
