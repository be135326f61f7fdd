package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/intakebox/intakebox/pkg/domain/interfaces"
	"github.com/intakebox/intakebox/pkg/domain/model"
	"github.com/intakebox/intakebox/pkg/domain/model/auth"
	"github.com/intakebox/intakebox/pkg/domain/types"
)

// IssueUploadURL returns a signed, time-boxed URL for uploading one file
// of an open case. The binary goes directly to object storage; only the
// metadata record passes through here afterward.
func (uc *UseCases) IssueUploadURL(ctx context.Context, reportID types.ReportID, fileName, fileType string) (*interfaces.UploadTarget, error) {
	if _, err := requireCaseManager(ctx); err != nil {
		return nil, err
	}
	return uc.issueUploadURL(ctx, reportID, fileName, fileType)
}

// IssueReporterUploadURL is the unauthenticated variant keyed by tracking
// code, used by the reporter-side tracking view.
func (uc *UseCases) IssueReporterUploadURL(ctx context.Context, code types.TrackingCode, fileName, fileType string) (*interfaces.UploadTarget, error) {
	report, err := uc.getReportByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if report.IsResolved() {
		return nil, goerr.Wrap(ErrInvalidState, "case is resolved; uploads are closed")
	}
	return uc.issueUploadURL(ctx, report.ID, fileName, fileType)
}

func (uc *UseCases) issueUploadURL(ctx context.Context, reportID types.ReportID, fileName, fileType string) (*interfaces.UploadTarget, error) {
	if uc.storage == nil {
		return nil, goerr.New("object storage is not configured")
	}
	if strings.TrimSpace(fileName) == "" {
		return nil, goerr.Wrap(ErrValidation, "file name is required")
	}

	report, err := uc.loadMutableCase(ctx, reportID)
	if err != nil {
		return nil, err
	}

	target, err := uc.storage.IssueUploadURL(ctx, report.ID, fileName, fileType)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to issue upload URL",
			goerr.V("report_id", report.ID),
			goerr.V("file_name", fileName),
		)
	}
	return target, nil
}

// RecordAttachment stores the metadata record after a successful direct
// upload. The uploader is the acting identity, or the synthetic reporter
// reference when the call is unauthenticated.
func (uc *UseCases) RecordAttachment(ctx context.Context, reportID types.ReportID, url, fileName, fileType string) (*model.Attachment, error) {
	if strings.TrimSpace(url) == "" || strings.TrimSpace(fileName) == "" {
		return nil, goerr.Wrap(ErrValidation, "attachment URL and file name are required")
	}

	report, err := uc.loadMutableCase(ctx, reportID)
	if err != nil {
		return nil, err
	}

	uploadedBy := model.ReporterUploader()
	if identity, ok := auth.IdentityFromContext(ctx); ok {
		uploadedBy = model.UploaderRef{ID: identity.ID, Name: identity.Name}
	}

	attachment := &model.Attachment{
		ID:         types.NewAttachmentID(),
		ReportID:   report.ID,
		URL:        url,
		FileName:   fileName,
		FileType:   fileType,
		UploadedAt: time.Now().UTC(),
		UploadedBy: uploadedBy,
	}
	if err := uc.repo.Attachment().Put(ctx, attachment); err != nil {
		return nil, storeErr(ctx, err, "attachment.put", "reports/"+report.ID.String()+"/attachments", fileName)
	}
	return attachment, nil
}

// ListAttachments returns the attachment records of a case
func (uc *UseCases) ListAttachments(ctx context.Context, reportID types.ReportID) ([]*model.Attachment, error) {
	if _, err := requireCaseManager(ctx); err != nil {
		return nil, err
	}

	attachments, err := uc.repo.Attachment().List(ctx, reportID)
	if err != nil {
		return nil, storeErr(ctx, err, "attachment.list", "reports/"+reportID.String()+"/attachments", nil)
	}
	return attachments, nil
}
