package usecase

import (
	"context"

	"github.com/intakebox/intakebox/pkg/domain/model"
	"github.com/intakebox/intakebox/pkg/domain/types"
)

// ListAudit returns the full audit trail, newest first
func (uc *UseCases) ListAudit(ctx context.Context) ([]*model.AuditEntry, error) {
	if _, err := requireCaseManager(ctx); err != nil {
		return nil, err
	}

	entries, err := uc.repo.Audit().List(ctx)
	if err != nil {
		return nil, storeErr(ctx, err, "audit.list", "audit_logs", nil)
	}
	return entries, nil
}

// ListAuditByReport returns the audit history of one case, newest first
func (uc *UseCases) ListAuditByReport(ctx context.Context, reportID types.ReportID) ([]*model.AuditEntry, error) {
	if _, err := requireCaseManager(ctx); err != nil {
		return nil, err
	}

	entries, err := uc.repo.Audit().ListByReport(ctx, reportID)
	if err != nil {
		return nil, storeErr(ctx, err, "audit.list_by_report", "audit_logs", reportID)
	}
	return entries, nil
}
