package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/intakebox/intakebox/pkg/domain/interfaces"
	"github.com/intakebox/intakebox/pkg/domain/model"
	"github.com/intakebox/intakebox/pkg/domain/types"
)

// GetReport returns one case for the officer dashboard. Anonymous cases
// carry no reporter contact to begin with; confidential contact data is
// visible to officers by design.
func (uc *UseCases) GetReport(ctx context.Context, reportID types.ReportID) (*model.Report, error) {
	if _, err := requireCaseManager(ctx); err != nil {
		return nil, err
	}

	report, err := uc.repo.Report().Get(ctx, reportID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrReportNotFound, "case not found", goerr.V("report_id", reportID))
		}
		return nil, storeErr(ctx, err, "report.get", "reports/"+reportID.String(), nil)
	}
	if report.SubmissionType == types.SubmissionAnonymous {
		return report.Redacted(), nil
	}
	return report, nil
}

// ListReports returns all cases, newest first
func (uc *UseCases) ListReports(ctx context.Context) ([]*model.Report, error) {
	if _, err := requireCaseManager(ctx); err != nil {
		return nil, err
	}

	reports, err := uc.repo.Report().List(ctx)
	if err != nil {
		return nil, storeErr(ctx, err, "report.list", "reports", nil)
	}
	return reports, nil
}

// DeleteReport removes a case and everything scoped under it: messages,
// attachments, and share links. Admin only, irreversible. The audit trail
// keeps its entries; it records history, not state.
func (uc *UseCases) DeleteReport(ctx context.Context, reportID types.ReportID) error {
	actor, err := requireAdmin(ctx)
	if err != nil {
		return err
	}

	report, err := uc.repo.Report().Get(ctx, reportID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return goerr.Wrap(ErrReportNotFound, "case not found", goerr.V("report_id", reportID))
		}
		return storeErr(ctx, err, "report.get", "reports/"+reportID.String(), nil)
	}

	if err := uc.repo.Message().DeleteByReport(ctx, reportID); err != nil {
		return storeErr(ctx, err, "message.delete_by_report", "reports/"+reportID.String()+"/messages", nil)
	}
	if err := uc.repo.Attachment().DeleteByReport(ctx, reportID); err != nil {
		return storeErr(ctx, err, "attachment.delete_by_report", "reports/"+reportID.String()+"/attachments", nil)
	}
	if err := uc.repo.ShareLink().DeleteByReport(ctx, reportID); err != nil {
		return storeErr(ctx, err, "sharelink.delete_by_report", "share_links", reportID)
	}
	if err := uc.repo.Report().Delete(ctx, reportID); err != nil {
		return storeErr(ctx, err, "report.delete", "reports/"+reportID.String(), nil)
	}

	action := fmt.Sprintf("deleted case %s", report.TrackingCode)
	return uc.appendAudit(ctx, "", model.ActorRef{ID: actor.ID, Name: actor.Name}, action)
}
