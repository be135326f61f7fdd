package usecase

import (
	"context"

	"github.com/intakebox/intakebox/pkg/domain/model"
	"github.com/intakebox/intakebox/pkg/domain/types"
)

// TrackingView is what the public tracking lookup returns: the case state
// plus its message log. Reporter contact data never leaves the server on
// this path; the reporter already knows who they are.
type TrackingView struct {
	Report   *model.Report
	Messages []*model.Message
}

// TrackReport resolves a public tracking code to the case timeline. No
// authentication is required; possession of the code is the capability.
func (uc *UseCases) TrackReport(ctx context.Context, code types.TrackingCode) (*TrackingView, error) {
	report, err := uc.getReportByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	msgs, err := uc.repo.Message().List(ctx, report.ID)
	if err != nil {
		return nil, storeErr(ctx, err, "message.list", "reports/"+report.ID.String()+"/messages", nil)
	}

	return &TrackingView{
		Report:   report.Redacted(),
		Messages: msgs,
	}, nil
}

// WatchTrackedMessages subscribes to the message stream of a tracked case
func (uc *UseCases) WatchTrackedMessages(ctx context.Context, code types.TrackingCode) (<-chan *model.Message, error) {
	report, err := uc.getReportByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return uc.WatchMessages(ctx, report.ID)
}

// ReportIDByCode resolves a tracking code to the internal report ID
func (uc *UseCases) ReportIDByCode(ctx context.Context, code types.TrackingCode) (types.ReportID, error) {
	report, err := uc.getReportByCode(ctx, code)
	if err != nil {
		return "", err
	}
	return report.ID, nil
}
