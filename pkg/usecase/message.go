package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/intakebox/intakebox/pkg/domain/interfaces"
	"github.com/intakebox/intakebox/pkg/domain/model"
	"github.com/intakebox/intakebox/pkg/domain/types"
)

// PostReporterMessage appends a reporter-sent message to the case found
// by tracking code. Reporters are pseudonymous: no identity is attached.
func (uc *UseCases) PostReporterMessage(ctx context.Context, code types.TrackingCode, content string) (*model.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, goerr.Wrap(ErrValidation, "message content is required")
	}

	report, err := uc.getReportByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if report.IsResolved() {
		return nil, goerr.Wrap(ErrInvalidState, "case is resolved; channel is closed",
			goerr.V("tracking_code", code))
	}

	msg := &model.Message{
		ID:       types.NewMessageID(),
		ReportID: report.ID,
		Sender:   types.SenderReporter,
		Content:  content,
		SentAt:   time.Now().UTC(),
	}
	if err := uc.repo.Message().Append(ctx, msg); err != nil {
		return nil, storeErr(ctx, err, "message.append", "reports/"+report.ID.String()+"/messages", nil)
	}
	return msg, nil
}

// PostOfficerMessage appends an officer-sent message carrying the acting
// identity's display info.
func (uc *UseCases) PostOfficerMessage(ctx context.Context, reportID types.ReportID, content string) (*model.Message, error) {
	actor, err := requireCaseManager(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, goerr.Wrap(ErrValidation, "message content is required")
	}

	report, err := uc.loadMutableCase(ctx, reportID)
	if err != nil {
		return nil, err
	}

	msg := &model.Message{
		ID:       types.NewMessageID(),
		ReportID: report.ID,
		Sender:   types.SenderOfficer,
		Content:  content,
		SenderInfo: &model.SenderInfo{
			IdentityID: actor.ID,
			Name:       actor.Name,
			AvatarURL:  actor.AvatarURL,
		},
		SentAt: time.Now().UTC(),
	}
	if err := uc.repo.Message().Append(ctx, msg); err != nil {
		return nil, storeErr(ctx, err, "message.append", "reports/"+report.ID.String()+"/messages", nil)
	}
	return msg, nil
}

// ListMessages returns the full message log of a case in send order
func (uc *UseCases) ListMessages(ctx context.Context, reportID types.ReportID) ([]*model.Message, error) {
	msgs, err := uc.repo.Message().List(ctx, reportID)
	if err != nil {
		return nil, storeErr(ctx, err, "message.list", "reports/"+reportID.String()+"/messages", nil)
	}
	return msgs, nil
}

// WatchMessages subscribes to the case's message stream: backlog first,
// then live appends. The returned channel closes when ctx is cancelled.
func (uc *UseCases) WatchMessages(ctx context.Context, reportID types.ReportID) (<-chan *model.Message, error) {
	ch, err := uc.repo.Message().Watch(ctx, reportID)
	if err != nil {
		return nil, storeErr(ctx, err, "message.watch", "reports/"+reportID.String()+"/messages", nil)
	}
	return ch, nil
}

func (uc *UseCases) getReportByCode(ctx context.Context, code types.TrackingCode) (*model.Report, error) {
	normalized := types.NormalizeTrackingCode(code.String())
	if err := normalized.Validate(); err != nil {
		return nil, goerr.Wrap(ErrValidation, "malformed tracking code", goerr.V("code", code))
	}

	report, err := uc.repo.Report().GetByTrackingCode(ctx, normalized)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, goerr.Wrap(ErrReportNotFound, "no case for tracking code", goerr.V("code", normalized))
		}
		return nil, storeErr(ctx, err, "report.get_by_code", "reports", normalized)
	}
	return report, nil
}
