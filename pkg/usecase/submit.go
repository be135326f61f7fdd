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
	"github.com/intakebox/intakebox/pkg/utils/async"
	"github.com/intakebox/intakebox/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

// trackingCodeRetries bounds collision retries at creation. With 36^10 of
// keyspace a single retry is already overwhelmingly unlikely.
const trackingCodeRetries = 5

// SubmitInput is the public submission form payload
type SubmitInput struct {
	Title          string
	Content        string
	Category       string
	SubmissionType string
	Name           string `masq:"secret"`
	Email          string `masq:"secret"`
}

func (x *SubmitInput) validate() (types.Category, types.SubmissionType, error) {
	if strings.TrimSpace(x.Title) == "" {
		return "", "", goerr.Wrap(ErrValidation, "title is required")
	}
	if strings.TrimSpace(x.Content) == "" {
		return "", "", goerr.Wrap(ErrValidation, "content is required")
	}

	category, err := types.ParseCategory(x.Category)
	if err != nil {
		return "", "", goerr.Wrap(ErrValidation, "unknown category", goerr.V("category", x.Category))
	}

	submissionType, err := types.ParseSubmissionType(x.SubmissionType)
	if err != nil {
		return "", "", goerr.Wrap(ErrValidation, "unknown submission type", goerr.V("type", x.SubmissionType))
	}

	if submissionType == types.SubmissionConfidential {
		if strings.TrimSpace(x.Name) == "" || strings.TrimSpace(x.Email) == "" {
			return "", "", goerr.Wrap(ErrValidation, "confidential submission requires name and email")
		}
	}

	return category, submissionType, nil
}

// SubmitReport handles the public intake flow: validate, run the advisory
// calls, then persist. The case record is written only after every
// advisory call has succeeded; an advisory failure leaves no trace.
func (uc *UseCases) SubmitReport(ctx context.Context, input *SubmitInput) (*model.Report, error) {
	category, submissionType, err := input.validate()
	if err != nil {
		return nil, err
	}
	if uc.advisor == nil {
		return nil, goerr.Wrap(ErrAdvisoryFailed, "advisory service is not configured")
	}

	advisory, severity, err := uc.runAdvisory(ctx, input.Content)
	if err != nil {
		return nil, goerr.Wrap(ErrAdvisoryFailed, "advisory call failed", goerr.V("cause", err.Error()))
	}

	code, err := uc.newTrackingCode(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	report := &model.Report{
		ID:             types.NewReportID(),
		TrackingCode:   code,
		Title:          strings.TrimSpace(input.Title),
		Content:        input.Content,
		Category:       category,
		SubmissionType: submissionType,
		Severity:       severity,
		Status:         types.StatusNew,
		Advisory:       advisory,
		SubmittedAt:    now,
		UpdatedAt:      now,
	}
	if submissionType == types.SubmissionConfidential {
		report.Reporter = &model.Reporter{
			Name:  strings.TrimSpace(input.Name),
			Email: strings.TrimSpace(input.Email),
		}
	}

	if err := uc.repo.Report().Create(ctx, report); err != nil {
		return nil, storeErr(ctx, err, "report.create", "reports/"+report.ID.String(), report.TrackingCode)
	}

	if uc.notifier != nil {
		notified := report.Clone()
		async.Dispatch(ctx, func(ctx context.Context) error {
			if err := uc.notifier.NotifySubmission(ctx, notified); err != nil {
				logging.From(ctx).Warn("failed to notify submission",
					"tracking_code", notified.TrackingCode, "error", err.Error())
			}
			return nil
		})
	}

	return report, nil
}

// runAdvisory executes the three advisory calls: classification and
// summary concurrently, step suggestion after the severity is known.
func (uc *UseCases) runAdvisory(ctx context.Context, content string) (*model.Advisory, types.Severity, error) {
	var classification *interfaces.Classification
	var summary *interfaces.CaseSummary

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		result, err := uc.advisor.Classify(egCtx, content)
		if err != nil {
			return goerr.Wrap(err, "classification failed")
		}
		classification = result
		return nil
	})
	eg.Go(func() error {
		result, err := uc.advisor.Summarize(egCtx, content)
		if err != nil {
			return goerr.Wrap(err, "summarization failed")
		}
		summary = result
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, "", err
	}

	steps, err := uc.advisor.SuggestSteps(ctx, content, classification.Severity)
	if err != nil {
		return nil, "", goerr.Wrap(err, "step suggestion failed")
	}

	advisory := &model.Advisory{
		Summary:        summary.Summary,
		RiskAssessment: summary.RiskAssessment,
		SuggestedSteps: steps.Steps,
		Reasoning:      classification.Reasoning,
	}
	return advisory, classification.Severity, nil
}

func (uc *UseCases) newTrackingCode(ctx context.Context) (types.TrackingCode, error) {
	for i := 0; i < trackingCodeRetries; i++ {
		code, err := types.NewTrackingCode()
		if err != nil {
			return "", err
		}

		_, err = uc.repo.Report().GetByTrackingCode(ctx, code)
		if errors.Is(err, interfaces.ErrNotFound) {
			return code, nil
		}
		if err != nil {
			return "", goerr.Wrap(err, "failed to check tracking code uniqueness")
		}
		// collision, try again
	}
	return "", goerr.New("failed to generate a unique tracking code")
}
