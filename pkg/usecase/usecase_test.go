package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/intakebox/intakebox/pkg/domain/interfaces"
	"github.com/intakebox/intakebox/pkg/domain/model"
	"github.com/intakebox/intakebox/pkg/domain/model/auth"
	"github.com/intakebox/intakebox/pkg/domain/types"
	"github.com/intakebox/intakebox/pkg/repository/memory"
	"github.com/intakebox/intakebox/pkg/usecase"
)

// stubAdvisor returns canned advisory output, or fails on demand
type stubAdvisor struct {
	classification *interfaces.Classification
	summary        *interfaces.CaseSummary
	steps          *interfaces.StepSuggestion

	classifyErr error
	summaryErr  error
	stepsErr    error
}

func newStubAdvisor() *stubAdvisor {
	return &stubAdvisor{
		classification: &interfaces.Classification{
			Severity:  types.SeverityHigh,
			Reasoning: "credible physical-safety hazard",
		},
		summary: &interfaces.CaseSummary{
			Summary:        "Scaffolding on site B is reported as unsafe.",
			RiskAssessment: "Worker injury and regulatory exposure.",
		},
		steps: &interfaces.StepSuggestion{
			Steps:     []string{"Interview foreman"},
			Reasoning: "Start with the person responsible for the site.",
		},
	}
}

func (s *stubAdvisor) Classify(ctx context.Context, content string) (*interfaces.Classification, error) {
	if s.classifyErr != nil {
		return nil, s.classifyErr
	}
	return s.classification, nil
}

func (s *stubAdvisor) Summarize(ctx context.Context, content string) (*interfaces.CaseSummary, error) {
	if s.summaryErr != nil {
		return nil, s.summaryErr
	}
	return s.summary, nil
}

func (s *stubAdvisor) SuggestSteps(ctx context.Context, content string, severity types.Severity) (*interfaces.StepSuggestion, error) {
	if s.stepsErr != nil {
		return nil, s.stepsErr
	}
	return s.steps, nil
}

type testEnv struct {
	repo    interfaces.Repository
	uc      *usecase.UseCases
	advisor *stubAdvisor
	officer *model.Identity
	admin   *model.Identity
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	repo := memory.New()
	advisor := newStubAdvisor()
	uc := usecase.New(repo,
		usecase.WithAdvisor(advisor),
		usecase.WithBaseURL("https://intakebox.example.com"),
	)

	officer := &model.Identity{ID: "officer-1", Name: "Dana Officer", Email: "dana@example.com", Role: types.RoleOfficer}
	admin := &model.Identity{ID: "admin-1", Name: "Alex Admin", Email: "alex@example.com", Role: types.RoleAdmin}
	ctx := context.Background()
	gt.NoError(t, repo.Identity().Put(ctx, officer)).Required()
	gt.NoError(t, repo.Identity().Put(ctx, admin)).Required()

	return &testEnv{repo: repo, uc: uc, advisor: advisor, officer: officer, admin: admin}
}

func (e *testEnv) officerCtx() context.Context {
	return auth.WithIdentity(context.Background(), e.officer)
}

func (e *testEnv) adminCtx() context.Context {
	return auth.WithIdentity(context.Background(), e.admin)
}

func (e *testEnv) submit(t *testing.T) *model.Report {
	t.Helper()

	report, err := e.uc.SubmitReport(context.Background(), &usecase.SubmitInput{
		Title:          "Unsafe scaffolding on site B",
		Content:        "The scaffolding on the north face of site B sways visibly in wind and is missing cross-braces.",
		Category:       "Safety",
		SubmissionType: "anonymous",
	})
	gt.NoError(t, err).Required()
	return report
}
