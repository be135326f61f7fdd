package interfaces

import (
	"context"

	"github.com/intakebox/intakebox/pkg/domain/types"
)

// Classification is the severity verdict of the advisory service
type Classification struct {
	Severity  types.Severity
	Reasoning string
}

// CaseSummary is the summarization output of the advisory service
type CaseSummary struct {
	Summary        string
	RiskAssessment string
}

// StepSuggestion is the investigation-step output of the advisory service
type StepSuggestion struct {
	Steps     []string
	Reasoning string
}

// Advisor is the external AI advisory capability invoked at submission.
// Its prompting and model behavior are opaque to this application.
type Advisor interface {
	Classify(ctx context.Context, content string) (*Classification, error)
	Summarize(ctx context.Context, content string) (*CaseSummary, error)
	SuggestSteps(ctx context.Context, content string, severity types.Severity) (*StepSuggestion, error)
}
