package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/intakebox/intakebox/pkg/domain/interfaces"
	"github.com/intakebox/intakebox/pkg/domain/types"
)

// Service generates advisory output for newly submitted reports via an
// LLM. Each call is a single structured-output session; no conversation
// state is kept between calls.
type Service struct {
	llmClient gollem.LLMClient
}

var _ interfaces.Advisor = &Service{}

// New creates a new advisory service
func New(llmClient gollem.LLMClient) *Service {
	return &Service{llmClient: llmClient}
}

func (s *Service) generateJSON(ctx context.Context, schema *gollem.Parameter, prompt string, out any) error {
	session, err := s.llmClient.NewSession(ctx,
		gollem.WithSessionContentType(gollem.ContentTypeJSON),
		gollem.WithSessionResponseSchema(schema),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to create advisory session")
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(prompt))
	if err != nil {
		return goerr.Wrap(err, "failed to generate advisory content")
	}
	if len(resp.Texts) == 0 {
		return goerr.New("advisory generation returned empty result")
	}

	if err := json.Unmarshal([]byte(resp.Texts[0]), out); err != nil {
		return goerr.Wrap(err, "failed to parse advisory JSON",
			goerr.V("response", resp.Texts[0]),
		)
	}
	return nil
}

type classificationResult struct {
	Severity  string `json:"severity"`
	Reasoning string `json:"reasoning"`
}

// Classify determines a severity rating for the report content
func (s *Service) Classify(ctx context.Context, content string) (*interfaces.Classification, error) {
	schema := &gollem.Parameter{
		Title:       "Classification",
		Description: "Severity classification of a whistleblower report",
		Type:        gollem.TypeObject,
		Properties: map[string]*gollem.Parameter{
			"severity": {
				Type:        gollem.TypeString,
				Description: "One of: Low, Medium, High, Critical",
				Enum:        []string{"Low", "Medium", "High", "Critical"},
				Required:    true,
			},
			"reasoning": {
				Type:        gollem.TypeString,
				Description: "Short plain-text rationale for the chosen severity.",
				Required:    true,
			},
		},
	}

	prompt := fmt.Sprintf(`You are a compliance triage assistant. Classify the severity of the
following whistleblower report. Consider potential harm, legal exposure,
urgency, and the number of people affected.

severity MUST be exactly one of: Low, Medium, High, Critical.

Report:
%s`, content)

	var result classificationResult
	if err := s.generateJSON(ctx, schema, prompt, &result); err != nil {
		return nil, err
	}

	severity, err := types.ParseSeverity(result.Severity)
	if err != nil {
		return nil, goerr.Wrap(err, "advisory returned unknown severity",
			goerr.V("severity", result.Severity),
		)
	}

	return &interfaces.Classification{
		Severity:  severity,
		Reasoning: strings.TrimSpace(result.Reasoning),
	}, nil
}

type summaryResult struct {
	Summary        string `json:"summary"`
	RiskAssessment string `json:"risk_assessment"`
}

// Summarize produces a case summary and risk assessment for officers
func (s *Service) Summarize(ctx context.Context, content string) (*interfaces.CaseSummary, error) {
	schema := &gollem.Parameter{
		Title:       "CaseSummary",
		Description: "Summary and risk assessment of a whistleblower report",
		Type:        gollem.TypeObject,
		Properties: map[string]*gollem.Parameter{
			"summary": {
				Type:        gollem.TypeString,
				Description: "Neutral 2-4 sentence summary of the allegation. Plain text, no markdown.",
				Required:    true,
			},
			"risk_assessment": {
				Type:        gollem.TypeString,
				Description: "Assessment of organizational risk if the allegation is true. Plain text.",
				Required:    true,
			},
		},
	}

	prompt := fmt.Sprintf(`You are a compliance triage assistant. Summarize the following
whistleblower report for case officers. Stay neutral: describe what is
alleged, do not judge whether it is true.

Report:
%s`, content)

	var result summaryResult
	if err := s.generateJSON(ctx, schema, prompt, &result); err != nil {
		return nil, err
	}

	return &interfaces.CaseSummary{
		Summary:        strings.TrimSpace(result.Summary),
		RiskAssessment: strings.TrimSpace(result.RiskAssessment),
	}, nil
}

type stepsResult struct {
	Steps     []string `json:"steps"`
	Reasoning string   `json:"reasoning"`
}

// SuggestSteps proposes initial investigation steps, informed by the
// severity Classify assigned.
func (s *Service) SuggestSteps(ctx context.Context, content string, severity types.Severity) (*interfaces.StepSuggestion, error) {
	schema := &gollem.Parameter{
		Title:       "StepSuggestion",
		Description: "Suggested investigation steps for a whistleblower case",
		Type:        gollem.TypeObject,
		Properties: map[string]*gollem.Parameter{
			"steps": {
				Type:        gollem.TypeArray,
				Description: "3-6 concrete first investigation steps, ordered.",
				Items: &gollem.Parameter{
					Type: gollem.TypeString,
				},
				Required: true,
			},
			"reasoning": {
				Type:        gollem.TypeString,
				Description: "Short rationale for the suggested order of steps.",
				Required:    true,
			},
		},
	}

	prompt := fmt.Sprintf(`You are a compliance triage assistant. Suggest concrete first
investigation steps for the following whistleblower report. The case has
been classified as severity %s; scale the urgency of your steps
accordingly. Preserve evidence before interviewing anyone implicated.

Report:
%s`, severity, content)

	var result stepsResult
	if err := s.generateJSON(ctx, schema, prompt, &result); err != nil {
		return nil, err
	}
	if len(result.Steps) == 0 {
		return nil, goerr.New("advisory returned no investigation steps")
	}

	return &interfaces.StepSuggestion{
		Steps:     result.Steps,
		Reasoning: strings.TrimSpace(result.Reasoning),
	}, nil
}
