package model

import (
	"time"

	"github.com/intakebox/intakebox/pkg/domain/types"
)

// Reporter holds the contact details of a confidential submission.
// Anonymous submissions carry no Reporter at all. The masq tags keep the
// fields out of every log sink.
type Reporter struct {
	Name  string `masq:"secret"`
	Email string `masq:"secret"`
}

// Advisory holds the AI-derived fields of a report. Written once at
// submission, read-only afterward.
type Advisory struct {
	Summary        string
	RiskAssessment string
	SuggestedSteps []string
	Reasoning      string
}

// Report represents one submitted whistleblower case
type Report struct {
	ID             types.ReportID
	TrackingCode   types.TrackingCode
	Title          string
	Content        string
	Category       types.Category
	SubmissionType types.SubmissionType
	Severity       types.Severity
	Status         types.StatusID
	AssigneeIDs    []types.IdentityID
	Reporter       *Reporter
	Advisory       *Advisory
	SubmittedAt    time.Time
	UpdatedAt      time.Time
}

// IsResolved reports whether the case has reached the terminal status
func (r *Report) IsResolved() bool {
	return r.Status == types.StatusResolved
}

// Assigned reports whether any assignee is set
func (r *Report) Assigned() bool {
	return len(r.AssigneeIDs) > 0
}

// Clone returns a deep copy of the report
func (r *Report) Clone() *Report {
	copied := *r
	copied.AssigneeIDs = make([]types.IdentityID, len(r.AssigneeIDs))
	copy(copied.AssigneeIDs, r.AssigneeIDs)
	if r.Reporter != nil {
		reporter := *r.Reporter
		copied.Reporter = &reporter
	}
	if r.Advisory != nil {
		advisory := *r.Advisory
		advisory.SuggestedSteps = make([]string, len(r.Advisory.SuggestedSteps))
		copy(advisory.SuggestedSteps, r.Advisory.SuggestedSteps)
		copied.Advisory = &advisory
	}
	return &copied
}

// Redacted returns a copy with all reporter contact data removed. This is
// the only form ever handed to share-link viewers, regardless of the
// submission type.
func (r *Report) Redacted() *Report {
	copied := r.Clone()
	copied.Reporter = nil
	return copied
}
