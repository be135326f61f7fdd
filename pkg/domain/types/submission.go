package types

import "github.com/m-mizutani/goerr/v2"

// SubmissionType distinguishes anonymous from confidential reports
type SubmissionType string

const (
	SubmissionAnonymous    SubmissionType = "anonymous"
	SubmissionConfidential SubmissionType = "confidential"
)

// IsValid checks if the submission type is valid
func (s SubmissionType) IsValid() bool {
	switch s {
	case SubmissionAnonymous, SubmissionConfidential:
		return true
	default:
		return false
	}
}

// String returns the string representation of the submission type
func (s SubmissionType) String() string {
	return string(s)
}

// ParseSubmissionType parses a string into a SubmissionType
func ParseSubmissionType(s string) (SubmissionType, error) {
	st := SubmissionType(s)
	if !st.IsValid() {
		return "", goerr.New("invalid submission type", goerr.V("submission_type", s))
	}
	return st, nil
}
