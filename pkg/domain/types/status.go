package types

import (
	"regexp"

	"github.com/m-mizutani/goerr/v2"
)

// StatusID identifies a status definition in the catalog
type StatusID string

// Reserved status IDs. These are reachable only through dedicated
// operations (submission sets New, CloseCase sets Resolved) and are never
// valid targets for a generic status change.
const (
	StatusNew        StatusID = "new"
	StatusInProgress StatusID = "in-progress"
	StatusResolved   StatusID = "resolved"
	StatusCaseClosed StatusID = "case-closed"
)

var statusIDPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Validate checks if the StatusID is well-formed
func (s StatusID) Validate() error {
	if s == "" {
		return goerr.New("status ID cannot be empty")
	}
	if !statusIDPattern.MatchString(string(s)) {
		return goerr.New("status ID must be lowercase alphanumeric with hyphens", goerr.V("id", s))
	}
	return nil
}

// Reserved reports whether the status may not be selected manually
func (s StatusID) Reserved() bool {
	switch s {
	case StatusNew, StatusResolved, StatusCaseClosed:
		return true
	default:
		return false
	}
}

// String returns the string representation of StatusID
func (s StatusID) String() string {
	return string(s)
}
