package model

import (
	"time"

	"github.com/intakebox/intakebox/pkg/domain/types"
)

// ActorRef identifies who performed an audited action
type ActorRef struct {
	ID   types.IdentityID
	Name string
}

// AuditEntry is one immutable record in the audit trail. ReportID is empty
// for actions not tied to a case (e.g. user management). Entries are never
// edited or removed.
type AuditEntry struct {
	ID        types.AuditID
	ReportID  types.ReportID
	Actor     ActorRef
	Action    string
	Timestamp time.Time
}
