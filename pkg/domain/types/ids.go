package types

import (
	"crypto/rand"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// ReportID is the store-assigned internal identifier of a report.
// It is never exposed publicly for confidential cases.
type ReportID string

// NewReportID generates a new report ID
func NewReportID() ReportID {
	return ReportID(uuid.New().String())
}

// String returns the string representation of ReportID
func (r ReportID) String() string {
	return string(r)
}

// MessageID identifies a message within a case channel
type MessageID string

// NewMessageID generates a new message ID. UUIDv7 keeps document IDs
// roughly time-ordered in the store.
func NewMessageID() MessageID {
	return MessageID(uuid.Must(uuid.NewV7()).String())
}

// String returns the string representation of MessageID
func (m MessageID) String() string {
	return string(m)
}

// AuditID identifies an audit log entry
type AuditID string

// NewAuditID generates a new audit entry ID
func NewAuditID() AuditID {
	return AuditID(uuid.Must(uuid.NewV7()).String())
}

// String returns the string representation of AuditID
func (a AuditID) String() string {
	return string(a)
}

// AttachmentID identifies an attachment metadata record
type AttachmentID string

// NewAttachmentID generates a new attachment ID
func NewAttachmentID() AttachmentID {
	return AttachmentID(uuid.New().String())
}

// String returns the string representation of AttachmentID
func (a AttachmentID) String() string {
	return string(a)
}

// IdentityID identifies an officer or admin account
type IdentityID string

// String returns the string representation of IdentityID
func (i IdentityID) String() string {
	return string(i)
}

// ShareToken is an opaque capability token granting time-boxed read-only
// access to one case.
type ShareToken string

const (
	shareTokenAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	shareTokenLength   = 20
)

// NewShareToken generates a random token. 20 alphanumeric characters give
// well over 2^100 of keyspace, making guessing infeasible.
func NewShareToken() (ShareToken, error) {
	buf := make([]byte, shareTokenLength)
	if _, err := rand.Read(buf); err != nil {
		return "", goerr.Wrap(err, "failed to read random bytes")
	}
	out := make([]byte, shareTokenLength)
	for i, b := range buf {
		out[i] = shareTokenAlphabet[int(b)%len(shareTokenAlphabet)]
	}
	return ShareToken(out), nil
}

// Validate checks the minimum token length
func (t ShareToken) Validate() error {
	if len(t) < 16 {
		return goerr.New("share token too short", goerr.V("length", len(t)))
	}
	return nil
}

// String returns the string representation of ShareToken
func (t ShareToken) String() string {
	return string(t)
}
