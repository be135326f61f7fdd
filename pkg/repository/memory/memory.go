package memory

import (
	"github.com/intakebox/intakebox/pkg/domain/interfaces"
)

// ErrNotFound is returned when a requested record does not exist
var ErrNotFound = interfaces.ErrNotFound

// Memory is an in-memory Repository for development and tests
type Memory struct {
	report     *reportRepository
	message    *messageRepository
	attachment *attachmentRepository
	audit      *auditRepository
	shareLink  *shareLinkRepository
	identity   *identityRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		report:     newReportRepository(),
		message:    newMessageRepository(),
		attachment: newAttachmentRepository(),
		audit:      newAuditRepository(),
		shareLink:  newShareLinkRepository(),
		identity:   newIdentityRepository(),
	}
}

func (m *Memory) Report() interfaces.ReportRepository {
	return m.report
}

func (m *Memory) Message() interfaces.MessageRepository {
	return m.message
}

func (m *Memory) Attachment() interfaces.AttachmentRepository {
	return m.attachment
}

func (m *Memory) Audit() interfaces.AuditRepository {
	return m.audit
}

func (m *Memory) ShareLink() interfaces.ShareLinkRepository {
	return m.shareLink
}

func (m *Memory) Identity() interfaces.IdentityRepository {
	return m.identity
}

func (m *Memory) Close() error {
	return nil
}
