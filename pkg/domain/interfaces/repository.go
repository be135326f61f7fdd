package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Report() ReportRepository
	Message() MessageRepository
	Attachment() AttachmentRepository
	Audit() AuditRepository
	ShareLink() ShareLinkRepository
	Identity() IdentityRepository

	Close() error
}
