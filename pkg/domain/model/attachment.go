package model

import (
	"time"

	"github.com/intakebox/intakebox/pkg/domain/types"
)

// UploaderRef identifies who uploaded an attachment. Reporter uploads use
// the synthetic "reporter" ID with no identity behind it.
type UploaderRef struct {
	ID   types.IdentityID
	Name string
}

// ReporterUploader is the synthetic uploader reference for reporter-side uploads
func ReporterUploader() UploaderRef {
	return UploaderRef{ID: "reporter", Name: "Reporter"}
}

// Attachment is the metadata record of one uploaded file. The binary
// itself lives in object storage; only the reference is stored here.
type Attachment struct {
	ID         types.AttachmentID
	ReportID   types.ReportID
	URL        string
	FileName   string
	FileType   string
	UploadedAt time.Time
	UploadedBy UploaderRef
}
