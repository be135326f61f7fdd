package model

import (
	"time"

	"github.com/intakebox/intakebox/pkg/domain/types"
)

// SenderInfo identifies the officer who sent a message. Reporter-sent
// messages carry no SenderInfo (they are pseudonymous).
type SenderInfo struct {
	IdentityID types.IdentityID
	Name       string
	AvatarURL  string
}

// Message is one entry in a case's communication channel. Messages are
// append-only and totally ordered by the server-assigned SentAt.
type Message struct {
	ID         types.MessageID
	ReportID   types.ReportID
	Sender     types.Sender
	Content    string
	SenderInfo *SenderInfo
	SentAt     time.Time
}

// Clone returns a deep copy of the message
func (m *Message) Clone() *Message {
	copied := *m
	if m.SenderInfo != nil {
		info := *m.SenderInfo
		copied.SenderInfo = &info
	}
	return &copied
}
