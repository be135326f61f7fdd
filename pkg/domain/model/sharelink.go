package model

import (
	"time"

	"github.com/intakebox/intakebox/pkg/domain/types"
)

// AllowedShareTTLDays are the only valid lifetimes for a share link
var AllowedShareTTLDays = []int{1, 7, 30}

// ValidShareTTL checks whether days is an allowed share-link lifetime
func ValidShareTTL(days int) bool {
	for _, d := range AllowedShareTTLDays {
		if d == days {
			return true
		}
	}
	return false
}

// ShareLink grants read-only access to a redacted view of one case until
// ExpiresAt. There is no revocation; expiry is the only invalidation.
type ShareLink struct {
	Token     types.ShareToken
	ReportID  types.ReportID
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the link is past its expiry at the given time
func (s *ShareLink) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
