package types

import (
	"crypto/rand"
	"regexp"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// TrackingCode is the public, human-shareable identifier of a report.
// Form: IB-<4 base36 chars>-<6 base36 chars>, uppercase.
type TrackingCode string

const trackingAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var trackingCodePattern = regexp.MustCompile(`^IB-[0-9A-Z]{4}-[0-9A-Z]{6}$`)

func randomBase36(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", goerr.Wrap(err, "failed to read random bytes")
	}
	out := make([]byte, n)
	for i, b := range buf {
		out[i] = trackingAlphabet[int(b)%len(trackingAlphabet)]
	}
	return string(out), nil
}

// NewTrackingCode generates a new random tracking code
func NewTrackingCode() (TrackingCode, error) {
	head, err := randomBase36(4)
	if err != nil {
		return "", err
	}
	tail, err := randomBase36(6)
	if err != nil {
		return "", err
	}
	return TrackingCode("IB-" + head + "-" + tail), nil
}

// NormalizeTrackingCode uppercases and trims a user-provided code
func NormalizeTrackingCode(s string) TrackingCode {
	return TrackingCode(strings.ToUpper(strings.TrimSpace(s)))
}

// Validate checks the tracking code format
func (c TrackingCode) Validate() error {
	if !trackingCodePattern.MatchString(string(c)) {
		return goerr.New("invalid tracking code format", goerr.V("code", c))
	}
	return nil
}

// String returns the string representation of the tracking code
func (c TrackingCode) String() string {
	return string(c)
}
