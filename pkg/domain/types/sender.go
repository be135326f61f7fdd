package types

// Sender identifies which side of the communication channel sent a message
type Sender string

const (
	SenderReporter Sender = "reporter"
	SenderOfficer  Sender = "officer"
)

// IsValid checks if the sender is valid
func (s Sender) IsValid() bool {
	return s == SenderReporter || s == SenderOfficer
}

// String returns the string representation of the sender
func (s Sender) String() string {
	return string(s)
}
