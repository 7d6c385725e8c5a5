package valueobjects

import "fmt"

// VerificationStatus tracks where a mobile number is in its verification
// lifecycle.
type VerificationStatus string

const (
	StatusPending  VerificationStatus = "pending"
	StatusVerified VerificationStatus = "verified"
	StatusExpired  VerificationStatus = "expired"
	// StatusFailed is reserved. No code path sets it today; it exists so
	// the stored enum does not need a migration when a failure transition
	// is introduced.
	StatusFailed VerificationStatus = "failed"
)

var validVerificationStatuses = map[VerificationStatus]bool{
	StatusPending:  true,
	StatusVerified: true,
	StatusExpired:  true,
	StatusFailed:   true,
}

func NewVerificationStatus(value string) (VerificationStatus, error) {
	s := VerificationStatus(value)
	if !s.IsValid() {
		return "", fmt.Errorf("invalid verification status: %s", value)
	}
	return s, nil
}

func (s VerificationStatus) String() string {
	return string(s)
}

func (s VerificationStatus) IsValid() bool {
	return validVerificationStatuses[s]
}
