package employee

import (
	"time"
)

// DefaultCredential is the shared password every freshly created employee
// starts with. It must be replaced on first clock-in.
const DefaultCredential = "123456"

// Personal password policy bounds (inclusive).
const (
	MinPasswordLength = 6
	MaxPasswordLength = 12
)

type Employee struct {
	ID                    string
	FullName              string
	PasswordHash          string
	UsesDefaultCredential bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// ValidatePersonalPassword checks a candidate replacement for the default
// credential against the policy. The kiosk UI validates before submitting,
// so a violation here is a caller contract breach.
func ValidatePersonalPassword(plaintext string) error {
	if len(plaintext) < MinPasswordLength || len(plaintext) > MaxPasswordLength {
		return ErrPasswordLength
	}
	if plaintext == DefaultCredential {
		return ErrPasswordIsDefault
	}
	return nil
}
