package services

import (
	"errors"
	"fmt"
)

// Verification failure taxonomy. Dispatch and validation failures are
// distinct and user visible so the agent UI can offer resend vs retry.
var (
	// ErrInvalidPhone is returned when a phone number normalizes to nothing
	ErrInvalidPhone = errors.New("invalid phone number")
	// ErrDeliveryFailed is returned when the delivery transport call fails
	ErrDeliveryFailed = errors.New("code delivery failed")
	// ErrNoCodeFound is returned when no code was dispatched or it was already consumed
	ErrNoCodeFound = errors.New("no code found")
	// ErrCodeExpired is returned when the code is older than the validity window
	ErrCodeExpired = errors.New("code expired")
	// ErrIncorrectCode is returned when the submitted code does not match
	ErrIncorrectCode = errors.New("incorrect code")
	// ErrRequestCreationFailed is returned when the verifier service rejects or is unreachable
	ErrRequestCreationFailed = errors.New("presentation request creation failed")
)

// LookupError signals a directory lookup failure, keeping the upstream status
// code when the directory answered at all.
type LookupError struct {
	Status int
	Err    error
}

// Error satisfies the error interface for LookupError
func (e *LookupError) Error() string {
	return fmt.Sprintf("directory lookup failed (status %d): %v", e.Status, e.Err)
}

// Unwrap exposes the wrapped cause
func (e *LookupError) Unwrap() error {
	return e.Err
}
