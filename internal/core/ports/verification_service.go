package ports

import (
	"context"

	"github.com/Jrokz2315/SecureID/internal/core/domain"
)

// PhoneVerificationService owns the one time code lifecycle: dispatch over a
// delivery channel, validation, expiry and single use consumption.
type PhoneVerificationService interface {
	// Dispatch stores a fresh code for the subject's normalized phone number,
	// replacing any pending one, and delivers it over the requested channel.
	// The entry stays stored even if delivery fails.
	Dispatch(ctx context.Context, rawPhone, code string, channel domain.VerificationChannel) (domain.DispatchResult, error)
	// Validate checks a submitted code. Expiry is checked before equality, so
	// an expired but correct code still fails as expired.
	Validate(ctx context.Context, rawPhone, submitted string) error
}
