package ports

import (
	"context"

	"github.com/Jrokz2315/SecureID/internal/core/domain"
)

// PresentationService owns the credential presentation lifecycle: request
// issuance, callback driven status transitions and status polling.
type PresentationService interface {
	// Create issues a new presentation request against the verifier service
	// and stores a WAITING session only after the submission succeeds.
	Create(ctx context.Context) (*domain.PresentationOffer, error)
	// HandleCallback advances the session the callback state points at.
	// Callbacks for unknown states are ignored.
	HandleCallback(ctx context.Context, callback domain.VerifierCallback) error
	// Status is a pure read of the session, returning a NOT_FOUND sentinel
	// when the request id is unknown.
	Status(ctx context.Context, requestID string) domain.PresentationSession
}
