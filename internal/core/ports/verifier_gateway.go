package ports

import (
	"context"

	"github.com/Jrokz2315/SecureID/internal/core/domain"
)

// VerifierGateway submits presentation requests to the external credential
// verifier service. The state parameter is opaque correlation data the
// verifier echoes back in its callback.
type VerifierGateway interface {
	CreatePresentationRequest(ctx context.Context, state, callbackURL string) (*domain.PresentationOffer, error)
}
