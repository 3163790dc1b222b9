package ports

import (
	"context"

	"github.com/Jrokz2315/SecureID/internal/core/domain"
)

// SessionRepository defines the interface for the verification session store.
// Writes overwrite unconditionally: starting a new verification for a subject
// invalidates any pending one for the same key.
type SessionRepository interface {
	SetCode(ctx context.Context, phone string, code domain.VerificationCode) error
	GetCode(ctx context.Context, phone string) (domain.VerificationCode, error)
	DeleteCode(ctx context.Context, phone string) error

	SetPresentation(ctx context.Context, requestID string, session domain.PresentationSession) error
	GetPresentation(ctx context.Context, requestID string) (domain.PresentationSession, error)
}
