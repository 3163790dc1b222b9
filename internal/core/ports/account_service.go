package ports

import (
	"context"

	"github.com/Jrokz2315/SecureID/internal/core/domain"
)

// AccountService performs the privileged account recovery actions an agent
// runs after the subject's identity has been verified.
type AccountService interface {
	// LookupPhones lists a user's registered phone methods, masked for display.
	LookupPhones(ctx context.Context, email string) ([]domain.PhoneMethod, error)
	// ResetPassword sets a fresh generated password with force-change on next
	// sign in and returns it to the agent.
	ResetPassword(ctx context.Context, email string) (string, error)
	// ResetMFA revokes the user's sessions and deletes every non retained
	// authentication method, tolerating per method failures.
	ResetMFA(ctx context.Context, email string) (domain.MFAResetResult, error)
}
