package ports

import (
	"context"

	"github.com/Jrokz2315/SecureID/internal/core/domain"
)

// DirectoryGateway is the identity directory the relay performs lookups and
// privileged account mutations against.
type DirectoryGateway interface {
	UserByEmail(ctx context.Context, email string) (*domain.DirectoryUser, error)
	PhoneMethods(ctx context.Context, email string) ([]domain.PhoneMethod, error)
	UpdatePassword(ctx context.Context, userID, password string) error
	RevokeSessions(ctx context.Context, userID string) error
	AuthenticationMethods(ctx context.Context, userID string) ([]domain.AuthenticationMethod, error)
	DeleteAuthenticationMethod(ctx context.Context, userID, methodID string) error
}
