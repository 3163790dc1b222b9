package services

import (
	"context"
	"errors"
	"fmt"

	httpclient "github.com/Jrokz2315/SecureID/internal/http"

	"github.com/Jrokz2315/SecureID/internal/core/domain"
	"github.com/Jrokz2315/SecureID/internal/core/ports"
	"github.com/Jrokz2315/SecureID/internal/log"
	"github.com/Jrokz2315/SecureID/internal/phone"
	"github.com/Jrokz2315/SecureID/pkg/rand"
)

const temporaryPasswordLength = 14

// Account implements the ports.AccountService interface against the identity
// directory gateway.
type Account struct {
	directory ports.DirectoryGateway
}

// NewAccount creates a new Account service
func NewAccount(directory ports.DirectoryGateway) *Account {
	return &Account{directory: directory}
}

// LookupPhones lists a user's registered phone methods with the numbers
// masked to their last four digits.
func (s *Account) LookupPhones(ctx context.Context, email string) ([]domain.PhoneMethod, error) {
	methods, err := s.directory.PhoneMethods(ctx, email)
	if err != nil {
		return nil, lookupError(err)
	}
	for i := range methods {
		methods[i].Masked = phone.Mask(methods[i].Number)
	}
	return methods, nil
}

// ResetPassword generates a fresh temporary password, sets it on the user's
// account with force-change on next sign in and returns it to the agent.
func (s *Account) ResetPassword(ctx context.Context, email string) (string, error) {
	user, err := s.directory.UserByEmail(ctx, email)
	if err != nil {
		return "", lookupError(err)
	}
	password, err := rand.Password(temporaryPasswordLength)
	if err != nil {
		return "", fmt.Errorf("generating password: %w", err)
	}
	if err := s.directory.UpdatePassword(ctx, user.ID, password); err != nil {
		return "", fmt.Errorf("updating password: %w", err)
	}
	log.Info(ctx, "password reset", "user", user.ID)
	return password, nil
}

// ResetMFA revokes the user's sign in sessions, then deletes every
// authentication method except password and email ones. Per method deletion
// failures are tolerated: the directory refuses to delete default methods
// through the API.
func (s *Account) ResetMFA(ctx context.Context, email string) (domain.MFAResetResult, error) {
	var result domain.MFAResetResult

	user, err := s.directory.UserByEmail(ctx, email)
	if err != nil {
		return result, lookupError(err)
	}
	if err := s.directory.RevokeSessions(ctx, user.ID); err != nil {
		return result, fmt.Errorf("revoking sessions: %w", err)
	}
	result.SessionsRevoked = true

	methods, err := s.directory.AuthenticationMethods(ctx, user.ID)
	if err != nil {
		return result, fmt.Errorf("listing authentication methods: %w", err)
	}
	for _, m := range methods {
		if m.Retained() {
			continue
		}
		if err := s.directory.DeleteAuthenticationMethod(ctx, user.ID, m.ID); err != nil {
			log.Warn(ctx, "could not delete authentication method", "user", user.ID, "method", m.ID, "err", err)
			continue
		}
		result.MethodsDeleted++
	}
	log.Info(ctx, "mfa reset", "user", user.ID, "deleted", result.MethodsDeleted)
	return result, nil
}

// lookupError keeps the upstream status code when the directory answered
// with an error status.
func lookupError(err error) error {
	var statusErr *httpclient.StatusError
	if errors.As(err, &statusErr) {
		return &LookupError{Status: statusErr.Status, Err: err}
	}
	return &LookupError{Err: err}
}
