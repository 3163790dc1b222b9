package repositories

import (
	"context"
	"errors"

	"github.com/Jrokz2315/SecureID/internal/cache"
	"github.com/Jrokz2315/SecureID/internal/core/domain"
	"github.com/Jrokz2315/SecureID/internal/core/ports"
)

// Sentinel errors returned when a session entry is absent
var (
	// ErrCodeNotFound is returned when no pending code exists for a phone number
	ErrCodeNotFound = errors.New("verification code not found")
	// ErrPresentationNotFound is returned when no session exists for a request id
	ErrPresentationNotFound = errors.New("presentation session not found")
)

const (
	codeKeyPrefix         = "secureid:code:"
	presentationKeyPrefix = "secureid:presentation:"
)

type cached struct {
	cache cache.Cache
}

// NewSessionCached returns a session repository backed by the given cache.
// Entries are written with no TTL: a pending code's validity window is a
// wall clock check against CreatedAt, and presentation sessions keep
// returning their terminal state for as long as the process lives.
func NewSessionCached(c cache.Cache) ports.SessionRepository {
	return &cached{cache: c}
}

// SetCode stores a pending code for a phone number, replacing any prior one
func (c *cached) SetCode(ctx context.Context, phone string, code domain.VerificationCode) error {
	return c.cache.Set(ctx, codeKeyPrefix+phone, code, cache.ForEver)
}

// GetCode returns the pending code for a phone number
func (c *cached) GetCode(ctx context.Context, phone string) (domain.VerificationCode, error) {
	var code domain.VerificationCode
	if found := c.cache.Get(ctx, codeKeyPrefix+phone, &code); !found {
		return code, ErrCodeNotFound
	}
	return code, nil
}

// DeleteCode consumes the pending code for a phone number
func (c *cached) DeleteCode(ctx context.Context, phone string) error {
	return c.cache.Delete(ctx, codeKeyPrefix+phone)
}

// SetPresentation stores the session state for a presentation request
func (c *cached) SetPresentation(ctx context.Context, requestID string, session domain.PresentationSession) error {
	return c.cache.Set(ctx, presentationKeyPrefix+requestID, session, cache.ForEver)
}

// GetPresentation returns the session state for a presentation request
func (c *cached) GetPresentation(ctx context.Context, requestID string) (domain.PresentationSession, error) {
	var session domain.PresentationSession
	if found := c.cache.Get(ctx, presentationKeyPrefix+requestID, &session); !found {
		return session, ErrPresentationNotFound
	}
	return session, nil
}
