package services_tests

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/Jrokz2315/SecureID/internal/cache"
	"github.com/Jrokz2315/SecureID/internal/core/domain"
	"github.com/Jrokz2315/SecureID/internal/core/ports"
	"github.com/Jrokz2315/SecureID/internal/redis"
	"github.com/Jrokz2315/SecureID/internal/repositories"
)

const testServerURL = "https://helpdesk.example.com"

func newTestRepo(t *testing.T) ports.SessionRepository {
	t.Helper()
	instance := miniredis.RunT(t)
	client, err := redis.Open(context.Background(), "redis://"+instance.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return repositories.NewSessionCached(cache.NewRedisCache(client))
}

type sentMessage struct {
	to   string
	code string
	url  string
}

type stubDispatcher struct {
	err   error
	texts []sentMessage
	calls []sentMessage
}

func (d *stubDispatcher) SendText(_ context.Context, to, code string) error {
	if d.err != nil {
		return d.err
	}
	d.texts = append(d.texts, sentMessage{to: to, code: code})
	return nil
}

func (d *stubDispatcher) PlaceCall(_ context.Context, to, instructionsURL string) error {
	if d.err != nil {
		return d.err
	}
	d.calls = append(d.calls, sentMessage{to: to, url: instructionsURL})
	return nil
}

type stubVerifier struct {
	err             error
	offer           domain.PresentationOffer
	lastState       string
	lastCallbackURL string
}

func (v *stubVerifier) CreatePresentationRequest(_ context.Context, state, callbackURL string) (*domain.PresentationOffer, error) {
	v.lastState = state
	v.lastCallbackURL = callbackURL
	if v.err != nil {
		return nil, v.err
	}
	offer := v.offer
	return &offer, nil
}

func expiredAt(age time.Duration) time.Time {
	return time.Now().Add(-age)
}
