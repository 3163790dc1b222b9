package services_tests

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jrokz2315/SecureID/internal/core/domain"
	"github.com/Jrokz2315/SecureID/internal/core/ports"
	"github.com/Jrokz2315/SecureID/internal/core/services"
)

func newPresentationService(repo ports.SessionRepository, verifier *stubVerifier) *services.Presentation {
	return services.NewPresentation(repo, verifier, domain.DefaultClaimRules(), testServerURL)
}

func TestCreatePresentationRequest(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	verifier := &stubVerifier{offer: domain.PresentationOffer{
		URL:    "openid-vc://?request_uri=https://verifier.example.com/r/1",
		QRCode: "data:image/png;base64,abc",
	}}
	s := newPresentationService(repo, verifier)

	offer, err := s.Create(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, offer.RequestID)
	assert.Equal(t, offer.RequestID, verifier.lastState)
	assert.Equal(t, testServerURL+"/api/verifier/callback", verifier.lastCallbackURL)
	assert.Equal(t, "openid-vc://?request_uri=https://verifier.example.com/r/1", offer.URL)
	assert.Equal(t, "data:image/png;base64,abc", offer.QRCode)

	session := s.Status(ctx, offer.RequestID)
	assert.Equal(t, domain.PresentationStatusWaiting, session.Status)
	assert.False(t, session.Timestamp.IsZero())
}

func TestCreatePresentationRequestVerifierFailure(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	verifier := &stubVerifier{err: errors.New("verifier rejected the request")}
	s := newPresentationService(repo, verifier)

	_, err := s.Create(ctx)
	assert.ErrorIs(t, err, services.ErrRequestCreationFailed)

	// no session was stored for the attempted state
	session := s.Status(ctx, verifier.lastState)
	assert.Equal(t, domain.PresentationStatusNotFound, session.Status)
}

func TestHandleCallbackRetrieved(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	verifier := &stubVerifier{}
	s := newPresentationService(repo, verifier)

	offer, err := s.Create(ctx)
	require.NoError(t, err)

	err = s.HandleCallback(ctx, domain.VerifierCallback{
		State:         offer.RequestID,
		RequestStatus: domain.CallbackStatusRetrieved,
	})
	require.NoError(t, err)

	session := s.Status(ctx, offer.RequestID)
	assert.Equal(t, domain.PresentationStatusScanned, session.Status)
}

func TestHandleCallbackVerified(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	s := newPresentationService(repo, &stubVerifier{})

	offer, err := s.Create(ctx)
	require.NoError(t, err)

	err = s.HandleCallback(ctx, domain.VerifierCallback{
		State:         offer.RequestID,
		RequestStatus: domain.CallbackStatusVerified,
		VerifiedCredentialsData: []domain.VerifiedCredential{{
			Claims: map[string]any{
				"givenName":  "Ada",
				"familyName": "Lovelace",
				"jobTitle":   "Countess of Computing",
			},
		}},
	})
	require.NoError(t, err)

	session := s.Status(ctx, offer.RequestID)
	assert.Equal(t, domain.PresentationStatusVerified, session.Status)
	assert.Equal(t, "Ada Lovelace", session.Name)
	assert.Equal(t, "Countess of Computing", session.Job)
}

func TestHandleCallbackVerifiedClaimFallbacks(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	s := newPresentationService(repo, &stubVerifier{})

	type testConfig struct {
		name         string
		claims       map[string]any
		expectedName string
		expectedJob  string
	}
	for _, tc := range []testConfig{
		{
			name:         "display name alias used when name parts are absent",
			claims:       map[string]any{"displayName": "Grace Hopper"},
			expectedName: "Grace Hopper",
			expectedJob:  "Employee",
		},
		{
			name:         "no recognizable claims fall back to placeholders",
			claims:       map[string]any{"upn": "ghopper@contoso.com"},
			expectedName: "Verified User (No Name Claim)",
			expectedJob:  "Employee",
		},
		{
			name:         "snake case aliases",
			claims:       map[string]any{"given_name": "Alan", "family_name": "Turing", "job": "Cryptanalyst"},
			expectedName: "Alan Turing",
			expectedJob:  "Cryptanalyst",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			offer, err := s.Create(ctx)
			require.NoError(t, err)

			err = s.HandleCallback(ctx, domain.VerifierCallback{
				State:                   offer.RequestID,
				RequestStatus:           domain.CallbackStatusVerified,
				VerifiedCredentialsData: []domain.VerifiedCredential{{Claims: tc.claims}},
			})
			require.NoError(t, err)

			session := s.Status(ctx, offer.RequestID)
			assert.Equal(t, domain.PresentationStatusVerified, session.Status)
			assert.Equal(t, tc.expectedName, session.Name)
			assert.Equal(t, tc.expectedJob, session.Job)
		})
	}
}

func TestHandleCallbackUnknownStatusPassedThrough(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	s := newPresentationService(repo, &stubVerifier{})

	offer, err := s.Create(ctx)
	require.NoError(t, err)

	err = s.HandleCallback(ctx, domain.VerifierCallback{
		State:         offer.RequestID,
		RequestStatus: "presentation_error",
	})
	require.NoError(t, err)

	session := s.Status(ctx, offer.RequestID)
	assert.Equal(t, "presentation_error", session.Status)
}

func TestHandleCallbackUnknownStateIgnored(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)
	s := newPresentationService(repo, &stubVerifier{})

	err := s.HandleCallback(ctx, domain.VerifierCallback{
		State:         "never-issued",
		RequestStatus: domain.CallbackStatusVerified,
	})
	require.NoError(t, err)

	session := s.Status(ctx, "never-issued")
	assert.Equal(t, domain.PresentationStatusNotFound, session.Status)
}

func TestHandleCallbackEmptyStateIgnored(t *testing.T) {
	repo := newTestRepo(t)
	s := newPresentationService(repo, &stubVerifier{})

	err := s.HandleCallback(context.Background(), domain.VerifierCallback{
		RequestStatus: domain.CallbackStatusVerified,
	})
	assert.NoError(t, err)
}

func TestStatusUnknownRequest(t *testing.T) {
	repo := newTestRepo(t)
	s := newPresentationService(repo, &stubVerifier{})

	session := s.Status(context.Background(), "does-not-exist")
	assert.Equal(t, domain.PresentationStatusNotFound, session.Status)
}
