package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Jrokz2315/SecureID/internal/core/domain"
	"github.com/Jrokz2315/SecureID/internal/core/ports"
	"github.com/Jrokz2315/SecureID/internal/log"
)

// Presentation implements the ports.PresentationService interface over the
// session store and the external verifier gateway.
type Presentation struct {
	repo      ports.SessionRepository
	verifier  ports.VerifierGateway
	rules     domain.ClaimRules
	serverURL string
}

// NewPresentation creates a new Presentation service. serverURL is the public
// base URL of this server the verifier will post callbacks to.
func NewPresentation(repo ports.SessionRepository, verifier ports.VerifierGateway, rules domain.ClaimRules, serverURL string) *Presentation {
	return &Presentation{
		repo:      repo,
		verifier:  verifier,
		rules:     rules,
		serverURL: serverURL,
	}
}

// Create issues a presentation request with a fresh request id as correlation
// state. The WAITING session is stored only after the verifier accepted the
// request, so a failed submission leaves no trace.
func (s *Presentation) Create(ctx context.Context) (*domain.PresentationOffer, error) {
	requestID := uuid.NewString()

	offer, err := s.verifier.CreatePresentationRequest(ctx, requestID, s.serverURL+"/api/verifier/callback")
	if err != nil {
		log.Error(ctx, "creating presentation request", "err", err)
		return nil, fmt.Errorf("%w: %v", ErrRequestCreationFailed, err)
	}

	session := domain.PresentationSession{
		Status:    domain.PresentationStatusWaiting,
		Timestamp: time.Now(),
	}
	if err := s.repo.SetPresentation(ctx, requestID, session); err != nil {
		return nil, fmt.Errorf("storing presentation session: %w", err)
	}

	offer.RequestID = requestID
	log.Info(ctx, "presentation request created", "requestID", requestID)
	return offer, nil
}

// HandleCallback advances the session the callback points at. Callbacks whose
// state does not match a known session are dropped: they are stale or forged.
// Each callback overwrites the entry with the new status and a fresh
// timestamp.
func (s *Presentation) HandleCallback(ctx context.Context, callback domain.VerifierCallback) error {
	if callback.State == "" {
		log.Warn(ctx, "presentation callback without state")
		return nil
	}
	if _, err := s.repo.GetPresentation(ctx, callback.State); err != nil {
		log.Warn(ctx, "presentation callback for unknown state", "state", callback.State, "status", callback.RequestStatus)
		return nil
	}

	session := domain.PresentationSession{Timestamp: time.Now()}
	switch callback.RequestStatus {
	case domain.CallbackStatusVerified:
		claims := callback.FirstClaims()
		session.Status = domain.PresentationStatusVerified
		session.Name = s.rules.ExtractName(claims)
		session.Job = s.rules.ExtractJob(claims)
	case domain.CallbackStatusRetrieved:
		session.Status = domain.PresentationStatusScanned
	default:
		// pass the verifier's status through verbatim so failure and expiry
		// statuses surface without being enumerated here
		session.Status = callback.RequestStatus
	}

	if err := s.repo.SetPresentation(ctx, callback.State, session); err != nil {
		return fmt.Errorf("storing presentation session: %w", err)
	}
	log.Info(ctx, "presentation session updated", "requestID", callback.State, "status", session.Status)
	return nil
}

// Status returns the current session for a request id. Unknown ids report the
// NOT_FOUND sentinel; the protocol does not distinguish never created from
// expired out of memory.
func (s *Presentation) Status(ctx context.Context, requestID string) domain.PresentationSession {
	session, err := s.repo.GetPresentation(ctx, requestID)
	if err != nil {
		return domain.PresentationSession{Status: domain.PresentationStatusNotFound}
	}
	return session
}
