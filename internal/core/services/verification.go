package services

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/Jrokz2315/SecureID/internal/core/domain"
	"github.com/Jrokz2315/SecureID/internal/core/ports"
	"github.com/Jrokz2315/SecureID/internal/log"
	"github.com/Jrokz2315/SecureID/internal/phone"
)

// DefaultCodeTTL is the validity window of a dispatched code
const DefaultCodeTTL = 5 * time.Minute

// PhoneVerification implements the ports.PhoneVerificationService interface.
// One pending code per normalized phone number; dispatching again replaces it.
type PhoneVerification struct {
	mx         sync.Mutex
	repo       ports.SessionRepository
	dispatcher ports.CodeDispatcher
	serverURL  string
	codeTTL    time.Duration
}

// NewPhoneVerification creates a new PhoneVerification service. serverURL is
// the public base URL of this server, used to build the voice instruction
// callback. A codeTTL of zero falls back to DefaultCodeTTL.
func NewPhoneVerification(repo ports.SessionRepository, dispatcher ports.CodeDispatcher, serverURL string, codeTTL time.Duration) *PhoneVerification {
	if codeTTL == 0 {
		codeTTL = DefaultCodeTTL
	}
	return &PhoneVerification{
		repo:       repo,
		dispatcher: dispatcher,
		serverURL:  serverURL,
		codeTTL:    codeTTL,
	}
}

// Dispatch stores a fresh code under the subject's normalized phone number
// and delivers it over the requested channel. The entry is stored before the
// delivery attempt and is not rolled back when delivery fails: the agent can
// still read the code to the user over their own line if the transport is
// down.
func (s *PhoneVerification) Dispatch(ctx context.Context, rawPhone, code string, channel domain.VerificationChannel) (domain.DispatchResult, error) {
	target := phone.Normalize(rawPhone)
	if target == "" || target == "+" {
		return domain.DispatchResult{}, ErrInvalidPhone
	}

	s.mx.Lock()
	err := s.repo.SetCode(ctx, target, domain.VerificationCode{Code: code, CreatedAt: time.Now()})
	s.mx.Unlock()
	if err != nil {
		return domain.DispatchResult{}, fmt.Errorf("storing code: %w", err)
	}
	log.Info(ctx, "verification code dispatched", "target", target, "channel", channel)

	switch channel {
	case domain.ChannelVoice:
		err = s.dispatcher.PlaceCall(ctx, target, s.voiceInstructionsURL(code))
	default:
		err = s.dispatcher.SendText(ctx, target, code)
	}
	if err != nil {
		return domain.DispatchResult{}, fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	return domain.DispatchResult{Target: target, Code: code}, nil
}

// Validate checks a submitted code for the subject's phone number. The code
// is single use: the entry is deleted before success or expiry is reported.
// An incorrect code leaves the entry intact so the user can retry within the
// validity window.
func (s *PhoneVerification) Validate(ctx context.Context, rawPhone, submitted string) error {
	target := phone.Normalize(rawPhone)

	s.mx.Lock()
	defer s.mx.Unlock()

	pending, err := s.repo.GetCode(ctx, target)
	if err != nil {
		return ErrNoCodeFound
	}
	if time.Since(pending.CreatedAt) > s.codeTTL {
		if err := s.repo.DeleteCode(ctx, target); err != nil {
			log.Error(ctx, "deleting expired code", "err", err, "target", target)
		}
		return ErrCodeExpired
	}
	// string comparison on purpose: codes are fixed width digit strings
	if pending.Code != submitted {
		return ErrIncorrectCode
	}
	if err := s.repo.DeleteCode(ctx, target); err != nil {
		return fmt.Errorf("consuming code: %w", err)
	}
	log.Info(ctx, "verification code accepted", "target", target)
	return nil
}

func (s *PhoneVerification) voiceInstructionsURL(code string) string {
	return fmt.Sprintf("%s/api/callbacks/twilio?code=%s", s.serverURL, url.QueryEscape(code))
}
