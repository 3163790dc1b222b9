package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/twilio/twilio-go/twiml"

	"github.com/Jrokz2315/SecureID/internal/core/domain"
	"github.com/Jrokz2315/SecureID/internal/core/services"
	"github.com/Jrokz2315/SecureID/internal/log"
	"github.com/Jrokz2315/SecureID/pkg/rand"
)

const dispatchCodeLength = 6

type dispatchRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Code        string `json:"code"`
}

type dispatchResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
}

// SendText dispatches a verification code to the subject's phone as a text
// message. The code is echoed back: the caller is an authenticated internal
// agent, never the verification subject.
func (s *Server) SendText(w http.ResponseWriter, r *http.Request) {
	s.dispatch(w, r, domain.ChannelText)
}

// PlaceCall dispatches a verification code to the subject's phone as an
// automated voice call.
func (s *Server) PlaceCall(w http.ResponseWriter, r *http.Request) {
	s.dispatch(w, r, domain.ChannelVoice)
}

func (s *Server) dispatch(w http.ResponseWriter, r *http.Request, channel domain.VerificationChannel) {
	ctx := r.Context()
	var req dispatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Code == "" {
		code, err := rand.Digits(dispatchCodeLength)
		if err != nil {
			log.Error(ctx, "generating code", "err", err)
			writeError(w, http.StatusInternalServerError, "could not generate code")
			return
		}
		req.Code = code
	}

	result, err := s.verification.Dispatch(ctx, req.PhoneNumber, req.Code, channel)
	switch {
	case errors.Is(err, services.ErrInvalidPhone):
		writeError(w, http.StatusBadRequest, "invalid phone number")
	case err != nil:
		log.Error(ctx, "dispatching code", "err", err, "channel", channel)
		writeError(w, http.StatusInternalServerError, err.Error())
	default:
		writeJSON(w, http.StatusOK, dispatchResponse{Success: true, Code: result.Code})
	}
}

// VerifyCode validates a submitted code. The failure reasons are distinct so
// the client can offer a resend for missing or expired codes and a retry for
// mistyped ones.
func (s *Server) VerifyCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req dispatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	err := s.verification.Validate(ctx, req.PhoneNumber, req.Code)
	switch {
	case errors.Is(err, services.ErrNoCodeFound):
		writeFailure(w, http.StatusBadRequest, "No code found")
	case errors.Is(err, services.ErrCodeExpired):
		writeFailure(w, http.StatusGone, "Code expired")
	case errors.Is(err, services.ErrIncorrectCode):
		writeFailure(w, http.StatusUnauthorized, "Incorrect code")
	case err != nil:
		log.Error(ctx, "validating code", "err", err)
		writeFailure(w, http.StatusInternalServerError, "Verification failed")
	default:
		writeJSON(w, http.StatusOK, map[string]bool{"success": true})
	}
}

// TwilioInstructions renders the voice script Twilio fetches mid call: the
// code is read digit by digit, twice, with pauses in between.
func (s *Server) TwilioInstructions(w http.ResponseWriter, r *http.Request) {
	digits := strings.Join(strings.Split(r.URL.Query().Get("code"), ""), " ")

	doc, err := twiml.Voice([]twiml.Element{
		&twiml.VoiceSay{Voice: "alice", Message: "Hello. Your code is."},
		&twiml.VoicePause{Length: "1"},
		&twiml.VoiceSay{Voice: "alice", Message: digits},
		&twiml.VoicePause{Length: "1"},
		&twiml.VoiceSay{Voice: "alice", Message: "Again."},
		&twiml.VoiceSay{Voice: "alice", Message: digits},
		&twiml.VoiceHangup{},
	})
	if err != nil {
		log.Error(r.Context(), "rendering voice instructions", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(doc))
}
