package api

import (
	"encoding/json"
	"net/http"

	"github.com/Jrokz2315/SecureID/internal/core/domain"
	"github.com/Jrokz2315/SecureID/internal/log"
)

// CreatePresentationRequest issues a new credential presentation request and
// returns the request id together with the url and QR payload the agent
// shows to the user.
func (s *Server) CreatePresentationRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	offer, err := s.presentation.Create(ctx)
	if err != nil {
		log.Error(ctx, "creating presentation request", "err", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate request")
		return
	}
	writeJSON(w, http.StatusOK, offer)
}

// VerifierCallback ingests the out of band status posts from the credential
// verifier. The verifier needs a 2xx to not retry, so internal failures are
// logged and swallowed; the response is an acknowledgment either way.
func (s *Server) VerifierCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var callback domain.VerifierCallback
	if err := json.NewDecoder(r.Body).Decode(&callback); err != nil {
		log.Error(ctx, "decoding verifier callback", "err", err)
		w.WriteHeader(http.StatusOK)
		return
	}
	if err := s.presentation.HandleCallback(ctx, callback); err != nil {
		log.Error(ctx, "handling verifier callback", "err", err, "state", callback.State)
	}
	w.WriteHeader(http.StatusOK)
}

// PresentationStatus reports the current state of a presentation request.
// Polling never mutates the session; unknown ids answer with the NOT_FOUND
// sentinel status.
func (s *Server) PresentationStatus(w http.ResponseWriter, r *http.Request) {
	requestID := r.URL.Query().Get("requestId")
	writeJSON(w, http.StatusOK, s.presentation.Status(r.Context(), requestID))
}
