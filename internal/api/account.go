package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Jrokz2315/SecureID/internal/core/domain"
	"github.com/Jrokz2315/SecureID/internal/core/services"
	"github.com/Jrokz2315/SecureID/internal/log"
)

type accountRequest struct {
	Email string `json:"email"`
}

// LookupUser lists the subject's registered phone methods, masked for the
// agent UI. Upstream lookup failures keep the directory's status code.
func (s *Server) LookupUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	email := r.URL.Query().Get("email")
	if email == "" {
		writeError(w, http.StatusBadRequest, "Email is required")
		return
	}

	phones, err := s.account.LookupPhones(ctx, email)
	if err != nil {
		log.Error(ctx, "user lookup", "err", err, "email", email)
		writeError(w, lookupStatus(err), "User lookup failed")
		return
	}
	if len(phones) == 0 {
		writeError(w, http.StatusNotFound, "No phone numbers found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"found": true, "phones": phones})
}

// ResetPassword sets a fresh temporary password on the subject's account and
// returns it to the agent.
func (s *Server) ResetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req accountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		writeError(w, http.StatusBadRequest, "Email is required")
		return
	}

	password, err := s.account.ResetPassword(ctx, req.Email)
	if err != nil {
		log.Error(ctx, "password reset", "err", err, "email", req.Email)
		writeJSON(w, http.StatusInternalServerError, failureResponse{Error: "Password reset failed"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "password": password})
}

// ResetMFA revokes the subject's sessions and removes their re-registrable
// authentication methods.
func (s *Server) ResetMFA(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req accountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Email == "" {
		writeError(w, http.StatusBadRequest, "Email is required")
		return
	}

	result, err := s.account.ResetMFA(ctx, req.Email)
	if err != nil {
		log.Error(ctx, "mfa reset", "err", err, "email", req.Email)
		writeJSON(w, http.StatusInternalServerError, failureResponse{Error: "MFA reset failed"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": mfaResetMessage(result),
	})
}

func mfaResetMessage(result domain.MFAResetResult) string {
	return fmt.Sprintf(
		"Sessions successfully revoked. %d old methods deleted. (Note: Default/System methods are retained by Azure policy but user will be prompted to login).",
		result.MethodsDeleted)
}

func lookupStatus(err error) int {
	var lookupErr *services.LookupError
	if errors.As(err, &lookupErr) && lookupErr.Status != 0 {
		return lookupErr.Status
	}
	return http.StatusInternalServerError
}
