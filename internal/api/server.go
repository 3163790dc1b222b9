package api

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Jrokz2315/SecureID/internal/config"
	"github.com/Jrokz2315/SecureID/internal/core/ports"
	"github.com/Jrokz2315/SecureID/internal/health"
	"github.com/Jrokz2315/SecureID/internal/log"
)

// Server wires the verification services into the http boundary
type Server struct {
	cfg          *config.Configuration
	verification ports.PhoneVerificationService
	presentation ports.PresentationService
	account      ports.AccountService
	health       *health.Status
}

// NewServer creates a new api Server
func NewServer(cfg *config.Configuration, verification ports.PhoneVerificationService, presentation ports.PresentationService, account ports.AccountService, h *health.Status) *Server {
	return &Server{
		cfg:          cfg,
		verification: verification,
		presentation: presentation,
		account:      account,
		health:       h,
	}
}

// Routes mounts every endpoint on mux. ctx carries the server logger, which
// LogContext copies into each request context. Agent facing endpoints sit
// behind basic auth; the delivery and verifier callbacks plus health stay
// open so the external services can reach them.
func (s *Server) Routes(ctx context.Context, mux *chi.Mux) {
	mux.Use(middleware.RequestID)
	mux.Use(LogContext(ctx))
	mux.Use(log.ChiMiddleware())
	mux.Use(cors.AllowAll().Handler)

	// robots and monitors
	mux.Get("/api/health", s.Health)
	mux.Post("/api/callbacks/twilio", s.TwilioInstructions)
	mux.With(VerifierAPIKey(s.cfg.VerifiedID.CallbackAPIKey)).
		Post("/api/verifier/callback", s.VerifierCallback)

	// authenticated agents
	mux.Group(func(r chi.Router) {
		r.Use(BasicAuth(s.cfg.HTTPBasicAuth))

		r.Get("/api/lookup-user", s.LookupUser)
		r.Post("/api/send-sms", s.SendText)
		r.Post("/api/call-user", s.PlaceCall)
		r.Post("/api/verify-code", s.VerifyCode)

		r.Get("/api/verifier/presentation-request", s.CreatePresentationRequest)
		r.Get("/api/verifier/status", s.PresentationStatus)

		r.Post("/api/admin/reset-password", s.ResetPassword)
		r.Post("/api/admin/reset-mfa", s.ResetMFA)
	})
}
