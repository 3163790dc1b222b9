package gateways

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/oauth2/microsoft"

	"github.com/Jrokz2315/SecureID/internal/config"
	"github.com/Jrokz2315/SecureID/internal/core/domain"
	"github.com/Jrokz2315/SecureID/internal/core/ports"
	httpclient "github.com/Jrokz2315/SecureID/internal/http"
)

// defaultVerifiedIDScope is the Verified ID request service principal
const defaultVerifiedIDScope = "3db474b9-6a0c-4840-96ac-1fceb342124f/.default"

// VerifiedIDGateway submits presentation requests to the Microsoft Entra
// Verified ID request service.
type VerifiedIDGateway struct {
	conn *httpclient.Client
	cfg  config.VerifiedID
}

// NewVerifiedIDGateway creates a Verified ID gateway. Requests are
// authenticated with client credentials and retried on transient failures.
func NewVerifiedIDGateway(ctx context.Context, cfg config.VerifiedID, graph config.Graph) ports.VerifierGateway {
	scope := cfg.Scope
	if scope == "" {
		scope = defaultVerifiedIDScope
	}
	creds := &clientcredentials.Config{
		ClientID:     graph.ClientID,
		ClientSecret: graph.ClientSecret,
		TokenURL:     microsoft.AzureADEndpoint(graph.TenantID).TokenURL,
		Scopes:       []string{scope},
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Transport: httpclient.NewRetryableTransport()})
	return &VerifiedIDGateway{
		conn: httpclient.NewClient(creds.Client(ctx)),
		cfg:  cfg,
	}
}

type presentationRequest struct {
	IncludeQRCode        bool                  `json:"includeQRCode"`
	Callback             callbackConfig        `json:"callback"`
	Authority            string                `json:"authority"`
	Registration         registrationConfig    `json:"registration"`
	RequestedCredentials []requestedCredential `json:"requestedCredentials"`
}

type callbackConfig struct {
	URL     string            `json:"url"`
	State   string            `json:"state"`
	Headers map[string]string `json:"headers"`
}

type registrationConfig struct {
	ClientName string `json:"clientName"`
}

type requestedCredential struct {
	Type            string   `json:"type"`
	AcceptedIssuers []string `json:"acceptedIssuers"`
}

type presentationReply struct {
	URL    string `json:"url"`
	QRCode string `json:"qrCode"`
}

// CreatePresentationRequest submits a presentation request carrying state as
// opaque correlation data and returns the user facing url and QR payload.
func (g *VerifiedIDGateway) CreatePresentationRequest(ctx context.Context, state, callbackURL string) (*domain.PresentationOffer, error) {
	reqBody, err := json.Marshal(presentationRequest{
		IncludeQRCode: true,
		Callback: callbackConfig{
			URL:     callbackURL,
			State:   state,
			Headers: map[string]string{"api-key": g.cfg.CallbackAPIKey},
		},
		Authority:    g.cfg.Authority,
		Registration: registrationConfig{ClientName: g.cfg.ClientName},
		RequestedCredentials: []requestedCredential{
			{
				Type:            g.cfg.CredentialType,
				AcceptedIssuers: []string{g.cfg.Authority},
			},
		},
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := g.conn.Post(ctx, g.cfg.Endpoint, reqBody)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var reply presentationReply
	if err := json.Unmarshal(resp, &reply); err != nil {
		return nil, errors.WithStack(err)
	}
	return &domain.PresentationOffer{URL: reply.URL, QRCode: reply.QRCode}, nil
}
