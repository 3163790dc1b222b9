package gateways

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/oauth2/microsoft"

	"github.com/Jrokz2315/SecureID/internal/config"
	"github.com/Jrokz2315/SecureID/internal/core/domain"
	"github.com/Jrokz2315/SecureID/internal/core/ports"
	httpclient "github.com/Jrokz2315/SecureID/internal/http"
)

const (
	graphBaseURL = "https://graph.microsoft.com/v1.0"
	graphScope   = "https://graph.microsoft.com/.default"
)

// GraphGateway is the Microsoft Graph client behind the directory port.
type GraphGateway struct {
	conn    *httpclient.Client
	baseURL string
}

// NewGraphGateway creates a Graph gateway authenticated with client
// credentials. Transient failures are retried at the transport level.
func NewGraphGateway(ctx context.Context, cfg config.Graph) ports.DirectoryGateway {
	creds := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     microsoft.AzureADEndpoint(cfg.TenantID).TokenURL,
		Scopes:       []string{graphScope},
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, &http.Client{Transport: httpclient.NewRetryableTransport()})
	return &GraphGateway{
		conn:    httpclient.NewClient(creds.Client(ctx)),
		baseURL: graphBaseURL,
	}
}

// UserByEmail resolves a directory user by principal name or mail
func (g *GraphGateway) UserByEmail(ctx context.Context, email string) (*domain.DirectoryUser, error) {
	resp, err := g.conn.Get(ctx, fmt.Sprintf("%s/users/%s", g.baseURL, url.PathEscape(email)))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	var user domain.DirectoryUser
	if err := json.Unmarshal(resp, &user); err != nil {
		return nil, errors.WithStack(err)
	}
	return &user, nil
}

// PhoneMethods lists the user's registered authentication phone numbers
func (g *GraphGateway) PhoneMethods(ctx context.Context, email string) ([]domain.PhoneMethod, error) {
	resp, err := g.conn.Get(ctx, fmt.Sprintf("%s/users/%s/authentication/phoneMethods", g.baseURL, url.PathEscape(email)))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	var reply struct {
		Value []struct {
			ID          string `json:"id"`
			PhoneType   string `json:"phoneType"`
			PhoneNumber string `json:"phoneNumber"`
		} `json:"value"`
	}
	if err := json.Unmarshal(resp, &reply); err != nil {
		return nil, errors.WithStack(err)
	}
	methods := make([]domain.PhoneMethod, len(reply.Value))
	for i, v := range reply.Value {
		methods[i] = domain.PhoneMethod{ID: v.ID, Type: v.PhoneType, Number: v.PhoneNumber}
	}
	return methods, nil
}

// UpdatePassword sets a new password on the user's account, enabling it and
// forcing a change on next sign in
func (g *GraphGateway) UpdatePassword(ctx context.Context, userID, password string) error {
	body, err := json.Marshal(map[string]any{
		"passwordProfile": map[string]any{
			"forceChangePasswordNextSignIn": true,
			"password":                      password,
		},
		"accountEnabled": true,
	})
	if err != nil {
		return errors.WithStack(err)
	}
	if _, err := g.conn.Patch(ctx, fmt.Sprintf("%s/users/%s", g.baseURL, url.PathEscape(userID)), body); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// RevokeSessions invalidates all of the user's refresh and session tokens
func (g *GraphGateway) RevokeSessions(ctx context.Context, userID string) error {
	if _, err := g.conn.Post(ctx, fmt.Sprintf("%s/users/%s/revokeSignInSessions", g.baseURL, url.PathEscape(userID)), []byte("{}")); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

// AuthenticationMethods lists the user's registered authentication methods
func (g *GraphGateway) AuthenticationMethods(ctx context.Context, userID string) ([]domain.AuthenticationMethod, error) {
	resp, err := g.conn.Get(ctx, fmt.Sprintf("%s/users/%s/authentication/methods", g.baseURL, url.PathEscape(userID)))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	var reply struct {
		Value []domain.AuthenticationMethod `json:"value"`
	}
	if err := json.Unmarshal(resp, &reply); err != nil {
		return nil, errors.WithStack(err)
	}
	return reply.Value, nil
}

// DeleteAuthenticationMethod removes one authentication method from the user
func (g *GraphGateway) DeleteAuthenticationMethod(ctx context.Context, userID, methodID string) error {
	if _, err := g.conn.Delete(ctx, fmt.Sprintf("%s/users/%s/authentication/methods/%s", g.baseURL, url.PathEscape(userID), url.PathEscape(methodID))); err != nil {
		return errors.WithStack(err)
	}
	return nil
}
