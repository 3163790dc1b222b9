package gateways

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/Jrokz2315/SecureID/internal/config"
	"github.com/Jrokz2315/SecureID/internal/core/ports"
	"github.com/Jrokz2315/SecureID/internal/log"
)

// TwilioDispatcher delivers verification codes over Twilio, either as a text
// message or as an automated voice call.
type TwilioDispatcher struct {
	client *twilio.RestClient
	from   string
}

// NewTwilioDispatcher creates a Twilio backed code dispatcher
func NewTwilioDispatcher(cfg config.Twilio) ports.CodeDispatcher {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})
	return &TwilioDispatcher{client: client, from: cfg.FromNumber}
}

// SendText sends the code to the target number in a text message
func (d *TwilioDispatcher) SendText(ctx context.Context, to, code string) error {
	params := &openapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(d.from)
	params.SetBody(fmt.Sprintf("Your verification code is: %s", code))

	if _, err := d.client.Api.CreateMessage(params); err != nil {
		log.Error(ctx, "sending text message", "err", err, "to", to)
		return errors.WithStack(err)
	}
	return nil
}

// PlaceCall places a call to the target number. Twilio fetches
// instructionsURL mid call and speaks the returned script to the user.
func (d *TwilioDispatcher) PlaceCall(ctx context.Context, to, instructionsURL string) error {
	params := &openapi.CreateCallParams{}
	params.SetTo(to)
	params.SetFrom(d.from)
	params.SetUrl(instructionsURL)

	if _, err := d.client.Api.CreateCall(params); err != nil {
		log.Error(ctx, "placing call", "err", err, "to", to)
		return errors.WithStack(err)
	}
	return nil
}
