package ports

import "context"

// CodeDispatcher is the delivery transport that carries a code to a phone
// number, either as a text message or as an automated voice call.
type CodeDispatcher interface {
	// SendText sends the code in a text message to the target number.
	SendText(ctx context.Context, to, code string) error
	// PlaceCall places a call to the target number. The transport fetches
	// instructionsURL mid call to obtain the spoken script.
	PlaceCall(ctx context.Context, to, instructionsURL string) error
}
