package domain

import "time"

// Presentation session statuses. Any other status reported by the verifier is
// stored verbatim, so failure and expiry statuses pass through without the
// relay having to enumerate them.
const (
	PresentationStatusWaiting  = "WAITING"
	PresentationStatusScanned  = "SCANNED"
	PresentationStatusVerified = "VERIFIED"
	PresentationStatusNotFound = "NOT_FOUND"
)

// Verifier reported request statuses that map to internal ones
const (
	CallbackStatusRetrieved = "request_retrieved"
	CallbackStatusVerified  = "presentation_verified"
)

// PresentationSession tracks the state of one credential presentation
// request. Transitions are callback driven only; polling never mutates it.
type PresentationSession struct {
	Status    string    `json:"status"`
	Name      string    `json:"name,omitempty"`
	Job       string    `json:"job,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// PresentationOffer is the user facing part of a created presentation
// request: the deep link url and the QR payload rendered by the agent UI.
type PresentationOffer struct {
	RequestID string `json:"requestId"`
	URL       string `json:"url"`
	QRCode    string `json:"qrCode"`
}

// VerifierCallback is the payload the credential verifier posts back to the
// relay once the wallet interacts with a presentation request.
type VerifierCallback struct {
	State                   string               `json:"state"`
	RequestStatus           string               `json:"requestStatus"`
	VerifiedCredentialsData []VerifiedCredential `json:"verifiedCredentialsData"`
}

// VerifiedCredential carries the claims extracted from one presented
// credential.
type VerifiedCredential struct {
	Claims map[string]any `json:"claims"`
}

// FirstClaims returns the claims of the first presented credential, or an
// empty map when the verifier sent none.
func (c VerifierCallback) FirstClaims() map[string]any {
	if len(c.VerifiedCredentialsData) == 0 || c.VerifiedCredentialsData[0].Claims == nil {
		return map[string]any{}
	}
	return c.VerifiedCredentialsData[0].Claims
}
