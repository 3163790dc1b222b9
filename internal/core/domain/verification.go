package domain

import "time"

// VerificationChannel is the transport used to deliver a phone code
type VerificationChannel string

// Supported delivery channels
const (
	ChannelText  VerificationChannel = "text"
	ChannelVoice VerificationChannel = "voice"
)

// VerificationCode is a pending one time code for a normalized phone number.
// A code is single use: it is removed from the session store before a
// successful validation or an expiry failure is reported.
type VerificationCode struct {
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"createdAt"`
}

// DispatchResult is what a dispatch operation reports back to the agent.
// The code is echoed on purpose: the caller is an authenticated internal
// operator, never the verification subject.
type DispatchResult struct {
	Target string `json:"target"`
	Code   string `json:"code"`
}
