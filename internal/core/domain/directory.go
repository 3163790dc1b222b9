package domain

import "strings"

// DirectoryUser is a user resolved from the identity directory
type DirectoryUser struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Mail        string `json:"mail"`
}

// PhoneMethod is a registered authentication phone number of a directory user
type PhoneMethod struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	Number string `json:"number"`
	Masked string `json:"masked"`
}

// AuthenticationMethod is one registered MFA method of a directory user.
// Type carries the directory's odata type discriminator.
type AuthenticationMethod struct {
	ID   string `json:"id"`
	Type string `json:"@odata.type"`
}

// Retained reports whether the method must be kept during an MFA reset.
// Password and email methods stay: they are the recovery path itself.
func (m AuthenticationMethod) Retained() bool {
	t := strings.ToLower(m.Type)
	return strings.Contains(t, "password") || strings.Contains(t, "email")
}

// MFAResetResult summarizes an MFA reset run
type MFAResetResult struct {
	SessionsRevoked bool `json:"sessionsRevoked"`
	MethodsDeleted  int  `json:"methodsDeleted"`
}
