package domain

import "strings"

// ClaimRules is an ordered first-match-wins table of claim aliases per
// logical field. Issuers are not consistent about claim naming, so the alias
// chains are data: new issuer shapes are added here, not in protocol logic.
type ClaimRules struct {
	FirstName   []string
	LastName    []string
	DisplayName []string
	JobTitle    []string

	NameFallback string
	JobFallback  string
}

// DefaultClaimRules returns the alias table covering the standard OIDC and
// Verified ID claim spellings.
func DefaultClaimRules() ClaimRules {
	return ClaimRules{
		FirstName:    []string{"firstName", "given_name", "givenName"},
		LastName:     []string{"lastName", "family_name", "familyName", "surname"},
		DisplayName:  []string{"displayName", "name"},
		JobTitle:     []string{"jobTitle", "job", "title"},
		NameFallback: "Verified User (No Name Claim)",
		JobFallback:  "Employee",
	}
}

// ExtractName resolves a display name from claims. A combined first/last name
// wins over a display name alias; the fallback is used when nothing matched.
func (r ClaimRules) ExtractName(claims map[string]any) string {
	first := firstMatch(claims, r.FirstName)
	last := firstMatch(claims, r.LastName)

	name := firstMatch(claims, r.DisplayName)
	if first != "" || last != "" {
		name = strings.TrimSpace(first + " " + last)
	}
	if name == "" {
		name = r.NameFallback
	}
	return name
}

// ExtractJob resolves a job title from claims, defaulting when absent.
func (r ClaimRules) ExtractJob(claims map[string]any) string {
	if job := firstMatch(claims, r.JobTitle); job != "" {
		return job
	}
	return r.JobFallback
}

func firstMatch(claims map[string]any, aliases []string) string {
	for _, alias := range aliases {
		if v, ok := claims[alias].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
