package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractName(t *testing.T) {
	rules := DefaultClaimRules()

	type testConfig struct {
		name     string
		claims   map[string]any
		expected string
	}
	for _, tc := range []testConfig{
		{
			name:     "first and last name",
			claims:   map[string]any{"givenName": "Ada", "familyName": "Lovelace"},
			expected: "Ada Lovelace",
		},
		{
			name:     "snake case aliases",
			claims:   map[string]any{"given_name": "Alan", "family_name": "Turing"},
			expected: "Alan Turing",
		},
		{
			name:     "surname alias",
			claims:   map[string]any{"firstName": "Grace", "surname": "Hopper"},
			expected: "Grace Hopper",
		},
		{
			name:     "first name only",
			claims:   map[string]any{"givenName": "Ada"},
			expected: "Ada",
		},
		{
			name:     "name parts win over display name",
			claims:   map[string]any{"givenName": "Ada", "familyName": "Lovelace", "displayName": "A. Lovelace"},
			expected: "Ada Lovelace",
		},
		{
			name:     "display name when no parts",
			claims:   map[string]any{"displayName": "Grace Hopper"},
			expected: "Grace Hopper",
		},
		{
			name:     "plain name alias",
			claims:   map[string]any{"name": "Grace Hopper"},
			expected: "Grace Hopper",
		},
		{
			name:     "no name claims",
			claims:   map[string]any{"upn": "ghopper@contoso.com"},
			expected: "Verified User (No Name Claim)",
		},
		{
			name:     "non string claims are skipped",
			claims:   map[string]any{"givenName": 42, "displayName": "Grace Hopper"},
			expected: "Grace Hopper",
		},
		{
			name:     "empty claims",
			claims:   map[string]any{},
			expected: "Verified User (No Name Claim)",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, rules.ExtractName(tc.claims))
		})
	}
}

func TestExtractJob(t *testing.T) {
	rules := DefaultClaimRules()

	assert.Equal(t, "Cryptanalyst", rules.ExtractJob(map[string]any{"jobTitle": "Cryptanalyst"}))
	assert.Equal(t, "Cryptanalyst", rules.ExtractJob(map[string]any{"job": "Cryptanalyst"}))
	assert.Equal(t, "Cryptanalyst", rules.ExtractJob(map[string]any{"title": "Cryptanalyst"}))
	assert.Equal(t, "Employee", rules.ExtractJob(map[string]any{}))
}
