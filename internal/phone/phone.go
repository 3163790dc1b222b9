// Package phone canonicalizes phone numbers to an E.164 like form so every
// spelling of the same number maps to the same verification session key.
package phone

import (
	"regexp"
	"strings"
)

var (
	extMarker  = regexp.MustCompile(`(?i)[x#]|ext`)
	notDialing = regexp.MustCompile(`[^0-9+]`)
)

// Normalize returns the canonical form of a raw phone number: digits with a
// leading +, with any extension suffix (x, #, ext) stripped. Ten digit
// numbers are assumed to be NANP and get a +1 country code.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}
	base := raw
	if loc := extMarker.FindStringIndex(raw); loc != nil {
		base = raw[:loc[0]]
	}
	clean := notDialing.ReplaceAllString(base, "")
	switch {
	case len(clean) == 10:
		return "+1" + clean
	case len(clean) == 11 && strings.HasPrefix(clean, "1"):
		return "+" + clean
	case !strings.HasPrefix(clean, "+"):
		return "+" + clean
	default:
		return clean
	}
}

// Mask hides all but the last four digits of a phone number for display in
// agent facing listings.
func Mask(number string) string {
	if len(number) <= 4 {
		return number
	}
	return "..." + number[len(number)-4:]
}
