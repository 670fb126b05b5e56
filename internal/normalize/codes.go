package normalize

import (
	"regexp"
	"strings"
)

var (
	nonAlphanumeric = regexp.MustCompile(`[^A-Za-z0-9]`)
	nonLetter       = regexp.MustCompile(`[^A-Za-z]`)
)

// NormalizeCode trims whitespace, uppercases, and strips non-alphanumeric
// characters from an institution or collection code.
// Returns nil if the input is nil or the result is empty.
func NormalizeCode(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.ToUpper(nonAlphanumeric.ReplaceAllString(*v, ""))
	if s == "" {
		return nil
	}
	return &s
}

// NormalizeCountryCode reduces the input to an uppercase ISO 3166-1 alpha-2
// code. Anything that is not exactly two letters after cleanup yields nil.
func NormalizeCountryCode(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.ToUpper(nonLetter.ReplaceAllString(*v, ""))
	if len(s) != 2 {
		return nil
	}
	return &s
}
