package normalize

import (
	"regexp"
	"strings"
)

var (
	multiSpace = regexp.MustCompile(`\s+`)
	// Open-nomenclature qualifiers that do not identify a taxon.
	trailingQualifier = regexp.MustCompile(`\s+(sp|spp|cf|aff)\.?$`)
)

// NormalizeScientificName lowercases, collapses whitespace, and drops a
// trailing open-nomenclature qualifier ("Quercus sp." -> "quercus").
// Returns nil if the result is empty.
func NormalizeScientificName(name string) *string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = multiSpace.ReplaceAllString(s, " ")
	s = trailingQualifier.ReplaceAllString(s, "")
	if s == "" {
		return nil
	}
	return &s
}

// optStr trims s and returns nil when nothing is left.
func optStr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
