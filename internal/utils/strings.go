package utils

import (
	"regexp"
	"strings"
)

var (
	controlChars = regexp.MustCompile(`[\p{Cc}\p{Cf}\p{Co}\p{Cs}]`)
	spaceRuns    = regexp.MustCompile(`\s+`)
)

// SanitizeString removes control characters and collapses whitespace
func SanitizeString(s string) string {
	result := controlChars.ReplaceAllString(s, " ")
	result = spaceRuns.ReplaceAllString(result, " ")
	return strings.TrimSpace(result)
}

// NormalizeQuery returns the canonical form of a free-text place query,
// used as a cache key so that "  Pizza  Hut" and "pizza hut" share an entry.
func NormalizeQuery(q string) string {
	return strings.ToLower(SanitizeString(q))
}

// Truncate truncates a string to the specified length and adds ellipsis if needed
func Truncate(s string, maxLength int) string {
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}
	if maxLength <= 3 {
		return "..."
	}
	return string(runes[:maxLength-3]) + "..."
}

// MaskSecret hides everything but the last four characters of a credential
func MaskSecret(s string) string {
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}
