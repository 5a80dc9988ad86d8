package rag

import "strings"

// abdominalKeywords is the fixed in-scope vocabulary for the symptom domain.
// Immutable configuration data; matching is case-insensitive substring.
var abdominalKeywords = []string{
	"abdominal", "stomach", "belly", "lower abdomen", "upper abdomen", "tummy",
	"gas", "indigestion", "appendix", "appendicitis", "bowel", "intestine",
	"abdomen", "stomachache",
}

// IsInScope reports whether the free-text symptom description falls inside
// the supported domain (abdominal pain in adults). It is the single gate
// shared by the /validate pre-flight check and the /chat entry point.
func IsInScope(text string) bool {
	t := strings.ToLower(text)
	for _, keyword := range abdominalKeywords {
		if strings.Contains(t, keyword) {
			return true
		}
	}
	return false
}
