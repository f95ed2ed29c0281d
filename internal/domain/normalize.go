package domain

import (
	"strings"
	"unicode/utf8"
)

// NormalizeSearch lowercases a free-text search term. The term matches as a
// literal substring, surrounding spaces included; a blank term means no search.
func NormalizeSearch(text string) string {
	if strings.TrimSpace(text) == "" {
		return ""
	}
	return strings.ToLower(text)
}

// ContainsFold reports whether substr occurs in s, ignoring case.
// substr is expected to be lowercase already (see NormalizeSearch).
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), substr)
}

// TruncateRunes cuts s to max code points and appends "..." when it was longer.
func TruncateRunes(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max]) + "..."
}
