// Package textutils provides text manipulation helpers shared by the
// extraction and compression stages.
package textutils

import (
	"regexp"
	"strings"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// JoinNonEmpty joins the non-empty elements of parts with sep, skipping
// blanks so that sparse composite fields do not produce doubled
// separators.
func JoinNonEmpty(parts []string, sep string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, strings.TrimSpace(p))
		}
	}
	return strings.Join(kept, sep)
}

// CleanWhitespace trims a string and collapses internal whitespace runs
// to single spaces.
func CleanWhitespace(s string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(s), " ")
}

// FirstNonEmpty returns the first value that is not blank, or the empty
// string when all are.
func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// Truncate shortens s to at most max runes, appending an ellipsis when
// content was cut.
func Truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}
