package ediparser

import (
	"strings"

	"fjacquet/edi-analyze/internal/models"
)

// SplitSegments splits raw document text into trimmed, non-empty
// segment strings using the resolved delimiter set.
//
// The scan is a single left-to-right pass: an escape character
// immediately followed by the terminator is a literal embedded in the
// segment data and both characters are kept as one unit, an unescaped
// terminator closes the current segment, and bare line breaks are
// dropped everywhere. Trailing content without a final terminator still
// yields a segment.
func SplitSegments(raw string, d models.Delimiters) []string {
	runes := []rune(raw)
	start := 0
	if d.ExplicitUNA && len(runes) >= unaHeaderLen {
		start = unaHeaderLen
		for start < len(runes) && isLineBreak(runes[start]) {
			start++
		}
	}

	var segments []string
	var current strings.Builder
	flush := func() {
		if seg := strings.TrimSpace(current.String()); seg != "" {
			segments = append(segments, seg)
		}
		current.Reset()
	}

	for i := start; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == d.Escape && i+1 < len(runes) && runes[i+1] == d.Terminator:
			current.WriteRune(r)
			current.WriteRune(runes[i+1])
			i++
		case r == d.Terminator:
			flush()
		case isLineBreak(r):
			// line breaks carry no meaning in the wire format
		default:
			current.WriteRune(r)
		}
	}
	flush()
	return segments
}

func isLineBreak(r rune) bool {
	return r == '\n' || r == '\r'
}
