package ediparser

import (
	"strings"

	"fjacquet/edi-analyze/internal/models"
)

// ParseSegment splits one segment string into its tag and data
// elements. Element 0 of the raw split is the tag; the remaining
// elements become zero-indexed fields, each further split into
// components on the component separator. All splitting is escape-aware.
func ParseSegment(raw string, position int, d models.Delimiters) models.Segment {
	elements := splitEscaped(raw, d.Field, d.Escape)

	seg := models.Segment{
		Tag:      elements[0],
		Position: position,
		Raw:      raw,
		Fields:   make([]models.Field, 0, len(elements)-1),
	}
	for i, value := range elements[1:] {
		seg.Fields = append(seg.Fields, models.Field{
			Index:      i,
			Value:      value,
			Components: splitEscaped(value, d.Component, d.Escape),
		})
	}
	return seg
}

// splitEscaped splits s on delim, honoring the escape character: an
// escape immediately followed by the delimiter contributes a literal
// delimiter to the current token instead of a boundary. The final
// accumulated token is always appended, so a string containing N
// unescaped delimiters yields N+1 tokens.
func splitEscaped(s string, delim, escape rune) []string {
	runes := []rune(s)
	tokens := make([]string, 0, 4)
	var current strings.Builder

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case r == escape && i+1 < len(runes) && runes[i+1] == delim:
			current.WriteRune(delim)
			i++
		case r == delim:
			tokens = append(tokens, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}
	return append(tokens, current.String())
}
