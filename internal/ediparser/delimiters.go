package ediparser

import (
	"strings"

	"fjacquet/edi-analyze/internal/models"
)

// unaHeaderLen is the fixed width of the UNA service segment: the tag
// plus the six delimiter positions.
const unaHeaderLen = 9

// ResolveDelimiters reads the optional UNA service segment at the start
// of the document and returns the active delimiter set. Positions the
// input is too short to provide keep their defaults; a document without
// a UNA segment uses the full default set. This never fails.
func ResolveDelimiters(raw string) models.Delimiters {
	d := models.DefaultDelimiters()
	if !strings.HasPrefix(raw, models.TagUNA) {
		return d
	}
	d.ExplicitUNA = true

	header := headerRunes(raw, unaHeaderLen)
	slots := []*rune{&d.Component, &d.Field, &d.Decimal, &d.Escape, &d.Reserved, &d.Terminator}
	for i, slot := range slots {
		pos := len(models.TagUNA) + i
		if pos < len(header) {
			*slot = header[pos]
		}
	}
	return d
}

// headerRunes returns up to n leading runes of s without converting the
// whole string.
func headerRunes(s string, n int) []rune {
	header := make([]rune, 0, n)
	for _, r := range s {
		header = append(header, r)
		if len(header) == n {
			break
		}
	}
	return header
}
