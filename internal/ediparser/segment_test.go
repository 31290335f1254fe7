package ediparser

import (
	"testing"

	"fjacquet/edi-analyze/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitEscaped(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"Plain split", "A+B+C", []string{"A", "B", "C"}},
		{"Escaped delimiter stays literal", "A?+B+C", []string{"A+B", "C"}},
		{"Trailing delimiter yields empty token", "A+B+", []string{"A", "B", ""}},
		{"Leading delimiter yields empty token", "+A", []string{"", "A"}},
		{"No delimiter", "ABC", []string{"ABC"}},
		{"Empty string", "", []string{""}},
		{"Only delimiters", "++", []string{"", "", ""}},
		{"Escape at end of string is kept", "A?", []string{"A?"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, splitEscaped(tc.input, '+', '?'))
		})
	}
}

// An N-delimiter string always yields N+1 tokens, matching the wire
// format's convention of optional trailing empty fields.
func TestSplitEscapedTokenCount(t *testing.T) {
	assert.Len(t, splitEscaped("a+b+c+d+", '+', '?'), 5)
	assert.Len(t, splitEscaped("+++", '+', '?'), 4)
}

func TestParseSegment(t *testing.T) {
	d := models.DefaultDelimiters()

	seg := ParseSegment("UNB+UNOC:3+SENDER+RECEIVER+240101:1200+REF1", 1, d)

	assert.Equal(t, "UNB", seg.Tag)
	assert.Equal(t, 1, seg.Position)
	require.Len(t, seg.Fields, 5)

	assert.Equal(t, 0, seg.Fields[0].Index)
	assert.Equal(t, "UNOC:3", seg.Fields[0].Value)
	assert.Equal(t, []string{"UNOC", "3"}, seg.Fields[0].Components)
	assert.True(t, seg.Fields[0].IsComposite())

	assert.Equal(t, "SENDER", seg.Fields[1].Value)
	assert.False(t, seg.Fields[1].IsComposite())
}

func TestParseSegmentEscapedComponents(t *testing.T) {
	d := models.DefaultDelimiters()

	// The escaped ':' stays part of the component; the escaped '+'
	// stays part of the field.
	seg := ParseSegment("FTX+note?+more+a?:b:c", 1, d)

	assert.Equal(t, "FTX", seg.Tag)
	require.Len(t, seg.Fields, 2)
	assert.Equal(t, "note+more", seg.Fields[0].Value)
	assert.Equal(t, []string{"a:b", "c"}, seg.Fields[1].Components)
}

func TestParseSegmentTagOnly(t *testing.T) {
	d := models.DefaultDelimiters()

	seg := ParseSegment("UNS", 3, d)
	assert.Equal(t, "UNS", seg.Tag)
	assert.Empty(t, seg.Fields)
}

func TestParseDocument(t *testing.T) {
	raw := "UNB+UNOC:3+S+R'UNH+1+INVOIC:D:96A:UN'UNZ+1+X'"

	segments, delims := ParseDocument(raw)

	assert.False(t, delims.ExplicitUNA)
	require.Len(t, segments, 3)
	assert.Equal(t, "UNB", segments[0].Tag)
	assert.Equal(t, 1, segments[0].Position)
	assert.Equal(t, "UNZ", segments[2].Tag)
	assert.Equal(t, 3, segments[2].Position)
}

func TestParseDocumentCustomDelimiters(t *testing.T) {
	raw := "UNA.*,! ~SEG*F1.C1.C2*F2~"

	segments, delims := ParseDocument(raw)

	assert.True(t, delims.ExplicitUNA)
	require.Len(t, segments, 1)
	assert.Equal(t, "SEG", segments[0].Tag)
	assert.Equal(t, []string{"F1", "C1", "C2"}, segments[0].Fields[0].Components)
	assert.Equal(t, "F2", segments[0].Fields[1].Value)
}

func TestParseDocumentEmpty(t *testing.T) {
	segments, delims := ParseDocument("")
	assert.Empty(t, segments)
	assert.False(t, delims.ExplicitUNA)
}
