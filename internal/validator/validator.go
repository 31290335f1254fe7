// Package validator performs the structural and count-based checks on
// a parsed interchange: envelope presence and declared-versus-actual
// segment and message counts.
package validator

import (
	"fmt"
	"strconv"

	"fjacquet/edi-analyze/internal/models"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Validation issue codes emitted by Validate. These are stable machine
// identifiers consumed by downstream tooling.
const (
	CodeMissingUNB           = "MISSING_UNB"
	CodeMissingUNZ           = "MISSING_UNZ"
	CodeMissingUNH           = "MISSING_UNH"
	CodeMissingUNT           = "MISSING_UNT"
	CodeMissingBGM           = "MISSING_BGM"
	CodeSegmentCountMismatch = "SEGMENT_COUNT_MISMATCH"
	CodeMessageCountMismatch = "MESSAGE_COUNT_MISMATCH"
	CodeUnknownSegment       = "UNKNOWN_SEGMENT"
)

// Validate runs all structural rules over the parsed segments. Rules
// fire independently; every finding is recorded, none aborts the run.
func Validate(segments []models.Segment) models.ValidationResult {
	var result models.ValidationResult

	checkEnvelope(segments, &result)
	checkSegmentCount(segments, &result)
	checkMessageCount(segments, &result)
	checkUnknownSegments(segments, &result)

	log.WithFields(logrus.Fields{
		"errors":   result.ErrorCount,
		"warnings": result.WarningCount,
	}).Debug("Structural validation finished")
	return result
}

// checkEnvelope verifies the presence of the mandatory envelope
// segments. UNB/UNZ/UNH/UNT absences are errors; a missing BGM is only
// a warning since some service messages legitimately omit it.
func checkEnvelope(segments []models.Segment, result *models.ValidationResult) {
	checks := []struct {
		tag        string
		code       string
		severity   models.Severity
		suggestion string
	}{
		{models.TagUNB, CodeMissingUNB, models.SeverityError, "Add a UNB interchange header as the first segment"},
		{models.TagUNZ, CodeMissingUNZ, models.SeverityError, "Add a UNZ interchange trailer as the last segment"},
		{models.TagUNH, CodeMissingUNH, models.SeverityError, "Add a UNH message header before the message body"},
		{models.TagUNT, CodeMissingUNT, models.SeverityError, "Add a UNT message trailer after the message body"},
		{models.TagBGM, CodeMissingBGM, models.SeverityWarning, "Add a BGM segment identifying the business document"},
	}

	for _, c := range checks {
		if findFirst(segments, c.tag) == nil {
			result.Add(models.Issue{
				Segment:    c.tag,
				Code:       c.code,
				Message:    fmt.Sprintf("Mandatory segment %s is missing", c.tag),
				Severity:   c.severity,
				Suggestion: c.suggestion,
			})
		}
	}
}

// checkSegmentCount cross-validates the segment count declared in the
// UNT trailer against the actual UNH-to-UNT span. The check only fires
// when both segments exist with the header before the trailer; the
// missing-segment cases are already reported by checkEnvelope.
func checkSegmentCount(segments []models.Segment, result *models.ValidationResult) {
	header := findFirst(segments, models.TagUNH)
	trailer := findFirst(segments, models.TagUNT)
	if header == nil || trailer == nil || header.Position >= trailer.Position {
		return
	}

	declared, ok := parseCount(trailer.Field(0).Value)
	if !ok {
		return
	}
	actual := trailer.Position - header.Position + 1
	if declared != actual {
		result.Add(models.Issue{
			Segment:    models.TagUNT,
			Code:       CodeSegmentCountMismatch,
			Message:    fmt.Sprintf("UNT declares %d segments but the message spans %d", declared, actual),
			Severity:   models.SeverityWarning,
			Suggestion: "Correct the segment count in the UNT trailer",
		})
	}
}

// checkMessageCount cross-validates the message count declared in the
// UNZ trailer against the number of UNH occurrences.
func checkMessageCount(segments []models.Segment, result *models.ValidationResult) {
	trailer := findFirst(segments, models.TagUNZ)
	if trailer == nil {
		return
	}
	declared, ok := parseCount(trailer.Field(0).Value)
	if !ok {
		return
	}

	actual := 0
	for _, seg := range segments {
		if seg.Tag == models.TagUNH {
			actual++
		}
	}
	if declared != actual {
		result.Add(models.Issue{
			Segment:    models.TagUNZ,
			Code:       CodeMessageCountMismatch,
			Message:    fmt.Sprintf("UNZ declares %d messages but the interchange contains %d", declared, actual),
			Severity:   models.SeverityWarning,
			Suggestion: "Correct the message count in the UNZ trailer",
		})
	}
}

// checkUnknownSegments flags tags outside the advisory allow-list.
// Purely informational; proprietary segments are common in the wild.
func checkUnknownSegments(segments []models.Segment, result *models.ValidationResult) {
	for _, seg := range segments {
		if !models.KnownSegmentTags[seg.Tag] {
			result.Add(models.Issue{
				Segment:    seg.Tag,
				Code:       CodeUnknownSegment,
				Message:    fmt.Sprintf("Segment %s at position %d is not a known EDIFACT segment", seg.Tag, seg.Position),
				Severity:   models.SeverityInfo,
				Suggestion: "Verify the segment tag against the message implementation guide",
			})
		}
	}
}

func findFirst(segments []models.Segment, tag string) *models.Segment {
	for i := range segments {
		if segments[i].Tag == tag {
			return &segments[i]
		}
	}
	return nil
}

func parseCount(value string) (int, bool) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	return n, true
}
