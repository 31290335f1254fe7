// Package ediparser implements the character-level parsing of EDIFACT
// interchanges: delimiter resolution, segment tokenizing and segment
// parsing into tags, fields and components.
package ediparser

import (
	"fmt"
	"os"
	"strings"

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

// ParseDocument resolves the active delimiter set of raw and parses it
// into an ordered segment sequence. Malformed input never fails; the
// worst case is an empty segment list.
func ParseDocument(raw string) ([]models.Segment, models.Delimiters) {
	delims := ResolveDelimiters(raw)
	pieces := SplitSegments(raw, delims)

	segments := make([]models.Segment, 0, len(pieces))
	for i, piece := range pieces {
		segments = append(segments, ParseSegment(piece, i+1, delims))
	}

	log.WithFields(logrus.Fields{
		"segments":    len(segments),
		"explicitUNA": delims.ExplicitUNA,
	}).Debug("Parsed EDI document")
	return segments, delims
}

// ValidateFormat checks whether a file plausibly contains an EDIFACT
// interchange by sniffing for a UNA or UNB prefix. A readable file that
// is not EDI yields (false, nil), not an error.
func ValidateFormat(filePath string) (bool, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		log.WithError(err).Error("Failed to read file for format validation")
		return false, fmt.Errorf("error reading file: %w", err)
	}

	head := strings.TrimLeft(string(data), " \t\r\n")
	if strings.HasPrefix(head, models.TagUNA) || strings.HasPrefix(head, models.TagUNB) {
		log.WithField("file", filePath).Debug("File looks like an EDIFACT interchange")
		return true, nil
	}
	log.WithField("file", filePath).Debug("File does not start with UNA/UNB")
	return false, nil
}
