// Package compliance infers the applicable EDI standard and subset of
// an interchange and lists the mandatory envelope segments it misses.
package compliance

import (
	"strings"

	"fjacquet/edi-analyze/internal/models"
	"fjacquet/edi-analyze/internal/textutils"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Standard names recognized by the inference.
const (
	StandardEDIFACT = "UN/EDIFACT"
	StandardEANCOM  = "EANCOM"
	StandardODETTE  = "ODETTE"
)

// Infer classifies the document against the known standards. The
// default is UN/EDIFACT; an association code containing EAN or ODETTE
// reclassifies to the corresponding subset family. The subset is taken
// from the caller-supplied hint when present, otherwise from the raw
// association code.
func Infer(header *models.MessageHeader, tags []string, userCtx models.UserContext) models.ComplianceInfo {
	info := models.ComplianceInfo{
		Standard:         StandardEDIFACT,
		Subset:           userCtx.Subset,
		RequiredSegments: append([]string(nil), models.RequiredSegments...),
	}

	association := ""
	if header != nil {
		association = header.AssociationCode
	}
	switch {
	case strings.Contains(association, "EAN"):
		info.Standard = StandardEANCOM
	case strings.Contains(association, "ODETTE"):
		info.Standard = StandardODETTE
	}
	info.Subset = textutils.FirstNonEmpty(userCtx.Subset, association)

	present := make(map[string]bool, len(tags))
	for _, tag := range tags {
		present[tag] = true
	}
	for _, required := range info.RequiredSegments {
		if !present[required] {
			info.MissingSegments = append(info.MissingSegments, required)
		}
	}
	info.Compliant = len(info.MissingSegments) == 0

	log.WithFields(logrus.Fields{
		"standard":  info.Standard,
		"compliant": info.Compliant,
	}).Debug("Compliance inference finished")
	return info
}
