// Package compressor renders the assembled analysis into a compact
// structured text block for LLM consumption plus a one-sentence human
// summary, and estimates the token cost of the block.
package compressor

import (
	"fmt"
	"strings"

	"fjacquet/edi-analyze/internal/dateutils"
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

// Options bounds the rendered context block.
type Options struct {
	MaxParties int
	MaxIssues  int
}

// DefaultOptions returns the standard context bounds.
func DefaultOptions() Options {
	return Options{MaxParties: 10, MaxIssues: 10}
}

// Role qualifier preference order used when the summary names the
// trading partners.
var (
	senderRoles   = []string{"SE", "SU"}
	receiverRoles = []string{"BY", "MR"}
)

// BuildContext renders the line-oriented structured block covering the
// message envelope, selected business fields, parties, validation
// findings and the segment-tag frequency distribution. The full parsed
// segment slice supplies the frequency counts since the detail records
// on the Analysis may be truncated.
func BuildContext(a *models.Analysis, segments []models.Segment, opts Options) string {
	var b strings.Builder

	fmt.Fprintf(&b, "EDI ANALYSIS: %s\n", a.FileName)
	if a.MessageHeader != nil {
		fmt.Fprintf(&b, "Message: %s | Standard: %s | Version: %s\n",
			a.MessageHeader.MessageType, a.Compliance.Standard,
			textutils.JoinNonEmpty([]string{a.MessageHeader.Version, a.MessageHeader.Release}, "."))
	} else {
		fmt.Fprintf(&b, "Message: unknown | Standard: %s\n", a.Compliance.Standard)
	}
	fmt.Fprintf(&b, "Segments: %d | Lines: %d\n", a.SegmentCount, a.Metadata.LineCount)

	if a.Interchange != nil {
		fmt.Fprintf(&b, "Sender: %s | Receiver: %s\n", a.Interchange.Sender, a.Interchange.Receiver)
	}

	writeBusinessLine(&b, a.Business)
	writeParties(&b, a.Parties, opts.MaxParties)
	writeValidation(&b, a.Validation, opts.MaxIssues)
	writeFrequency(&b, segments)

	return b.String()
}

// BuildSummary renders the single human-readable sentence.
func BuildSummary(a *models.Analysis) string {
	var parts []string

	messageType := "EDI"
	version := ""
	if a.MessageHeader != nil {
		messageType = textutils.FirstNonEmpty(a.MessageHeader.MessageType, "EDI")
		version = a.MessageHeader.Version
	}
	head := fmt.Sprintf("%s %s message", a.Compliance.Standard, messageType)
	if version != "" {
		head += fmt.Sprintf(" (version %s)", version)
	}
	parts = append(parts, head)
	parts = append(parts, fmt.Sprintf("with %d segments", a.SegmentCount))

	if a.Business.DocumentNumber != "" {
		parts = append(parts, fmt.Sprintf("document %s", a.Business.DocumentNumber))
	}
	if sender := partnerName(a, senderRoles, interchangeSender(a)); sender != "" {
		parts = append(parts, fmt.Sprintf("from %s", sender))
	}
	if receiver := partnerName(a, receiverRoles, interchangeReceiver(a)); receiver != "" {
		parts = append(parts, fmt.Sprintf("to %s", receiver))
	}
	if a.Validation.ErrorCount > 0 {
		parts = append(parts, fmt.Sprintf("%d validation errors", a.Validation.ErrorCount))
	}
	return strings.Join(parts, ", ") + "."
}

// TokenEstimate approximates the token cost of a context block as the
// integer ceiling of its character length divided by four.
func TokenEstimate(context string) int {
	if context == "" {
		return 0
	}
	return (len(context) + 3) / 4
}

// CompressionRatio is the size of the context block relative to the
// raw input; zero when the input was empty.
func CompressionRatio(context string, rawLength int) float64 {
	if rawLength == 0 {
		return 0
	}
	return float64(len(context)) / float64(rawLength)
}

func writeBusinessLine(b *strings.Builder, data models.BusinessData) {
	var fields []string
	if data.DocumentNumber != "" {
		fields = append(fields, fmt.Sprintf("Document: %s", data.DocumentNumber))
	}
	if data.DocumentType != "" {
		fields = append(fields, fmt.Sprintf("Type: %s", data.DocumentType))
	}
	if data.DocumentDate != nil {
		fields = append(fields, fmt.Sprintf("Date: %s", dateutils.ToISODate(*data.DocumentDate)))
	}
	if data.Currency != "" {
		fields = append(fields, fmt.Sprintf("Currency: %s", data.Currency))
	}
	if data.TotalAmount != nil {
		fields = append(fields, fmt.Sprintf("Total: %s", data.TotalAmount.StringFixed(2)))
	}
	if data.LineItemCount > 0 {
		fields = append(fields, fmt.Sprintf("LineItems: %d", data.LineItemCount))
	}
	if len(fields) > 0 {
		fmt.Fprintf(b, "%s\n", strings.Join(fields, " | "))
	}
}

func writeParties(b *strings.Builder, parties []models.Party, max int) {
	if len(parties) == 0 {
		return
	}
	fmt.Fprintf(b, "Parties:\n")
	for i, p := range parties {
		if i >= max {
			fmt.Fprintf(b, "- ... %d more\n", len(parties)-max)
			break
		}
		line := fmt.Sprintf("- %s (%s): %s", p.Role, p.RoleLabel(), p.DisplayName())
		if p.ID != "" && p.DisplayName() != p.ID {
			line += fmt.Sprintf(" [%s]", p.ID)
		}
		fmt.Fprintf(b, "%s\n", line)
	}
}

func writeValidation(b *strings.Builder, result models.ValidationResult, max int) {
	if result.ErrorCount == 0 && result.WarningCount == 0 {
		return
	}
	fmt.Fprintf(b, "Validation: %d errors, %d warnings\n", result.ErrorCount, result.WarningCount)
	shown := 0
	for _, issue := range result.Issues {
		if issue.Severity == models.SeverityInfo {
			continue
		}
		if shown >= max {
			break
		}
		fmt.Fprintf(b, "- [%s] %s: %s\n", strings.ToUpper(string(issue.Severity)), issue.Segment, issue.Message)
		shown++
	}
}

// writeFrequency renders the tag distribution in first-appearance
// order.
func writeFrequency(b *strings.Builder, segments []models.Segment) {
	if len(segments) == 0 {
		return
	}
	counts := make(map[string]int, len(segments))
	var order []string
	for _, seg := range segments {
		if counts[seg.Tag] == 0 {
			order = append(order, seg.Tag)
		}
		counts[seg.Tag]++
	}

	entries := make([]string, 0, len(order))
	for _, tag := range order {
		entries = append(entries, fmt.Sprintf("%s=%d", tag, counts[tag]))
	}
	fmt.Fprintf(b, "SegmentFrequency: %s\n", strings.Join(entries, " "))
}

func partnerName(a *models.Analysis, roles []string, fallback string) string {
	for _, role := range roles {
		for _, p := range a.Parties {
			if strings.EqualFold(p.Role, role) && p.DisplayName() != "" {
				return p.DisplayName()
			}
		}
	}
	return fallback
}

func interchangeSender(a *models.Analysis) string {
	if a.Interchange == nil {
		return ""
	}
	return a.Interchange.Sender
}

func interchangeReceiver(a *models.Analysis) string {
	if a.Interchange == nil {
		return ""
	}
	return a.Interchange.Receiver
}
