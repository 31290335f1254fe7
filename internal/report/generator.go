// Package report renders analysis records into output documents: the
// full aggregate as JSON or YAML, and flat CSV exports of the extracted
// parties and segment details.
package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"fjacquet/edi-analyze/internal/logging"
	"fjacquet/edi-analyze/internal/models"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"
)

// Generator renders Analysis records into serialized reports.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a report generator.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Generator{logger: logger.WithField("component", "ReportGenerator")}
}

// Generate renders the analysis in the requested format (json, yaml or
// csv). The csv format exports the party list.
func (g *Generator) Generate(analysis *models.Analysis, format string) ([]byte, error) {
	switch format {
	case "json":
		return g.generateJSON(analysis)
	case "yaml":
		return g.generateYAML(analysis)
	case "csv":
		return g.PartiesCSV(analysis)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
}

func (g *Generator) generateJSON(analysis *models.Analysis) ([]byte, error) {
	data, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal JSON report")
		return nil, fmt.Errorf("failed to marshal JSON report: %w", err)
	}
	return data, nil
}

func (g *Generator) generateYAML(analysis *models.Analysis) ([]byte, error) {
	data, err := yaml.Marshal(analysis)
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal YAML report")
		return nil, fmt.Errorf("failed to marshal YAML report: %w", err)
	}
	return data, nil
}

// partyRow is the flat CSV projection of one extracted party.
type partyRow struct {
	Role        string `csv:"role"`
	RoleLabel   string `csv:"role_label"`
	ID          string `csv:"id"`
	IDType      string `csv:"id_type"`
	Name        string `csv:"name"`
	Street      string `csv:"street"`
	City        string `csv:"city"`
	PostalCode  string `csv:"postal_code"`
	CountryCode string `csv:"country_code"`
	ContactName string `csv:"contact_name"`
	Phone       string `csv:"phone"`
	Email       string `csv:"email"`
	Fax         string `csv:"fax"`
}

// PartiesCSV exports the extracted parties as CSV.
func (g *Generator) PartiesCSV(analysis *models.Analysis) ([]byte, error) {
	rows := make([]partyRow, 0, len(analysis.Parties))
	for _, p := range analysis.Parties {
		rows = append(rows, partyRow{
			Role:        p.Role,
			RoleLabel:   p.RoleLabel(),
			ID:          p.ID,
			IDType:      p.IDType,
			Name:        p.Name,
			Street:      strings.Join(p.Address.StreetLines, " "),
			City:        p.Address.City,
			PostalCode:  p.Address.PostalCode,
			CountryCode: p.Address.CountryCode,
			ContactName: p.Contact.Name,
			Phone:       p.Contact.Phone,
			Email:       p.Contact.Email,
			Fax:         p.Contact.Fax,
		})
	}

	data, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal parties CSV")
		return nil, fmt.Errorf("failed to marshal parties CSV: %w", err)
	}
	return data, nil
}

// segmentRow is the flat CSV projection of one segment detail record.
type segmentRow struct {
	Position  int    `csv:"position"`
	Tag       string `csv:"tag"`
	Raw       string `csv:"raw"`
	Fields    string `csv:"fields"`
	HasErrors bool   `csv:"has_errors"`
	Errors    string `csv:"errors"`
}

// SegmentsCSV exports the retained segment detail records as CSV.
func (g *Generator) SegmentsCSV(analysis *models.Analysis) ([]byte, error) {
	rows := make([]segmentRow, 0, len(analysis.Segments))
	for _, s := range analysis.Segments {
		rows = append(rows, segmentRow{
			Position:  s.Position,
			Tag:       s.Tag,
			Raw:       s.Raw,
			Fields:    strings.Join(s.Fields, "|"),
			HasErrors: s.HasErrors,
			Errors:    strings.Join(s.Errors, "; "),
		})
	}

	data, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		g.logger.WithError(err).Error("Failed to marshal segments CSV")
		return nil, fmt.Errorf("failed to marshal segments CSV: %w", err)
	}
	return data, nil
}
