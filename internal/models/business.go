package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateValue is one DTM occurrence: the qualifier code, the parsed date
// (nil when the raw value could not be interpreted) and the declared
// format code.
type DateValue struct {
	Qualifier string     `json:"qualifier" yaml:"qualifier"`
	Date      *time.Time `json:"date,omitempty" yaml:"date,omitempty"`
	Format    string     `json:"format" yaml:"format"`
}

// Reference is one RFF occurrence as a (qualifier, value) pair.
type Reference struct {
	Qualifier string `json:"qualifier" yaml:"qualifier"`
	Value     string `json:"value" yaml:"value"`
}

// BusinessData aggregates the document-level business fields collected
// by a single scan over all segments. The three amount categories are
// optional and distinguished by MOA qualifier codes; repeats within a
// category overwrite (last writer wins).
type BusinessData struct {
	DocumentNumber   string           `json:"document_number" yaml:"document_number"`
	DocumentType     string           `json:"document_type" yaml:"document_type"`
	DocumentFunction string           `json:"document_function" yaml:"document_function"`
	DocumentDate     *time.Time       `json:"document_date,omitempty" yaml:"document_date,omitempty"`
	Currency         string           `json:"currency" yaml:"currency"`
	TotalAmount      *decimal.Decimal `json:"total_amount,omitempty" yaml:"total_amount,omitempty"`
	TaxAmount        *decimal.Decimal `json:"tax_amount,omitempty" yaml:"tax_amount,omitempty"`
	NetAmount        *decimal.Decimal `json:"net_amount,omitempty" yaml:"net_amount,omitempty"`
	LineItemCount    int              `json:"line_item_count" yaml:"line_item_count"`
	Dates            []DateValue      `json:"dates,omitempty" yaml:"dates,omitempty"`
	References       []Reference      `json:"references,omitempty" yaml:"references,omitempty"`
}
