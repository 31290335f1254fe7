// Package extractor reconstructs typed business records from the
// positional data of parsed segments: the interchange envelope, the
// message header, document-level business data and party groups.
package extractor

import (
	"fjacquet/edi-analyze/internal/currencyutils"
	"fjacquet/edi-analyze/internal/dateutils"
	"fjacquet/edi-analyze/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
	currencyutils.SetLogger(logger)
	dateutils.SetLogger(logger)
}

// MOA qualifier codes routed into the three amount categories.
var (
	totalAmountQualifiers = map[string]bool{"9": true, "39": true, "79": true}
	taxAmountQualifiers   = map[string]bool{"86": true, "124": true}
	netAmountQualifier    = "125"
)

// DTM qualifiers whose date doubles as the document date when no
// document date has been set yet.
var documentDateQualifiers = map[string]bool{"137": true, "3": true}

// ExtractInterchange builds the Interchange record from the first UNB
// segment, or returns nil when the document has none.
func ExtractInterchange(segments []models.Segment) *models.Interchange {
	unb := findFirst(segments, models.TagUNB)
	if unb == nil {
		return nil
	}

	ic := &models.Interchange{
		SyntaxIdentifier:     unb.Component(0, 0),
		SyntaxVersion:        unb.Component(0, 1),
		Sender:               unb.Component(1, 0),
		Receiver:             unb.Component(2, 0),
		ControlReference:     unb.Field(4).Value,
		RecipientReference:   unb.Component(5, 0),
		ApplicationReference: unb.Field(6).Value,
		TestIndicator:        unb.Field(10).Value == "1",
	}
	ic.Timestamp = dateutils.ParseInterchangeTimestamp(unb.Component(3, 0), unb.Component(3, 1))
	return ic
}

// ExtractMessageHeader builds the MessageHeader record from the first
// UNH segment, or returns nil when the document has none.
func ExtractMessageHeader(segments []models.Segment) *models.MessageHeader {
	unh := findFirst(segments, models.TagUNH)
	if unh == nil {
		return nil
	}
	return &models.MessageHeader{
		Reference:         unh.Field(0).Value,
		MessageType:       unh.Component(1, 0),
		Version:           unh.Component(1, 1),
		Release:           unh.Component(1, 2),
		ControllingAgency: unh.Component(1, 3),
		AssociationCode:   unh.Component(1, 4),
	}
}

// ExtractBusinessData accumulates document-level business fields with
// one linear scan over all segments, routing BGM, DTM, CUX, MOA, RFF
// and LIN occurrences by tag and qualifier.
func ExtractBusinessData(segments []models.Segment) models.BusinessData {
	var data models.BusinessData

	for _, seg := range segments {
		switch seg.Tag {
		case models.TagBGM:
			data.DocumentType = seg.Component(0, 0)
			data.DocumentNumber = seg.Field(1).Value
			data.DocumentFunction = seg.Field(2).Value

		case models.TagDTM:
			qualifier := seg.Component(0, 0)
			format := seg.Component(0, 2)
			date := dateutils.ParseEDIDate(seg.Component(0, 1), format)
			data.Dates = append(data.Dates, models.DateValue{
				Qualifier: qualifier,
				Date:      date,
				Format:    format,
			})
			if data.DocumentDate == nil && documentDateQualifiers[qualifier] {
				data.DocumentDate = date
			}

		case models.TagCUX:
			data.Currency = currencyutils.NormalizeCurrencyCode(seg.Component(0, 1))

		case models.TagMOA:
			applyAmount(&data, seg.Component(0, 0), seg.Component(0, 1))

		case models.TagRFF:
			data.References = append(data.References, models.Reference{
				Qualifier: seg.Component(0, 0),
				Value:     seg.Component(0, 1),
			})

		case models.TagLIN:
			data.LineItemCount++
		}
	}

	log.WithFields(logrus.Fields{
		"document":  data.DocumentNumber,
		"lineItems": data.LineItemCount,
	}).Debug("Extracted business data")
	return data
}

// applyAmount routes one MOA occurrence into its amount category.
// Repeats within a category overwrite the previous value.
func applyAmount(data *models.BusinessData, qualifier, raw string) {
	amount := currencyutils.ParseAmount(raw)
	switch {
	case totalAmountQualifiers[qualifier]:
		data.TotalAmount = amountRef(amount)
	case taxAmountQualifiers[qualifier]:
		data.TaxAmount = amountRef(amount)
	case qualifier == netAmountQualifier:
		data.NetAmount = amountRef(amount)
	}
}

func amountRef(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func findFirst(segments []models.Segment, tag string) *models.Segment {
	for i := range segments {
		if segments[i].Tag == tag {
			return &segments[i]
		}
	}
	return nil
}
