// Package currencyutils provides amount and currency handling for the
// extracted MOA and CUX values.
package currencyutils

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// ParseAmount parses a MOA amount string into a decimal value. A
// decimal comma is normalized to a point before parsing. Malformed
// input degrades to zero instead of failing, matching the engine's
// rule that data-quality problems never abort the pipeline.
func ParseAmount(amountStr string) decimal.Decimal {
	amount, err := decimal.NewFromString(StandardizeAmount(amountStr))
	if err != nil {
		log.WithField("amount", amountStr).Debug("Unparseable amount, defaulting to zero")
		return decimal.Zero
	}
	return amount
}

// StandardizeAmount normalizes an EDI amount representation so that
// decimal.NewFromString accepts it: surrounding whitespace is removed
// and a comma decimal notation becomes a point.
func StandardizeAmount(amountStr string) string {
	amountStr = strings.TrimSpace(amountStr)
	if strings.Contains(amountStr, ",") && !strings.Contains(amountStr, ".") {
		amountStr = strings.ReplaceAll(amountStr, ",", ".")
	}
	return amountStr
}

// NormalizeCurrencyCode uppercases and trims an ISO 4217 currency code
// taken from a CUX segment.
func NormalizeCurrencyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
