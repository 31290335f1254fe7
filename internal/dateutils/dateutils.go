// Package dateutils provides the date parsing rules of the EDIFACT DTM
// and UNB segments.
package dateutils

import (
	"time"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Date format layouts used by EDIFACT date representations.
const (
	LayoutCCYYMMDD     = "20060102"
	LayoutCCYYMMDDHHMM = "200601021504"
	DateLayoutISO      = "2006-01-02"
)

// DTM format qualifier codes with a fixed interpretation.
const (
	FormatCCYYMMDD     = "102"
	FormatCCYYMMDDHHMM = "203"
)

// ParseEDIDate interprets a raw digit string according to an optional
// DTM format code. Format 102 is an 8-digit date, 203 a 12-digit
// date-time; any other or absent format falls back to length inference:
// 6 digits are treated as YYMMDD with the century fixed to "20", 8
// digits as CCYYMMDD. Unparseable input yields nil, never an error.
//
// The "20" century prefix is deliberate, documented behavior carried
// over from existing analyses; two-digit years before 2000 are
// misattributed to the 21st century.
func ParseEDIDate(value, format string) *time.Time {
	switch format {
	case FormatCCYYMMDD:
		return parseLayout(value, LayoutCCYYMMDD)
	case FormatCCYYMMDDHHMM:
		return parseLayout(value, LayoutCCYYMMDDHHMM)
	}

	switch len(value) {
	case 6:
		return parseLayout("20"+value, LayoutCCYYMMDD)
	case 8:
		return parseLayout(value, LayoutCCYYMMDD)
	default:
		return nil
	}
}

// ParseInterchangeTimestamp combines the UNB date and time components
// into one timestamp. A 6-digit date gets the "20" century prefix;
// hour and minute default to "00" when the time component is short or
// absent. Parse failures yield nil.
func ParseInterchangeTimestamp(date, clock string) *time.Time {
	switch len(date) {
	case 6:
		date = "20" + date
	case 8:
		// already CCYYMMDD
	default:
		return nil
	}

	hour, minute := "00", "00"
	if len(clock) >= 2 {
		hour = clock[:2]
	}
	if len(clock) >= 4 {
		minute = clock[2:4]
	}
	return parseLayout(date+hour+minute, LayoutCCYYMMDDHHMM)
}

// ToISODate formats a time.Time value as an ISO date (YYYY-MM-DD).
func ToISODate(date time.Time) string {
	return date.Format(DateLayoutISO)
}

func parseLayout(value, layout string) *time.Time {
	t, err := time.Parse(layout, value)
	if err != nil {
		log.WithField("value", value).Debug("Unparseable date value")
		return nil
	}
	return &t
}
