package models

// Delimiters holds the structural characters of one interchange.
// Exactly one delimiter set is active per document; when no UNA service
// segment is present the EDIFACT defaults apply.
type Delimiters struct {
	Component  rune `json:"component" yaml:"component"`
	Field      rune `json:"field" yaml:"field"`
	Decimal    rune `json:"decimal" yaml:"decimal"`
	Escape     rune `json:"escape" yaml:"escape"`
	Reserved   rune `json:"reserved" yaml:"reserved"`
	Terminator rune `json:"terminator" yaml:"terminator"`

	// ExplicitUNA is true when the delimiter set was read from a UNA
	// service segment rather than falling back to defaults.
	ExplicitUNA bool `json:"explicit_una" yaml:"explicit_una"`
}

// DefaultDelimiters returns the standard EDIFACT delimiter set (":+.? '").
func DefaultDelimiters() Delimiters {
	return Delimiters{
		Component:  ':',
		Field:      '+',
		Decimal:    '.',
		Escape:     '?',
		Reserved:   ' ',
		Terminator: '\'',
	}
}
