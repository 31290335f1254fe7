package models

// Field is one data element of a segment. The index is zero-based and
// counts from the first element after the tag. Composite fields carry
// their sub-values in Components.
type Field struct {
	Index      int      `json:"index" yaml:"index"`
	Value      string   `json:"value" yaml:"value"`
	Components []string `json:"components" yaml:"components"`
}

// IsComposite reports whether the field holds more than one component.
func (f Field) IsComposite() bool {
	return len(f.Components) > 1
}

// Component returns the component at index i, or the empty string when
// the field has fewer components.
func (f Field) Component(i int) string {
	if i < 0 || i >= len(f.Components) {
		return ""
	}
	return f.Components[i]
}

// Segment is one logical record of the interchange, identified by its
// 3-letter tag. Position is 1-based within the document. Segments are
// created once during parsing and not mutated afterwards.
type Segment struct {
	Tag      string  `json:"tag" yaml:"tag"`
	Position int     `json:"position" yaml:"position"`
	Raw      string  `json:"raw" yaml:"raw"`
	Fields   []Field `json:"fields" yaml:"fields"`
}

// Field returns the field at index i, or a zero Field when the segment
// has fewer data elements. Extraction code relies on this to degrade
// missing positions to empty values instead of panicking.
func (s Segment) Field(i int) Field {
	if i < 0 || i >= len(s.Fields) {
		return Field{Index: i}
	}
	return s.Fields[i]
}

// Component returns component comp of field i, or the empty string.
func (s Segment) Component(i, comp int) string {
	return s.Field(i).Component(comp)
}
