package models

// ComplianceInfo names the inferred standard and the envelope segments
// it requires. UnexpectedSegments is a documented extension point for
// message-specific positional rules and is currently always empty.
type ComplianceInfo struct {
	Standard           string   `json:"standard" yaml:"standard"`
	Subset             string   `json:"subset" yaml:"subset"`
	Compliant          bool     `json:"compliant" yaml:"compliant"`
	RequiredSegments   []string `json:"required_segments" yaml:"required_segments"`
	MissingSegments    []string `json:"missing_segments,omitempty" yaml:"missing_segments,omitempty"`
	UnexpectedSegments []string `json:"unexpected_segments,omitempty" yaml:"unexpected_segments,omitempty"`
}
