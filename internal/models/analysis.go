package models

import "time"

// Status is the coarse outcome of an analysis run.
type Status string

const (
	// StatusParsed means the document was parsed but structural errors
	// were found.
	StatusParsed Status = "parsed"
	// StatusValidated means the document parsed with no structural
	// errors.
	StatusValidated Status = "validated"
)

// FileInfo is the caller-supplied metadata of the analyzed document.
type FileInfo struct {
	Name string `json:"name" yaml:"name"`
	Size int64  `json:"size" yaml:"size"`
}

// UserContext carries optional caller hints consumed only by the
// compliance inference.
type UserContext struct {
	Subset         string `json:"subset,omitempty" yaml:"subset,omitempty"`
	MessageType    string `json:"message_type,omitempty" yaml:"message_type,omitempty"`
	ReleaseVersion string `json:"release_version,omitempty" yaml:"release_version,omitempty"`
	StandardFamily string `json:"standard_family,omitempty" yaml:"standard_family,omitempty"`
}

// SegmentDetail is the bounded per-segment record retained on the
// Analysis: enough to render the segment without holding the full
// parsed structure for arbitrarily large inputs.
type SegmentDetail struct {
	Tag       string   `json:"tag" yaml:"tag"`
	Position  int      `json:"position" yaml:"position"`
	Raw       string   `json:"raw" yaml:"raw"`
	Fields    []string `json:"fields" yaml:"fields"`
	HasErrors bool     `json:"has_errors" yaml:"has_errors"`
	Errors    []string `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// Metadata holds processing measurements taken while the Analysis was
// assembled.
type Metadata struct {
	StageDurations   map[string]time.Duration `json:"stage_durations" yaml:"stage_durations"`
	ByteSize         int                      `json:"byte_size" yaml:"byte_size"`
	LineCount        int                      `json:"line_count" yaml:"line_count"`
	Truncated        bool                     `json:"truncated" yaml:"truncated"`
	TruncatedAt      int                      `json:"truncated_at,omitempty" yaml:"truncated_at,omitempty"`
	RawPreview       string                   `json:"raw_preview" yaml:"raw_preview"`
	TokenEstimate    int                      `json:"token_estimate" yaml:"token_estimate"`
	CompressionRatio float64                  `json:"compression_ratio" yaml:"compression_ratio"`
}

// Analysis is the aggregate root produced by one pipeline run. It is
// assembled once per input document and immutable afterwards; callers
// read it but must not modify it.
type Analysis struct {
	FileName      string           `json:"file_name" yaml:"file_name"`
	Delimiters    Delimiters       `json:"delimiters" yaml:"delimiters"`
	Interchange   *Interchange     `json:"interchange,omitempty" yaml:"interchange,omitempty"`
	MessageHeader *MessageHeader   `json:"message_header,omitempty" yaml:"message_header,omitempty"`
	SegmentTags   []string         `json:"segment_tags" yaml:"segment_tags"`
	SegmentCount  int              `json:"segment_count" yaml:"segment_count"`
	Segments      []SegmentDetail  `json:"segments" yaml:"segments"`
	Validation    ValidationResult `json:"validation" yaml:"validation"`
	Business      BusinessData     `json:"business" yaml:"business"`
	Parties       []Party          `json:"parties,omitempty" yaml:"parties,omitempty"`
	Compliance    ComplianceInfo   `json:"compliance" yaml:"compliance"`
	Metadata      Metadata         `json:"metadata" yaml:"metadata"`
	LLMContext    string           `json:"llm_context" yaml:"llm_context"`
	Summary       string           `json:"summary" yaml:"summary"`
	Status        Status           `json:"status" yaml:"status"`
}
