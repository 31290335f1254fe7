package models

// Severity classifies a validation issue.
type Severity string

const (
	// SeverityError marks a structural defect that prevents the document
	// from being considered valid.
	SeverityError Severity = "error"
	// SeverityWarning marks a deviation that does not block processing.
	SeverityWarning Severity = "warning"
	// SeverityInfo marks a purely advisory finding.
	SeverityInfo Severity = "info"
)

// Issue is one validation finding. Code is a stable machine-readable
// identifier; Suggestion is a remediation hint for the reader.
type Issue struct {
	Segment    string   `json:"segment" yaml:"segment"`
	Code       string   `json:"code" yaml:"code"`
	Message    string   `json:"message" yaml:"message"`
	Severity   Severity `json:"severity" yaml:"severity"`
	Suggestion string   `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// ValidationResult carries all issues found by the structural
// validator together with per-severity counts.
type ValidationResult struct {
	ErrorCount   int     `json:"error_count" yaml:"error_count"`
	WarningCount int     `json:"warning_count" yaml:"warning_count"`
	Issues       []Issue `json:"issues" yaml:"issues"`
}

// Add appends an issue and updates the severity counters.
func (r *ValidationResult) Add(issue Issue) {
	r.Issues = append(r.Issues, issue)
	switch issue.Severity {
	case SeverityError:
		r.ErrorCount++
	case SeverityWarning:
		r.WarningCount++
	}
}

// IsValid reports whether no error-severity issues were recorded.
func (r ValidationResult) IsValid() bool {
	return r.ErrorCount == 0
}
