// Package parsererror defines the typed errors of the analysis engine.
// Structural data-quality findings are never errors (they land in the
// ValidationResult); these types cover contract violations and the few
// hard failures the commands can hit around the core.
package parsererror

import "fmt"

// ContractError indicates an invalid call contract: a caller bug, not
// a data-quality issue. It is the only error class the analysis engine
// itself returns.
type ContractError struct {
	Field  string
	Reason string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("invalid call contract: %s: %s", e.Field, e.Reason)
}

// ParseError represents a failure while parsing a specific value out
// of a segment. The engine degrades these to safe defaults; the type
// exists for tools built on the lower-level parsing functions.
type ParseError struct {
	Segment string
	Field   string
	Value   string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse field %s='%s': %v", e.Segment, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// InvalidFormatError indicates that an input file is not an EDIFACT
// interchange at all.
type InvalidFormatError struct {
	FilePath string
	Msg      string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid EDI format in file '%s': %s", e.FilePath, e.Msg)
}

// StoreError indicates a persistence failure in the analysis store.
type StoreError struct {
	ID  string
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("analysis store: %s failed for '%s': %v", e.Op, e.ID, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
