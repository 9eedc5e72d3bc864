package ir

import "fmt"

// ValidationError reports a constructor or value argument that violates an
// IR invariant. Input carries the offending value.
type ValidationError struct {
	Field  string
	Input  any
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("ir: invalid %s %v: %s", e.Field, e.Input, e.Reason)
}

// FormatError reports text that does not parse as a dimension or color.
type FormatError struct {
	Kind  string // "dimension" or "color"
	Input string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("ir: malformed %s %q", e.Kind, e.Input)
}
