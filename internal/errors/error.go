package errors

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Category represents the type of error.
type Category string

const (
	CategoryDecode     Category = "decode"
	CategoryValidation Category = "validation"
	CategoryCodegen    Category = "codegen"
	CategoryCLI        Category = "cli"
	CategoryStore      Category = "store"
)

// Location represents a document location.
type Location struct {
	File   string
	Line   int
	Column int
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// KirError is a structured error with document location, suggestions,
// and documentation.
type KirError struct {
	// Code is a unique error identifier (e.g., "E001").
	Code string

	// Category is the error type (decode, validation, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Location is the document location where the error occurred.
	Location *Location

	// Context contains surrounding document lines.
	Context []string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Example is a document fragment showing the correct form.
	Example string

	// DocURL is a link to documentation about this error.
	DocURL string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *KirError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *KirError) Unwrap() error {
	return e.Wrapped
}

// WithLocation adds a document location to the error.
func (e *KirError) WithLocation(file string, line, column int) *KirError {
	e.Location = &Location{File: file, Line: line, Column: column}
	e.Context = readContextLines(file, line, 5)
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *KirError) WithSuggestion(s string) *KirError {
	e.Suggestion = s
	return e
}

// WithExample adds a document example to the error.
func (e *KirError) WithExample(ex string) *KirError {
	e.Example = ex
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *KirError) WithDetail(d string) *KirError {
	e.Detail = d
	return e
}

// WithContext adds custom context lines to the error.
func (e *KirError) WithContext(lines []string) *KirError {
	e.Context = lines
	return e
}

// WithMessagef replaces the message with a formatted one.
func (e *KirError) WithMessagef(format string, args ...any) *KirError {
	e.Message = fmt.Sprintf(format, args...)
	return e
}

// Wrap wraps another error.
func (e *KirError) Wrap(err error) *KirError {
	e.Wrapped = err
	return e
}

// readContextLines reads lines around the specified line number from a file.
func readContextLines(filename string, targetLine, contextSize int) []string {
	file, err := os.Open(filename)
	if err != nil {
		return nil
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	lineNum := 0
	startLine := targetLine - contextSize/2
	endLine := targetLine + contextSize/2

	for scanner.Scan() {
		lineNum++
		if lineNum >= startLine && lineNum <= endLine {
			lines = append(lines, scanner.Text())
		}
		if lineNum > endLine {
			break
		}
	}

	return lines
}

// New creates a KirError from a registered error code.
func New(code string) *KirError {
	template, ok := registry[code]
	if !ok {
		return &KirError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &KirError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
		DocURL:   template.DocURL,
	}
}

// Newf creates a new KirError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *KirError {
	return &KirError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in a KirError.
func FromError(err error, code string) *KirError {
	if err == nil {
		return nil
	}
	if ke, ok := err.(*KirError); ok {
		return ke
	}
	return New(code).Wrap(err)
}

// decodeLocation extracts an offset-based location from a JSON syntax
// error message of the form "... at offset 123". It returns line and
// column 1-based, or (0, 0) when the offset cannot be recovered.
func decodeLocation(data []byte, err error) (line, col int) {
	msg := err.Error()
	idx := strings.LastIndex(msg, "offset ")
	if idx < 0 {
		return 0, 0
	}
	var offset int
	if _, scanErr := fmt.Sscanf(msg[idx:], "offset %d", &offset); scanErr != nil {
		return 0, 0
	}
	if offset < 0 || offset > len(data) {
		return 0, 0
	}
	line, col = 1, 1
	for _, b := range data[:offset] {
		if b == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// FromDecodeError builds a decode error with a location recovered from
// the JSON error's byte offset, when present.
func FromDecodeError(path string, data []byte, err error) *KirError {
	ke := New("E001").Wrap(err)
	if line, col := decodeLocation(data, err); line > 0 {
		ke = ke.WithLocation(path, line, col)
	}
	return ke
}
