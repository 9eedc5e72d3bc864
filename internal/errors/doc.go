// Package errors provides structured, actionable error messages for the
// kir command line tools.
//
// The errors package implements an error system that:
//   - Shows exact document locations (file, line, column)
//   - Explains what went wrong in plain language
//   - Suggests how to fix issues with document examples
//   - Links to documentation for deeper understanding
//
// # Error Categories
//
// Errors are organized into categories:
//   - decode: Document parsing errors (invalid JSON, missing root)
//   - validation: Value errors (bad heading level, malformed color)
//   - codegen: Source regeneration errors
//   - cli: Command invocation errors (missing file, bad flag)
//   - store: Publish and fetch errors
//
// # Error Codes
//
// Each error has a unique code (e.g., "E001") that maps to:
//   - A short message describing the error
//   - A detailed explanation
//   - A documentation URL
//
// # Usage
//
//	err := errors.New("E001").
//	    WithLocation("app.kir", 15, 12).
//	    WithSuggestion("Check for a trailing comma near line 15")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E001: Document is not valid JSON
//	//
//	//   app.kir:15:12
//	//   ...
//	//
//	//   Learn more: https://kryon.dev/docs/errors/E001
package errors
