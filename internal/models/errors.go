package models

import (
	"fmt"
	"strings"
)

// ErrorType categorizes generator errors for reporting
type ErrorType int

const (
	ErrorTypeValidation ErrorType = iota
	ErrorTypeGeneration
	ErrorTypeFileSystem
	ErrorTypeAnnotation
)

// String returns the string representation of the error type
func (t ErrorType) String() string {
	switch t {
	case ErrorTypeValidation:
		return "validation"
	case ErrorTypeGeneration:
		return "generation"
	case ErrorTypeFileSystem:
		return "filesystem"
	case ErrorTypeAnnotation:
		return "annotation"
	default:
		return "unknown"
	}
}

// GeneratorError represents an error that occurred during the generation pass.
// Suggestions and Context feed the CLI reporter.
type GeneratorError struct {
	Type        ErrorType              // type of error
	Message     string                 // error message
	Suggestions []string               // suggested fixes
	Context     map[string]interface{} // additional context for diagnostics
	Cause       error                  // underlying error cause
}

// Error implements the error interface
func (e *GeneratorError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error cause
func (e *GeneratorError) Unwrap() error {
	return e.Cause
}

// SignatureMismatchError reports that an annotated function's parameter list
// disagrees with the endpoint annotation's schema
type SignatureMismatchError struct {
	FuncName   string // annotated function
	SchemaName string // schema named by -Params ("" when absent)
	Reason     string // what disagrees
	FileName   string
	Line       int
}

func (e *SignatureMismatchError) Error() string {
	var b strings.Builder
	if e.FileName != "" {
		fmt.Fprintf(&b, "%s:%d: ", e.FileName, e.Line)
	}
	fmt.Fprintf(&b, "signature mismatch on %s: %s", e.FuncName, e.Reason)
	if e.SchemaName != "" {
		fmt.Fprintf(&b, " (schema %s)", e.SchemaName)
	}
	return b.String()
}
