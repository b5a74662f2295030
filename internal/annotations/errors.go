package annotations

import (
	"fmt"
	"strings"
)

// AnnotationError defines the interface for annotation-related errors
type AnnotationError interface {
	error
	Location() SourceLocation
	Suggestion() string
	Code() ErrorCode
}

// ErrorCode represents different types of annotation errors
type ErrorCode int

const (
	SyntaxErrorCode ErrorCode = iota
	ValidationErrorCode
	SchemaErrorCode
)

// String returns the string representation of the error code
func (e ErrorCode) String() string {
	switch e {
	case SyntaxErrorCode:
		return "SyntaxError"
	case ValidationErrorCode:
		return "ValidationError"
	case SchemaErrorCode:
		return "SchemaError"
	default:
		return "UnknownError"
	}
}

// SyntaxError represents a malformed annotation line
type SyntaxError struct {
	Msg  string         // error message
	Loc  SourceLocation // where the error occurred
	Hint string         // suggested fix
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: syntax error: %s. %s", e.Loc, e.Msg, e.Hint)
}

func (e *SyntaxError) Location() SourceLocation { return e.Loc }
func (e *SyntaxError) Suggestion() string       { return e.Hint }
func (e *SyntaxError) Code() ErrorCode          { return SyntaxErrorCode }

// ValidationError represents an annotation parameter that failed validation
type ValidationError struct {
	Parameter string         // parameter name that failed validation
	Expected  string         // what was expected
	Actual    string         // what was provided
	Loc       SourceLocation // where the error occurred
	Hint      string         // suggested fix
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: parameter '%s' validation failed: expected %s, got %s. %s",
		e.Loc, e.Parameter, e.Expected, e.Actual, e.Hint)
}

func (e *ValidationError) Location() SourceLocation { return e.Loc }
func (e *ValidationError) Suggestion() string       { return e.Hint }
func (e *ValidationError) Code() ErrorCode          { return ValidationErrorCode }

// SchemaError represents an annotation that disagrees with its schema
type SchemaError struct {
	Msg  string
	Loc  SourceLocation
	Hint string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: schema error: %s. %s", e.Loc, e.Msg, e.Hint)
}

func (e *SchemaError) Location() SourceLocation { return e.Loc }
func (e *SchemaError) Suggestion() string       { return e.Hint }
func (e *SchemaError) Code() ErrorCode          { return SchemaErrorCode }

// newSyntaxError creates a syntax error with a context-aware suggestion
func newSyntaxError(msg string, loc SourceLocation) *SyntaxError {
	return &SyntaxError{Msg: msg, Loc: loc, Hint: syntaxSuggestion(msg)}
}

// syntaxSuggestion provides fix suggestions keyed off the error message
func syntaxSuggestion(msg string) string {
	msg = strings.ToLower(msg)
	switch {
	case strings.Contains(msg, "prefix"):
		return "Annotation must start with '//restep::' (note the double colon)"
	case strings.Contains(msg, "missing annotation type"):
		return "Try: //restep::endpoint /customers/{CustomerID} -Params=PathParameters"
	case strings.Contains(msg, "template"):
		return "The first argument is the path template, e.g. /customers/{CustomerID}; quote templates that do not start with '/'"
	case strings.Contains(msg, "parameter"):
		return "Named arguments use the form -Params=TypeName or -Name=helperName"
	default:
		return "Expected: //restep::endpoint <template> [-Params=TypeName] [-Name=helperName]"
	}
}
