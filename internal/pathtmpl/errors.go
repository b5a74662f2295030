package pathtmpl

import (
	"fmt"
	"strings"
)

// UnterminatedPlaceholderError reports an open delimiter with no matching
// close delimiter before end of input
type UnterminatedPlaceholderError struct {
	Raw    string // the full template
	Offset int    // byte offset of the unmatched open delimiter
}

func (e *UnterminatedPlaceholderError) Error() string {
	return fmt.Sprintf("unterminated placeholder in template %q (opened at offset %d)", e.Raw, e.Offset)
}

// NestedPlaceholderError reports an open delimiter inside a placeholder
type NestedPlaceholderError struct {
	Raw    string
	Offset int // byte offset of the nested open delimiter
}

func (e *NestedPlaceholderError) Error() string {
	return fmt.Sprintf("nested placeholder in template %q (offset %d): placeholders cannot contain placeholders", e.Raw, e.Offset)
}

// InvalidPlaceholderNameError reports a placeholder whose captured text is
// empty or is not a valid identifier
type InvalidPlaceholderNameError struct {
	Raw  string
	Name string // the offending captured text
}

func (e *InvalidPlaceholderNameError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("empty placeholder in template %q", e.Raw)
	}
	return fmt.Sprintf("invalid placeholder name %q in template %q: must match [A-Za-z_][A-Za-z0-9_]*", e.Name, e.Raw)
}

// MissingSchemaError reports placeholders with no schema to bind against
type MissingSchemaError struct {
	Placeholders []string // placeholder names needing values
}

func (e *MissingSchemaError) Error() string {
	return fmt.Sprintf("template has placeholders (%s) but no parameter schema was supplied: add -Params=<TypeName> to the annotation",
		strings.Join(e.Placeholders, ", "))
}

// UnusedSchemaError reports a schema supplied for a template with no
// placeholders
type UnusedSchemaError struct {
	SchemaName string
}

func (e *UnusedSchemaError) Error() string {
	return fmt.Sprintf("parameter schema %s was supplied but the template has no placeholders: remove -Params or add placeholders", e.SchemaName)
}

// UnboundPlaceholderError reports a placeholder that matches no schema field
type UnboundPlaceholderError struct {
	Name       string   // unmatched placeholder
	SchemaName string   // schema searched
	Fields     []string // fields available in the schema
}

func (e *UnboundPlaceholderError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("placeholder {%s} has no matching field in schema %s (schema has no fields)", e.Name, e.SchemaName)
	}
	return fmt.Sprintf("placeholder {%s} has no matching field in schema %s (available: %s)",
		e.Name, e.SchemaName, strings.Join(e.Fields, ", "))
}
