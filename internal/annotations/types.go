package annotations

import "fmt"

// AnnotationType represents the type of annotation
type AnnotationType int

const (
	EndpointAnnotation AnnotationType = iota
)

// String returns the string representation of the annotation type
func (a AnnotationType) String() string {
	switch a {
	case EndpointAnnotation:
		return "endpoint"
	default:
		return "unknown"
	}
}

// ParseAnnotationType converts string to AnnotationType
func ParseAnnotationType(s string) (AnnotationType, error) {
	switch s {
	case "endpoint":
		return EndpointAnnotation, nil
	default:
		return 0, fmt.Errorf("unknown annotation type: %s", s)
	}
}

// SourceLocation represents the location of an annotation in source code
type SourceLocation struct {
	File   string // file path
	Line   int    // line number (1-based)
	Column int    // column number (1-based)
}

// String returns a formatted file:line:column representation
func (l SourceLocation) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// ParsedAnnotation represents a fully parsed endpoint annotation
type ParsedAnnotation struct {
	Type       AnnotationType    // annotation type enum
	Template   string            // positional path template argument
	Parameters map[string]string // named parameters (-Key=Value)
	Location   SourceLocation    // source location
	Raw        string            // original annotation text
}

// GetString returns a named parameter value with optional default
func (p *ParsedAnnotation) GetString(name string, defaultValue ...string) string {
	if value, exists := p.Parameters[name]; exists {
		return value
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

// HasParameter checks if a named parameter was supplied
func (p *ParsedAnnotation) HasParameter(name string) bool {
	_, exists := p.Parameters[name]
	return exists
}

// ParameterSpec defines the specification for an annotation parameter
type ParameterSpec struct {
	Required    bool               // whether the parameter is required
	Description string             // parameter description
	Validator   func(string) error // custom validator function
}

// AnnotationSchema defines the schema for an annotation type
type AnnotationSchema struct {
	Type             AnnotationType           // annotation type enum
	Description      string                   // human-readable description
	RequiresTemplate bool                     // whether the positional template argument is required
	Parameters       map[string]ParameterSpec // named parameter specifications
	Examples         []string                 // usage examples
}
