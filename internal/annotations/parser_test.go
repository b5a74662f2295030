package annotations

import (
	"strings"
	"testing"
)

func testLocation() SourceLocation {
	return SourceLocation{File: "client.go", Line: 10, Column: 1}
}

func TestParseEndpointAnnotation(t *testing.T) {
	parser := NewParser(DefaultRegistry())

	annotation, err := parser.ParseAnnotation("//restep::endpoint /customers", testLocation())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if annotation.Type != EndpointAnnotation {
		t.Errorf("expected EndpointAnnotation, got %v", annotation.Type)
	}
	if annotation.Template != "/customers" {
		t.Errorf("expected template /customers, got %q", annotation.Template)
	}
	if len(annotation.Parameters) != 0 {
		t.Errorf("expected no parameters, got %v", annotation.Parameters)
	}
}

func TestParseEndpointAnnotationWithParams(t *testing.T) {
	parser := NewParser(DefaultRegistry())

	annotation, err := parser.ParseAnnotation(
		"//restep::endpoint /customers/{CustomerID} -Params=PathParameters", testLocation())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if annotation.Template != "/customers/{CustomerID}" {
		t.Errorf("unexpected template %q", annotation.Template)
	}
	if annotation.GetString(ParamParams) != "PathParameters" {
		t.Errorf("expected Params=PathParameters, got %q", annotation.GetString(ParamParams))
	}
}

func TestParseEndpointAnnotationWithName(t *testing.T) {
	parser := NewParser(DefaultRegistry())

	annotation, err := parser.ParseAnnotation(
		"//restep::endpoint /customers/{CustomerID} -Params=PathParameters -Name=customerPath", testLocation())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if annotation.GetString(ParamName) != "customerPath" {
		t.Errorf("expected Name=customerPath, got %q", annotation.GetString(ParamName))
	}
}

func TestParseQuotedTemplate(t *testing.T) {
	parser := NewParser(DefaultRegistry())

	annotation, err := parser.ParseAnnotation(`//restep::endpoint "{a}{b}" -Params=Pair`, testLocation())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if annotation.Template != "{a}{b}" {
		t.Errorf("expected template {a}{b}, got %q", annotation.Template)
	}
}

func TestFlexibleCommentPrefix(t *testing.T) {
	parser := NewParser(DefaultRegistry())

	tests := []struct {
		name  string
		input string
	}{
		{"standard", "//restep::endpoint /health"},
		{"space after slashes", "// restep::endpoint /health"},
		{"multiple spaces", "//  restep::endpoint /health"},
		{"tab after slashes", "//\trestep::endpoint /health"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			annotation, err := parser.ParseAnnotation(tt.input, testLocation())
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if annotation.Template != "/health" {
				t.Errorf("expected template /health, got %q", annotation.Template)
			}
		})
	}
}

func TestParseAnnotationErrors(t *testing.T) {
	parser := NewParser(DefaultRegistry())

	tests := []struct {
		name     string
		input    string
		wantCode ErrorCode
		contains string
	}{
		{
			name:     "missing prefix",
			input:    "// endpoint /customers",
			wantCode: SyntaxErrorCode,
			contains: "restep::",
		},
		{
			name:     "unknown annotation type",
			input:    "//restep::route /customers",
			wantCode: SyntaxErrorCode,
			contains: "unknown annotation type",
		},
		{
			name:     "missing template",
			input:    "//restep::endpoint",
			wantCode: SyntaxErrorCode,
			contains: "missing path template",
		},
		{
			name:     "unknown parameter",
			input:    "//restep::endpoint /a -Bogus=Thing",
			wantCode: SchemaErrorCode,
			contains: "unknown parameter",
		},
		{
			name:     "parameter without value",
			input:    "//restep::endpoint /a -Params",
			wantCode: ValidationErrorCode,
			contains: "bare flag",
		},
		{
			name:     "duplicate parameter",
			input:    "//restep::endpoint /a -Params=A -Params=B",
			wantCode: ValidationErrorCode,
			contains: "multiple occurrences",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.ParseAnnotation(tt.input, testLocation())
			if err == nil {
				t.Fatalf("expected error for %q", tt.input)
			}

			annErr, ok := err.(AnnotationError)
			if !ok {
				t.Fatalf("expected AnnotationError, got %T: %v", err, err)
			}
			if annErr.Code() != tt.wantCode {
				t.Errorf("expected code %v, got %v", tt.wantCode, annErr.Code())
			}
			if !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("expected error containing %q, got: %v", tt.contains, err)
			}
			if annErr.Suggestion() == "" {
				t.Errorf("expected a fix suggestion for %q", tt.input)
			}
		})
	}
}

func TestIsAnnotation(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"//restep::endpoint /a", true},
		{"// restep::endpoint /a", true},
		{"// just a comment", false},
		{"// restep controls this", false},
		{"//nolint:gocritic", false},
	}

	for _, tt := range tests {
		if got := IsAnnotation(tt.input); got != tt.expected {
			t.Errorf("IsAnnotation(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestErrorLocationFormatting(t *testing.T) {
	parser := NewParser(DefaultRegistry())

	_, err := parser.ParseAnnotation("//restep::endpoint", SourceLocation{File: "api.go", Line: 42, Column: 3})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "api.go:42:3") {
		t.Errorf("expected location in message, got: %v", err)
	}
}
