package annotations

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// AnnotationPrefix is the marker that introduces a restep annotation inside a
// comment
const AnnotationPrefix = "restep::"

// annotationLine is the participle grammar for a full annotation comment:
//
//	//restep::endpoint <template> [-Key=Value]...
type annotationLine struct {
	Comment   string          `parser:"@Comment"`
	Tool      string          `parser:"@Tool"`
	Separator string          `parser:"@Separator"`
	Type      string          `parser:"@Ident"`
	Template  string          `parser:"@(Path | String | Ident)?"`
	Args      []annotationArg `parser:"@@*"`
}

// annotationArg is a single named argument such as -Params=PathParameters
type annotationArg struct {
	Key   string  `parser:"Dash @Ident"`
	Value *string `parser:"(Equals @(String | Path | Ident))?"`
}

// Parser parses restep annotation comments using a participle grammar and
// validates the result against the registered annotation schemas
type Parser struct {
	parser   *participle.Parser[annotationLine]
	registry AnnotationRegistry
}

// NewParser creates a new annotation parser backed by the given registry
func NewParser(registry AnnotationRegistry) *Parser {
	lex := lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `//`},
		{Name: "Tool", Pattern: `restep`},
		{Name: "Separator", Pattern: `::`},
		{Name: "String", Pattern: `"(\\"|[^"])*"`},
		{Name: "Path", Pattern: `/[^\s]*`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Equals", Pattern: `=`},
		{Name: "Dash", Pattern: `-`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	parser := participle.MustBuild[annotationLine](
		participle.Lexer(lex),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)

	return &Parser{
		parser:   parser,
		registry: registry,
	}
}

// IsAnnotation reports whether a comment line carries the restep:: marker
func IsAnnotation(comment string) bool {
	text := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(comment), "//"))
	return strings.HasPrefix(text, AnnotationPrefix)
}

// ParseAnnotation parses a single annotation comment line
func (p *Parser) ParseAnnotation(comment string, location SourceLocation) (*ParsedAnnotation, error) {
	trimmed := strings.TrimSpace(comment)
	if !strings.HasPrefix(trimmed, "//") {
		return nil, newSyntaxError("annotation must start with '//'", location)
	}
	if !IsAnnotation(trimmed) {
		return nil, newSyntaxError("missing 'restep::' prefix", location)
	}

	line, err := p.parser.ParseString(location.File, trimmed)
	if err != nil {
		return nil, newSyntaxError(fmt.Sprintf("invalid annotation: %v", err), location)
	}

	annotationType, err := ParseAnnotationType(line.Type)
	if err != nil {
		return nil, newSyntaxError(fmt.Sprintf("missing annotation type: %v", err), location)
	}
	if !p.registry.IsRegistered(annotationType) {
		return nil, &SchemaError{
			Msg:  fmt.Sprintf("annotation type '%s' has no registered schema", line.Type),
			Loc:  location,
			Hint: "Only //restep::endpoint is supported",
		}
	}

	schema, err := p.registry.GetSchema(annotationType)
	if err != nil {
		return nil, &SchemaError{Msg: err.Error(), Loc: location, Hint: "Register the annotation schema first"}
	}

	parsed := &ParsedAnnotation{
		Type:       annotationType,
		Template:   unquote(line.Template),
		Parameters: make(map[string]string),
		Location:   location,
		Raw:        trimmed,
	}

	if schema.RequiresTemplate && parsed.Template == "" {
		return nil, newSyntaxError("missing path template argument", location)
	}

	for _, arg := range line.Args {
		spec, known := schema.Parameters[arg.Key]
		if !known {
			return nil, &SchemaError{
				Msg:  fmt.Sprintf("unknown parameter '-%s' for annotation type %s", arg.Key, annotationType),
				Loc:  location,
				Hint: fmt.Sprintf("Supported parameters: %s", strings.Join(parameterNames(schema), ", ")),
			}
		}
		if _, dup := parsed.Parameters[arg.Key]; dup {
			return nil, &ValidationError{
				Parameter: arg.Key,
				Expected:  "a single occurrence",
				Actual:    "multiple occurrences",
				Loc:       location,
				Hint:      fmt.Sprintf("Remove the duplicate -%s argument", arg.Key),
			}
		}
		if arg.Value == nil {
			return nil, &ValidationError{
				Parameter: arg.Key,
				Expected:  "a value",
				Actual:    "bare flag",
				Loc:       location,
				Hint:      fmt.Sprintf("Use -%s=<value>", arg.Key),
			}
		}

		value := unquote(*arg.Value)
		if spec.Validator != nil {
			if err := spec.Validator(value); err != nil {
				return nil, &ValidationError{
					Parameter: arg.Key,
					Expected:  spec.Description,
					Actual:    value,
					Loc:       location,
					Hint:      err.Error(),
				}
			}
		}
		parsed.Parameters[arg.Key] = value
	}

	for name, spec := range schema.Parameters {
		if spec.Required {
			if _, exists := parsed.Parameters[name]; !exists {
				return nil, &SchemaError{
					Msg:  fmt.Sprintf("missing required parameter '-%s'", name),
					Loc:  location,
					Hint: spec.Description,
				}
			}
		}
	}

	return parsed, nil
}

// parameterNames lists a schema's parameter names for error messages
func parameterNames(schema AnnotationSchema) []string {
	names := make([]string, 0, len(schema.Parameters))
	for name := range schema.Parameters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// unquote strips surrounding double quotes from a lexed String token
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return strings.ReplaceAll(s[1:len(s)-1], `\"`, `"`)
	}
	return s
}
