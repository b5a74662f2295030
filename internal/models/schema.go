package models

import "fmt"

// Field describes a single field of a parameter struct
type Field struct {
	Name string // field name as declared
	Type string // field type as written in source (informational only)
}

// ParameterSchema describes the struct type that supplies placeholder values.
// Fields are kept in declaration order; names are unique within a schema.
type ParameterSchema struct {
	Name   string  // struct type name
	Fields []Field // fields in declaration order
}

// NewParameterSchema builds a schema and enforces field name uniqueness
func NewParameterSchema(name string, fields []Field) (*ParameterSchema, error) {
	seen := make(map[string]bool, len(fields))
	for _, field := range fields {
		if field.Name == "" {
			return nil, fmt.Errorf("schema %s has a field with an empty name", name)
		}
		if seen[field.Name] {
			return nil, fmt.Errorf("schema %s declares field %s more than once", name, field.Name)
		}
		seen[field.Name] = true
	}
	return &ParameterSchema{Name: name, Fields: fields}, nil
}

// Lookup returns the field with the given name, matched case-sensitively
func (s *ParameterSchema) Lookup(name string) (Field, bool) {
	for _, field := range s.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// FieldNames returns the field names in declaration order
func (s *ParameterSchema) FieldNames() []string {
	names := make([]string, len(s.Fields))
	for i, field := range s.Fields {
		names[i] = field.Name
	}
	return names
}
