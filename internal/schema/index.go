// Package schema indexes the parameter struct types visible to a generation
// pass and resolves them by name.
package schema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/k-fujino-kohei/restep/internal/models"
)

// UnknownTypeError reports a -Params type name that is not declared in the
// scanned package
type UnknownTypeError struct {
	Name  string   // the unresolved type name
	Known []string // type names present in the index, sorted
}

func (e *UnknownTypeError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("unknown schema type %s: no struct types found in package", e.Name)
	}
	return fmt.Sprintf("unknown schema type %s (declared structs: %s)", e.Name, strings.Join(e.Known, ", "))
}

// Index maps struct type names to their parameter schemas. It is built once
// per package by the AST parser and consulted by the binder; it performs no
// transformation of field types, only exposing names for matching.
type Index struct {
	schemas map[string]*models.ParameterSchema
}

// NewIndex creates an empty schema index
func NewIndex() *Index {
	return &Index{
		schemas: make(map[string]*models.ParameterSchema),
	}
}

// Add registers a schema under its type name
func (idx *Index) Add(schema *models.ParameterSchema) error {
	if schema.Name == "" {
		return fmt.Errorf("schema type name cannot be empty")
	}
	if _, exists := idx.schemas[schema.Name]; exists {
		return fmt.Errorf("schema type %s is already registered", schema.Name)
	}
	idx.schemas[schema.Name] = schema
	return nil
}

// Resolve looks up a schema by its declared type name
func (idx *Index) Resolve(typeName string) (*models.ParameterSchema, error) {
	schema, exists := idx.schemas[typeName]
	if !exists {
		return nil, &UnknownTypeError{Name: typeName, Known: idx.TypeNames()}
	}
	return schema, nil
}

// Has reports whether a type name is registered
func (idx *Index) Has(typeName string) bool {
	_, exists := idx.schemas[typeName]
	return exists
}

// TypeNames returns the registered type names, sorted for stable output
func (idx *Index) TypeNames() []string {
	names := make([]string, 0, len(idx.schemas))
	for name := range idx.schemas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
