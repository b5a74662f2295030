// Package templates holds the text templates the generator renders into Go
// source, plus the import bookkeeping for the generated file.
package templates

import (
	"bytes"
	"fmt"
	"text/template"
)

// TemplateRegistry provides a centralized way to access all templates
type TemplateRegistry struct {
	templates map[string]string
}

// NewTemplateRegistry creates a new template registry with all templates
func NewTemplateRegistry() *TemplateRegistry {
	registry := &TemplateRegistry{
		templates: make(map[string]string),
	}

	registry.registerEndpointTemplates()
	registry.registerFileTemplates()

	return registry
}

// Get retrieves a template by name
func (tr *TemplateRegistry) Get(name string) (string, bool) {
	tmpl, exists := tr.templates[name]
	return tmpl, exists
}

// MustGet retrieves a template by name, panics if not found
func (tr *TemplateRegistry) MustGet(name string) string {
	tmpl, exists := tr.templates[name]
	if !exists {
		panic("template not found: " + name)
	}
	return tmpl
}

// Execute renders a registered template with the given data
func (tr *TemplateRegistry) Execute(name string, data interface{}) (string, error) {
	text, exists := tr.templates[name]
	if !exists {
		return "", fmt.Errorf("template not found: %s", name)
	}

	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return buf.String(), nil
}

// registerEndpointTemplates registers the helper function templates
func (tr *TemplateRegistry) registerEndpointTemplates() {
	// Helper for a template with at least one placeholder
	tr.templates["endpoint-helper"] = `// {{.HelperName}} returns the endpoint path for {{.Owner}}.
func {{.HelperName}}(params *{{.ParamsType}}) string {
	return fmt.Sprintf({{.Format}}, {{.Args}})
}`

	// Helper for a purely literal template
	tr.templates["endpoint-helper-static"] = `// {{.HelperName}} returns the endpoint path for {{.Owner}}.
func {{.HelperName}}() string {
	return {{.Literal}}
}`
}

// registerFileTemplates registers the generated file scaffolding
func (tr *TemplateRegistry) registerFileTemplates() {
	tr.templates["file-header"] = `// Code generated by restep. DO NOT EDIT.
// This file was automatically generated and should not be modified manually.

package {{.PackageName}}
{{.Imports}}`
}

// EndpointTemplateData is the data for the endpoint helper templates
type EndpointTemplateData struct {
	HelperName string // generated function name
	Owner      string // annotated function this helper belongs to
	ParamsType string // schema type name ("" for static helpers)
	Format     string // quoted fmt.Sprintf format string
	Args       string // comma-separated field reads, template order
	Literal    string // quoted path literal for static helpers
}

// FileHeaderData is the data for the file header template
type FileHeaderData struct {
	PackageName string
	Imports     string
}
