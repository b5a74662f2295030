// Package generator turns bound path templates into Go source: one helper
// function per endpoint annotation, assembled into a single generated file
// per package.
package generator

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/k-fujino-kohei/restep/internal/models"
	"github.com/k-fujino-kohei/restep/internal/pathtmpl"
	"github.com/k-fujino-kohei/restep/internal/schema"
	"github.com/k-fujino-kohei/restep/internal/templates"
	"github.com/k-fujino-kohei/restep/internal/utils"
)

// GeneratedFileName is the name of the per-package generated file
const GeneratedFileName = "autogen_endpoints.go"

// Generator implements the endpoint code generation pass
type Generator struct {
	templates *templates.TemplateRegistry
	delims    pathtmpl.Delims
}

// NewGenerator creates a generator using the default `{`/`}` delimiters
func NewGenerator() *Generator {
	return NewGeneratorWithDelims(pathtmpl.DefaultDelims)
}

// NewGeneratorWithDelims creates a generator with a custom delimiter pair
func NewGeneratorWithDelims(delims pathtmpl.Delims) *Generator {
	return &Generator{
		templates: templates.NewTemplateRegistry(),
		delims:    delims,
	}
}

// GenerateEndpoint compiles a single annotation into helper function source.
// This is the whole generation pass for one endpoint: parse the template,
// resolve and bind the schema, then render. Any failure aborts with no
// output; the emitted helper itself has no error path left.
func (g *Generator) GenerateEndpoint(endpoint models.EndpointMetadata, idx *schema.Index) (string, error) {
	tmpl, err := pathtmpl.ParseWithDelims(endpoint.Template, g.delims)
	if err != nil {
		return "", g.wrapEndpointError(endpoint, err, []string{
			"Check that every placeholder is closed and contains a valid identifier",
			"Placeholders look like {FieldName}; nesting is not supported",
		})
	}

	var paramsSchema *models.ParameterSchema
	if endpoint.ParamsType != "" {
		paramsSchema, err = idx.Resolve(endpoint.ParamsType)
		if err != nil {
			return "", g.wrapEndpointError(endpoint, err, []string{
				fmt.Sprintf("Declare a struct type named %s in the same package", endpoint.ParamsType),
				"The -Params value must name a struct type visible to the scan",
			})
		}
	}

	bound, err := pathtmpl.Bind(tmpl, paramsSchema)
	if err != nil {
		return "", g.wrapEndpointError(endpoint, err, []string{
			"Every placeholder must exactly match a field name (case-sensitive)",
			"Supply -Params when the template has placeholders, and omit it when it does not",
		})
	}

	return g.renderHelper(endpoint, bound)
}

// GenerateFile generates the complete endpoints file for a package. Returns
// nil when the package has no endpoint annotations.
func (g *Generator) GenerateFile(metadata *models.PackageMetadata, idx *schema.Index) (*models.GeneratedFile, error) {
	if metadata == nil {
		return nil, fmt.Errorf("metadata cannot be nil")
	}
	if len(metadata.Endpoints) == 0 {
		return nil, nil
	}

	if err := g.checkHelperNames(metadata); err != nil {
		return nil, err
	}

	imports := templates.NewImportManager()
	helpers := make([]string, 0, len(metadata.Endpoints))
	helperNames := make([]string, 0, len(metadata.Endpoints))

	for _, endpoint := range metadata.Endpoints {
		helper, err := g.GenerateEndpoint(endpoint, idx)
		if err != nil {
			return nil, err
		}
		helpers = append(helpers, helper)
		helperNames = append(helperNames, endpoint.HelperName)

		if strings.Contains(helper, "fmt.Sprintf") {
			imports.Add("fmt")
		}
	}

	header, err := g.templates.Execute("file-header", templates.FileHeaderData{
		PackageName: metadata.PackageName,
		Imports:     imports.Render(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render file header: %w", err)
	}

	content := header + "\n" + strings.Join(helpers, "\n\n") + "\n"

	formatted, err := utils.FormatGoCodeString(content)
	if err != nil {
		return nil, &models.GeneratorError{
			Type:    models.ErrorTypeGeneration,
			Message: fmt.Sprintf("generated code for package %s is not valid Go: %v", metadata.PackageName, err),
			Cause:   err,
		}
	}

	return &models.GeneratedFile{
		PackageName: metadata.PackageName,
		FilePath:    filepath.Join(metadata.PackagePath, GeneratedFileName),
		Content:     formatted,
		Helpers:     helperNames,
	}, nil
}

// renderHelper emits one helper function from the bound segment list
func (g *Generator) renderHelper(endpoint models.EndpointMetadata, bound []pathtmpl.BoundSegment) (string, error) {
	format, args := buildFormat(bound)

	data := templates.EndpointTemplateData{
		HelperName: endpoint.HelperName,
		Owner:      ownerName(endpoint),
	}

	if len(args) == 0 {
		data.Literal = format
		return g.templates.Execute("endpoint-helper-static", data)
	}

	data.ParamsType = endpoint.ParamsType
	data.Format = format
	data.Args = strings.Join(args, ", ")
	return g.templates.Execute("endpoint-helper", data)
}

// buildFormat walks the bound entries in template order and produces the
// quoted format string plus the field reads, one %v per binding. With no
// bindings the format string is the final path literal itself, so literal
// percent signs are only doubled when the string actually reaches Sprintf.
func buildFormat(bound []pathtmpl.BoundSegment) (string, []string) {
	var args []string
	for _, seg := range bound {
		if seg.Kind == pathtmpl.SegmentPlaceholder {
			args = append(args, "params."+seg.Field.Name)
		}
	}

	var b strings.Builder
	for _, seg := range bound {
		switch seg.Kind {
		case pathtmpl.SegmentLiteral:
			if len(args) > 0 {
				b.WriteString(strings.ReplaceAll(seg.Literal, "%", "%%"))
			} else {
				b.WriteString(seg.Literal)
			}
		case pathtmpl.SegmentPlaceholder:
			b.WriteString("%v")
		}
	}

	return strconv.Quote(b.String()), args
}

// checkHelperNames rejects duplicate generated function names in one package
func (g *Generator) checkHelperNames(metadata *models.PackageMetadata) error {
	seen := make(map[string]models.EndpointMetadata, len(metadata.Endpoints))
	for _, endpoint := range metadata.Endpoints {
		if prev, exists := seen[endpoint.HelperName]; exists {
			return &models.GeneratorError{
				Type: models.ErrorTypeValidation,
				Message: fmt.Sprintf("helper name %s is generated for both %s and %s in package %s",
					endpoint.HelperName, ownerName(prev), ownerName(endpoint), metadata.PackageName),
				Suggestions: []string{
					"Use -Name to give one of the annotations a distinct helper name",
				},
				Context: map[string]interface{}{
					"helper_name": endpoint.HelperName,
					"package":     metadata.PackageName,
				},
			}
		}
		seen[endpoint.HelperName] = endpoint
	}
	return nil
}

// wrapEndpointError attaches location and suggestions to a compile error
func (g *Generator) wrapEndpointError(endpoint models.EndpointMetadata, cause error, suggestions []string) error {
	return &models.GeneratorError{
		Type:        models.ErrorTypeGeneration,
		Message:     fmt.Sprintf("%s:%d: endpoint %s: %v", endpoint.FileName, endpoint.Line, ownerName(endpoint), cause),
		Suggestions: suggestions,
		Context: map[string]interface{}{
			"template": endpoint.Template,
			"params":   endpoint.ParamsType,
		},
		Cause: cause,
	}
}

// ownerName names the annotated function for messages and doc comments
func ownerName(endpoint models.EndpointMetadata) string {
	if endpoint.Receiver != "" {
		return endpoint.Receiver + "." + endpoint.FuncName
	}
	return endpoint.FuncName
}
