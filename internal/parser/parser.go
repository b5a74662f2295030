// Package parser discovers restep annotations in Go source and builds the
// metadata the generator consumes: annotated functions with their declared
// parameter lists, and a schema index of the package's struct types.
package parser

import (
	"fmt"
	"go/ast"
	goparser "go/parser"
	"go/token"
	"go/types"
	"io/fs"
	"sort"
	"strings"

	"github.com/k-fujino-kohei/restep/internal/annotations"
	"github.com/k-fujino-kohei/restep/internal/models"
	"github.com/k-fujino-kohei/restep/internal/schema"
)

// Parser extracts endpoint annotations and parameter schemas from Go packages
type Parser struct {
	fileSet     *token.FileSet
	annotations *annotations.Parser
}

// NewParser creates a new source parser
func NewParser() *Parser {
	return &Parser{
		fileSet:     token.NewFileSet(),
		annotations: annotations.NewParser(annotations.DefaultRegistry()),
	}
}

// ParseSource parses source code from a string, primarily for tests
func (p *Parser) ParseSource(filename, source string) (*models.PackageMetadata, *schema.Index, error) {
	file, err := goparser.ParseFile(p.fileSet, filename, source, goparser.ParseComments)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse source: %w", err)
	}

	metadata := &models.PackageMetadata{
		PackageName: file.Name.Name,
		PackagePath: "./",
	}

	idx := schema.NewIndex()
	if err := p.collectSchemas([]*ast.File{file}, idx); err != nil {
		return nil, nil, err
	}
	if err := p.collectEndpoints(file, filename, metadata); err != nil {
		return nil, nil, err
	}
	if err := p.validateSignatures(metadata, idx); err != nil {
		return nil, nil, err
	}

	return metadata, idx, nil
}

// ParseDirectory scans a single package directory for annotated functions and
// struct schemas
func (p *Parser) ParseDirectory(path string) (*models.PackageMetadata, *schema.Index, error) {
	// Test files and previously generated files never carry annotations
	filter := func(info fs.FileInfo) bool {
		name := info.Name()
		return !strings.HasSuffix(name, "_test.go") && !strings.HasPrefix(name, "autogen_")
	}

	pkgs, err := goparser.ParseDir(p.fileSet, path, filter, goparser.ParseComments)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse directory %s: %w", path, err)
	}
	if len(pkgs) == 0 {
		return nil, nil, fmt.Errorf("no Go packages found in directory %s", path)
	}
	if len(pkgs) > 1 {
		return nil, nil, fmt.Errorf("multiple packages found in directory %s", path)
	}

	var pkg *ast.Package
	var packageName string
	for name, candidate := range pkgs {
		pkg = candidate
		packageName = name
	}

	metadata := &models.PackageMetadata{
		PackageName: packageName,
		PackagePath: path,
	}

	// Deterministic file order so endpoint order is stable across runs
	fileNames := make([]string, 0, len(pkg.Files))
	for fileName := range pkg.Files {
		fileNames = append(fileNames, fileName)
	}
	sort.Strings(fileNames)

	files := make([]*ast.File, 0, len(fileNames))
	for _, fileName := range fileNames {
		files = append(files, pkg.Files[fileName])
	}

	idx := schema.NewIndex()
	if err := p.collectSchemas(files, idx); err != nil {
		return nil, nil, err
	}

	for _, fileName := range fileNames {
		if err := p.collectEndpoints(pkg.Files[fileName], fileName, metadata); err != nil {
			return nil, nil, err
		}
	}

	if err := p.validateSignatures(metadata, idx); err != nil {
		return nil, nil, err
	}

	return metadata, idx, nil
}

// collectSchemas indexes every struct type declared in the files
func (p *Parser) collectSchemas(files []*ast.File, idx *schema.Index) error {
	for _, file := range files {
		for _, decl := range file.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok || genDecl.Tok != token.TYPE {
				continue
			}
			for _, spec := range genDecl.Specs {
				typeSpec, ok := spec.(*ast.TypeSpec)
				if !ok {
					continue
				}
				structType, ok := typeSpec.Type.(*ast.StructType)
				if !ok {
					continue
				}

				parameterSchema, err := buildSchema(typeSpec.Name.Name, structType)
				if err != nil {
					return err
				}
				if err := idx.Add(parameterSchema); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// buildSchema converts a struct declaration into a parameter schema,
// preserving field declaration order. Embedded fields are skipped: they have
// no name of their own to match a placeholder against.
func buildSchema(name string, structType *ast.StructType) (*models.ParameterSchema, error) {
	var fields []models.Field
	for _, field := range structType.Fields.List {
		if len(field.Names) == 0 {
			continue
		}
		typeName := types.ExprString(field.Type)
		for _, ident := range field.Names {
			fields = append(fields, models.Field{Name: ident.Name, Type: typeName})
		}
	}
	return models.NewParameterSchema(name, fields)
}

// collectEndpoints extracts endpoint annotations from function doc comments
func (p *Parser) collectEndpoints(file *ast.File, fileName string, metadata *models.PackageMetadata) error {
	for _, decl := range file.Decls {
		funcDecl, ok := decl.(*ast.FuncDecl)
		if !ok || funcDecl.Doc == nil {
			continue
		}

		for _, comment := range funcDecl.Doc.List {
			if !annotations.IsAnnotation(comment.Text) {
				continue
			}

			position := p.fileSet.Position(comment.Pos())
			location := annotations.SourceLocation{
				File:   fileName,
				Line:   position.Line,
				Column: position.Column,
			}

			parsed, err := p.annotations.ParseAnnotation(comment.Text, location)
			if err != nil {
				return err
			}

			endpoint := models.EndpointMetadata{
				FuncName:       funcDecl.Name.Name,
				Receiver:       receiverName(funcDecl),
				HelperName:     parsed.GetString(annotations.ParamName, defaultHelperName(funcDecl.Name.Name)),
				Template:       parsed.Template,
				ParamsType:     parsed.GetString(annotations.ParamParams),
				DeclaredParams: declaredParams(funcDecl),
				FileName:       fileName,
				Line:           position.Line,
			}
			metadata.Endpoints = append(metadata.Endpoints, endpoint)
		}
	}
	return nil
}

// receiverName returns the receiver type name for methods, "" for functions
func receiverName(funcDecl *ast.FuncDecl) string {
	if funcDecl.Recv == nil || len(funcDecl.Recv.List) == 0 {
		return ""
	}
	expr := funcDecl.Recv.List[0].Type
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	if ident, ok := expr.(*ast.Ident); ok {
		return ident.Name
	}
	return types.ExprString(expr)
}

// declaredParams flattens a function's formal parameter list
func declaredParams(funcDecl *ast.FuncDecl) []models.DeclaredParam {
	if funcDecl.Type.Params == nil {
		return nil
	}

	var params []models.DeclaredParam
	for _, field := range funcDecl.Type.Params.List {
		typeExpr := field.Type
		ptr := false
		if star, ok := typeExpr.(*ast.StarExpr); ok {
			typeExpr = star.X
			ptr = true
		}
		typeName := types.ExprString(typeExpr)

		if len(field.Names) == 0 {
			params = append(params, models.DeclaredParam{Type: typeName, Ptr: ptr})
			continue
		}
		for _, ident := range field.Names {
			params = append(params, models.DeclaredParam{Name: ident.Name, Type: typeName, Ptr: ptr})
		}
	}
	return params
}

// defaultHelperName derives the generated helper's name from the annotated
// function: GetCustomer -> getCustomerEndpoint
func defaultHelperName(funcName string) string {
	if funcName == "" {
		return "endpoint"
	}
	return strings.ToLower(funcName[:1]) + funcName[1:] + "Endpoint"
}
