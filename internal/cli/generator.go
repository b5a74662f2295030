package cli

import (
	"fmt"
	"time"

	"github.com/k-fujino-kohei/restep/internal/generator"
	"github.com/k-fujino-kohei/restep/internal/models"
	"github.com/k-fujino-kohei/restep/internal/parser"
	"github.com/k-fujino-kohei/restep/internal/utils"
)

// Generator coordinates the CLI generation process
type Generator struct {
	scanner        *DirectoryScanner
	moduleResolver *ModuleResolver
	parser         *parser.Parser
	codeGenerator  *generator.Generator
	reporter       *DiagnosticReporter
	diagnostics    *utils.DiagnosticSystem
	customModule   string
	summary        GenerationSummary
}

// NewGenerator creates a new CLI generator
func NewGenerator(verbose bool) *Generator {
	return NewGeneratorWithDiagnostics(verbose, nil)
}

// NewGeneratorWithDiagnostics creates a new CLI generator with a diagnostic system
func NewGeneratorWithDiagnostics(verbose bool, diagnostics *utils.DiagnosticSystem) *Generator {
	return &Generator{
		scanner:        NewDirectoryScanner(),
		moduleResolver: NewModuleResolver(),
		parser:         parser.NewParser(),
		codeGenerator:  generator.NewGenerator(),
		reporter:       NewDiagnosticReporter(verbose),
		diagnostics:    diagnostics,
		summary:        GenerationSummary{GeneratedFiles: make([]string, 0)},
	}
}

// SetCustomModule sets a custom module name
func (g *Generator) SetCustomModule(moduleName string) {
	g.customModule = moduleName
}

// GetSummary returns the generation summary
func (g *Generator) GetSummary() GenerationSummary {
	return g.summary
}

// Generate executes the generation process for the given directories
func (g *Generator) Generate(directories []string) error {
	config := Config{
		Directories: directories,
		Verbose:     g.reporter != nil && g.reporter.verbose,
		ModuleName:  g.customModule,
	}

	return g.Run(config)
}

// Run executes the complete generation process
func (g *Generator) Run(config Config) error {
	startTime := time.Now()

	g.summary = GenerationSummary{GeneratedFiles: make([]string, 0)}

	if g.diagnostics != nil {
		g.diagnostics.Verbose("Starting endpoint generation at %s", startTime.Format("15:04:05"))
		g.diagnostics.Verbose("Scanning directories: %v", config.Directories)
	}

	delims, err := ParseDelims(config.Delims)
	if err != nil {
		return &models.GeneratorError{
			Type:    models.ErrorTypeValidation,
			Message: fmt.Sprintf("Invalid delimiters: %v", err),
			Suggestions: []string{
				"Pass --delims as two space-separated characters, for example \"{ }\" or \"< >\"",
			},
		}
	}
	g.codeGenerator = generator.NewGeneratorWithDelims(delims)

	moduleName, err := g.moduleResolver.ResolveModuleName(config.ModuleName)
	if err != nil {
		return &models.GeneratorError{
			Type:    models.ErrorTypeValidation,
			Message: fmt.Sprintf("Failed to resolve module name: %v", err),
			Suggestions: []string{
				"Check your go.mod file exists and is valid",
				"Ensure you're running from the correct directory",
				"Try specifying --module flag explicitly",
			},
			Context: map[string]interface{}{
				"provided_module": config.ModuleName,
				"directories":     config.Directories,
			},
		}
	}

	if g.diagnostics != nil {
		g.diagnostics.Verbose("Resolved module name: %s", moduleName)
	}

	packageDirs, err := g.scanner.ScanDirectories(config.Directories)
	if err != nil {
		return &models.GeneratorError{
			Type:    models.ErrorTypeFileSystem,
			Message: fmt.Sprintf("Failed to scan directories: %v", err),
			Suggestions: []string{
				"Check that the directory paths exist",
				"Use './...' to scan the current tree recursively",
			},
			Context: map[string]interface{}{
				"directories": config.Directories,
			},
			Cause: err,
		}
	}

	if len(packageDirs) == 0 {
		if g.diagnostics != nil {
			g.diagnostics.Warn("No Go packages found in the specified directories")
		}
		return nil
	}

	for _, dir := range packageDirs {
		if err := g.processPackage(dir); err != nil {
			return err
		}
	}

	if g.diagnostics != nil {
		g.diagnostics.Verbose("Generation finished in %s", time.Since(startTime).Round(time.Millisecond))
	}

	return nil
}

// processPackage parses one package directory and writes its endpoints file
func (g *Generator) processPackage(dir string) error {
	metadata, idx, err := g.parser.ParseDirectory(dir)
	if err != nil {
		return &models.GeneratorError{
			Type:    models.ErrorTypeAnnotation,
			Message: fmt.Sprintf("Failed to parse package %s: %v", dir, err),
			Suggestions: []string{
				"Check //restep::endpoint annotation syntax",
				"Ensure the directory contains exactly one Go package",
			},
			Context: map[string]interface{}{
				"directory": dir,
			},
			Cause: err,
		}
	}

	g.summary.PackagesProcessed++
	g.summary.EndpointsFound += len(metadata.Endpoints)

	if len(metadata.Endpoints) == 0 {
		if g.diagnostics != nil {
			g.diagnostics.Verbose("No endpoint annotations in %s, skipping", dir)
		}
		return nil
	}

	if g.diagnostics != nil {
		g.diagnostics.PhaseItem("Found %d endpoint(s) in package %s", len(metadata.Endpoints), metadata.PackageName)
	}

	file, err := g.codeGenerator.GenerateFile(metadata, idx)
	if err != nil {
		return err
	}
	if file == nil {
		return nil
	}

	if g.diagnostics != nil {
		g.diagnostics.PhaseProgress("Writing %s", file.FilePath)
	}

	if err := utils.FormatAndWriteGoFile(file.FilePath, file.Content); err != nil {
		return &models.GeneratorError{
			Type:    models.ErrorTypeFileSystem,
			Message: fmt.Sprintf("Failed to write generated file: %v", err),
			Context: map[string]interface{}{
				"file": file.FilePath,
			},
			Cause: err,
		}
	}

	g.summary.GeneratedFiles = append(g.summary.GeneratedFiles, file.FilePath)
	return nil
}
