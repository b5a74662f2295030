package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/k-fujino-kohei/restep/internal/cli"
	"github.com/k-fujino-kohei/restep/internal/utils"
)

func main() {
	// Define command-line flags
	var (
		moduleFlag  = flag.String("module", "", "Custom module name (defaults to go.mod module)")
		delimsFlag  = flag.String("delims", "", "Placeholder delimiters as two space-separated characters (default \"{ }\")")
		verboseFlag = flag.Bool("verbose", false, "Enable verbose output and detailed error reporting")
		quietFlag   = flag.Bool("quiet", false, "Only show errors and final results")
		cleanFlag   = flag.Bool("clean", false, "Delete all autogen_endpoints.go files from the specified directories")
		helpFlag    = flag.Bool("help", false, "Show help information")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <directory-paths...>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "restep Endpoint Path Generator\n")
		fmt.Fprintf(os.Stderr, "Recursively scans directories for Go files with restep:: annotations and generates endpoint path helpers.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nArguments:\n")
		fmt.Fprintf(os.Stderr, "  directory-paths    One or more directories to scan for annotated Go files\n")
		fmt.Fprintf(os.Stderr, "                     Supports Go-style patterns like './...' for recursive scanning\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s ./...                                  # Scan everything recursively\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s ./internal/api                         # Scan a single directory\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --module github.com/myorg/myapp ./...  # Specify custom module name\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --delims \"< >\" ./...                   # Use <Field> placeholders\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --clean ./...                          # Delete all autogen_endpoints.go files\n", os.Args[0])
	}

	flag.Parse()

	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Error: At least one directory path is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	// Create diagnostic system based on flags
	var diagnostics *utils.DiagnosticSystem
	if *quietFlag {
		diagnostics = utils.NewQuietDiagnostics()
	} else if *verboseFlag {
		diagnostics = utils.NewVerboseDiagnostics()
	} else {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}

	diagnostics.Header("Endpoint Path Generator")

	// Handle clean operation
	if *cleanFlag {
		cleaner := cli.NewCleaner()
		removed, err := cleaner.CleanGeneratedFiles(args)
		if err != nil {
			diagnostics.Error("Clean operation failed: %v", err)
			os.Exit(1)
		}

		for _, file := range removed {
			diagnostics.List("removed %s", file)
		}
		diagnostics.Success("All autogen_endpoints.go files have been removed")
		return
	}

	if *verboseFlag {
		diagnostics.Subsection("Configuration")
		diagnostics.List("Target directories: %s", strings.Join(args, ", "))
		if *moduleFlag != "" {
			diagnostics.List("Custom module: %s", *moduleFlag)
		}
		if *delimsFlag != "" {
			diagnostics.List("Delimiters: %s", *delimsFlag)
		}
	}

	generator := cli.NewGeneratorWithDiagnostics(*verboseFlag, diagnostics)
	reporter := cli.NewDiagnosticReporter(*verboseFlag)

	err := generator.Run(cli.Config{
		Directories: args,
		ModuleName:  *moduleFlag,
		Delims:      *delimsFlag,
		Verbose:     *verboseFlag,
		Quiet:       *quietFlag,
	})
	if err != nil {
		reporter.ReportError(err)
		os.Exit(1)
	}

	// Show final summary
	summary := generator.GetSummary()
	stats := map[string]interface{}{
		"Packages processed": summary.PackagesProcessed,
		"Endpoints found":    summary.EndpointsFound,
		"Files generated":    len(summary.GeneratedFiles),
	}
	diagnostics.Summary("Generation Complete!", stats)

	if *verboseFlag && len(summary.GeneratedFiles) > 0 {
		diagnostics.Subsection("Generated Files")
		for _, file := range summary.GeneratedFiles {
			diagnostics.List("%s", file)
		}
	}

	diagnostics.GenerationComplete()
}
