package cli

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/k-fujino-kohei/restep/internal/pathtmpl"
)

// Config holds the configuration for the CLI generator
type Config struct {
	// Directories is the list of directories to scan for annotated Go files
	Directories []string

	// ModuleName is the custom module name
	// If empty, will be determined from go.mod file
	ModuleName string

	// Delims overrides the placeholder delimiters, written as two
	// space-separated runes like "{ }". Empty means the default pair.
	Delims string

	// Verbose enables detailed logging and error reporting
	Verbose bool

	// Quiet reduces output to errors only
	Quiet bool
}

// GenerationSummary collects statistics for the final report
type GenerationSummary struct {
	PackagesProcessed int
	EndpointsFound    int
	GeneratedFiles    []string
}

// ParseDelims turns the --delims flag value into a delimiter pair
func ParseDelims(value string) (pathtmpl.Delims, error) {
	if value == "" {
		return pathtmpl.DefaultDelims, nil
	}

	parts := strings.Fields(value)
	if len(parts) != 2 {
		return pathtmpl.Delims{}, fmt.Errorf("delimiters must be two space-separated characters, got %q", value)
	}

	open, openSize := utf8.DecodeRuneInString(parts[0])
	closing, closingSize := utf8.DecodeRuneInString(parts[1])
	if openSize != len(parts[0]) || closingSize != len(parts[1]) {
		return pathtmpl.Delims{}, fmt.Errorf("delimiters must be single characters, got %q", value)
	}
	if open == closing {
		return pathtmpl.Delims{}, fmt.Errorf("open and close delimiters must differ, got %q", value)
	}

	return pathtmpl.Delims{Open: open, Close: closing}, nil
}
