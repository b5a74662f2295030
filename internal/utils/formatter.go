package utils

import (
	"fmt"
	"go/format"
	"go/parser"
	"go/token"
	"os"

	"golang.org/x/tools/imports"
)

// FormatGoCodeString formats Go source code from a string and returns a string
func FormatGoCodeString(source string) (string, error) {
	formatted, err := format.Source([]byte(source))
	if err != nil {
		// If formatting fails, try to parse to see if it's valid Go
		fset := token.NewFileSet()
		_, parseErr := parser.ParseFile(fset, "", source, parser.ParseComments)
		if parseErr != nil {
			return source, fmt.Errorf("invalid Go syntax: %w (format error: %v)", parseErr, err)
		}
		return source, err
	}
	return string(formatted), nil
}

// ProcessImports runs goimports-style import fixing over generated source.
// The filename only guides import resolution; nothing is read from disk.
func ProcessImports(filename, source string) (string, error) {
	processed, err := imports.Process(filename, []byte(source), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return source, fmt.Errorf("failed to process imports: %w", err)
	}
	return string(processed), nil
}

// FormatAndWriteGoFile formats generated code and writes it to a file. Import
// processing runs after formatting so stray or missing imports in generated
// output never reach disk.
func FormatAndWriteGoFile(filename string, code string) error {
	formatted, err := FormatGoCodeString(code)
	if err != nil {
		return fmt.Errorf("failed to format %s: %w", filename, err)
	}

	processed, err := ProcessImports(filename, formatted)
	if err != nil {
		return fmt.Errorf("failed to fix imports for %s: %w", filename, err)
	}

	return os.WriteFile(filename, []byte(processed), 0644)
}

// ValidateGoCode checks if the provided code is valid Go syntax
func ValidateGoCode(code string) error {
	fset := token.NewFileSet()
	_, err := parser.ParseFile(fset, "", code, parser.ParseComments)
	return err
}
