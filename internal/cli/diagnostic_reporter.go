package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/k-fujino-kohei/restep/internal/models"
)

// DiagnosticReporter provides user-friendly error reporting
type DiagnosticReporter struct {
	verbose bool
	out     io.Writer
}

// NewDiagnosticReporter creates a new diagnostic reporter
func NewDiagnosticReporter(verbose bool) *DiagnosticReporter {
	return &DiagnosticReporter{
		verbose: verbose,
		out:     os.Stderr,
	}
}

// ReportWarning provides user-friendly warning reporting
func (r *DiagnosticReporter) ReportWarning(message string) {
	yellow := color.New(color.FgYellow, color.Bold)
	yellow.Fprint(r.out, "! ")
	fmt.Fprintf(r.out, "%s\n", message)
}

// ReportError provides comprehensive error reporting with suggestions
func (r *DiagnosticReporter) ReportError(err error) {
	fmt.Fprintf(r.out, "\nERROR: Endpoint Generation Failed\n")
	fmt.Fprintf(r.out, "=================================\n\n")

	if genErr, ok := err.(*models.GeneratorError); ok {
		r.reportGeneratorError(genErr)
	} else if unwrapped := r.findGeneratorError(err); unwrapped != nil {
		r.reportGeneratorError(unwrapped)
	} else {
		fmt.Fprintf(r.out, "Message: %s\n", err.Error())
	}

	fmt.Fprintf(r.out, "\n")
}

// reportGeneratorError reports a GeneratorError with full context
func (r *DiagnosticReporter) reportGeneratorError(genErr *models.GeneratorError) {
	red := color.New(color.FgRed, color.Bold)
	red.Fprintf(r.out, "[%s]\n", errorTypeLabel(genErr.Type))

	fmt.Fprintf(r.out, "Message: %s\n\n", genErr.Message)

	if r.verbose && genErr.Cause != nil {
		fmt.Fprintf(r.out, "Underlying cause: %s\n\n", genErr.Cause.Error())
	}

	if len(genErr.Context) > 0 {
		fmt.Fprintf(r.out, "Context:\n")
		for key, value := range genErr.Context {
			fmt.Fprintf(r.out, "  %s: %v\n", key, value)
		}
		fmt.Fprintf(r.out, "\n")
	}

	if len(genErr.Suggestions) > 0 {
		cyan := color.New(color.FgCyan)
		cyan.Fprintf(r.out, "Suggestions:\n")
		for _, suggestion := range genErr.Suggestions {
			fmt.Fprintf(r.out, "  - %s\n", suggestion)
		}
	}
}

// findGeneratorError walks the error chain looking for a GeneratorError
func (r *DiagnosticReporter) findGeneratorError(err error) *models.GeneratorError {
	for err != nil {
		if genErr, ok := err.(*models.GeneratorError); ok {
			return genErr
		}
		unwrapper, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil
		}
		err = unwrapper.Unwrap()
	}
	return nil
}

func errorTypeLabel(t models.ErrorType) string {
	switch t {
	case models.ErrorTypeValidation:
		return "Validation Error"
	case models.ErrorTypeGeneration:
		return "Generation Error"
	case models.ErrorTypeFileSystem:
		return "File System Error"
	case models.ErrorTypeAnnotation:
		return "Annotation Error"
	default:
		return "Error"
	}
}
