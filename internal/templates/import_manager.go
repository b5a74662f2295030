package templates

import (
	"fmt"
	"sort"
	"strings"
)

// ImportManager tracks the imports a generated file needs. The endpoint
// helpers only ever need fmt, and only when at least one helper formats
// placeholder values, so the block is frequently empty.
type ImportManager struct {
	paths map[string]bool
}

// NewImportManager creates an empty import manager
func NewImportManager() *ImportManager {
	return &ImportManager{
		paths: make(map[string]bool),
	}
}

// Add records an import path
func (m *ImportManager) Add(path string) {
	if path != "" {
		m.paths[path] = true
	}
}

// Has reports whether an import path was recorded
func (m *ImportManager) Has(path string) bool {
	return m.paths[path]
}

// Render returns the import declaration for the generated file, or "" when
// no imports are needed
func (m *ImportManager) Render() string {
	if len(m.paths) == 0 {
		return ""
	}

	paths := make([]string, 0, len(m.paths))
	for path := range m.paths {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	if len(paths) == 1 {
		return fmt.Sprintf("\nimport %q\n", paths[0])
	}

	var b strings.Builder
	b.WriteString("\nimport (\n")
	for _, path := range paths {
		fmt.Fprintf(&b, "\t%q\n", path)
	}
	b.WriteString(")\n")
	return b.String()
}
