package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k-fujino-kohei/restep/internal/models"
)

// writeProject lays down a go.mod plus source files under a temp module root
func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(root, "go.mod"),
		[]byte("module example.com/testapp\n\ngo 1.25\n"), 0644))

	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}

	return root
}

const annotatedSource = `package api

import "github.com/google/uuid"

type PathParameters struct {
	CustomerID uuid.UUID
}

//restep::endpoint /customers
func ListCustomers() {}

//restep::endpoint /customers/{CustomerID} -Params=PathParameters
func GetCustomer(params *PathParameters) {}
`

func TestGeneratorRun(t *testing.T) {
	root := writeProject(t, map[string]string{
		"internal/api/api.go": annotatedSource,
	})

	gen := NewGenerator(false)
	err := gen.Run(Config{
		Directories: []string{filepath.Join(root, "internal", "api")},
		ModuleName:  "example.com/testapp",
	})
	require.NoError(t, err)

	summary := gen.GetSummary()
	assert.Equal(t, 1, summary.PackagesProcessed)
	assert.Equal(t, 2, summary.EndpointsFound)
	require.Len(t, summary.GeneratedFiles, 1)

	content, err := os.ReadFile(filepath.Join(root, "internal", "api", "autogen_endpoints.go"))
	require.NoError(t, err)

	generated := string(content)
	assert.Contains(t, generated, "// Code generated by restep. DO NOT EDIT.")
	assert.Contains(t, generated, "package api")
	assert.Contains(t, generated, "func listCustomersEndpoint() string")
	assert.Contains(t, generated, `return "/customers"`)
	assert.Contains(t, generated, "func getCustomerEndpoint(params *PathParameters) string")
	assert.Contains(t, generated, `fmt.Sprintf("/customers/%v", params.CustomerID)`)
}

func TestGeneratorRun_Recursive(t *testing.T) {
	root := writeProject(t, map[string]string{
		"internal/api/api.go": annotatedSource,
		"internal/web/web.go": `package web

//restep::endpoint /healthz
func Health() {}
`,
		"internal/plain/plain.go": "package plain\n\nfunc Nothing() {}\n",
	})

	gen := NewGenerator(false)
	err := gen.Run(Config{
		Directories: []string{filepath.Join(root, "internal") + "/..."},
		ModuleName:  "example.com/testapp",
	})
	require.NoError(t, err)

	summary := gen.GetSummary()
	assert.Equal(t, 3, summary.PackagesProcessed)
	assert.Len(t, summary.GeneratedFiles, 2)

	_, err = os.Stat(filepath.Join(root, "internal", "plain", "autogen_endpoints.go"))
	assert.True(t, os.IsNotExist(err))
}

func TestGeneratorRun_CustomDelims(t *testing.T) {
	root := writeProject(t, map[string]string{
		"api/api.go": `package api

type Params struct {
	ID string
}

//restep::endpoint /items/<ID> -Params=Params
func GetItem(params *Params) {}
`,
	})

	gen := NewGenerator(false)
	err := gen.Run(Config{
		Directories: []string{filepath.Join(root, "api")},
		ModuleName:  "example.com/testapp",
		Delims:      "< >",
	})
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(root, "api", "autogen_endpoints.go"))
	require.NoError(t, err)
	assert.Contains(t, string(content), `fmt.Sprintf("/items/%v", params.ID)`)
}

func TestGeneratorRun_AnnotationError(t *testing.T) {
	root := writeProject(t, map[string]string{
		"api/api.go": `package api

//restep::endpoint /customers/{CustomerID}
func GetCustomer() {}
`,
	})

	gen := NewGenerator(false)
	err := gen.Run(Config{
		Directories: []string{filepath.Join(root, "api")},
		ModuleName:  "example.com/testapp",
	})
	require.Error(t, err)

	var genErr *models.GeneratorError
	require.True(t, errors.As(err, &genErr))

	_, statErr := os.Stat(filepath.Join(root, "api", "autogen_endpoints.go"))
	assert.True(t, os.IsNotExist(statErr), "no file should be written on error")
}

func TestGeneratorRun_SignatureMismatch(t *testing.T) {
	root := writeProject(t, map[string]string{
		"api/api.go": `package api

type Params struct {
	ID string
}

//restep::endpoint /items/{ID} -Params=Params
func GetItem(id string) {}
`,
	})

	gen := NewGenerator(false)
	err := gen.Run(Config{
		Directories: []string{filepath.Join(root, "api")},
		ModuleName:  "example.com/testapp",
	})
	require.Error(t, err)

	var sigErr *models.SignatureMismatchError
	assert.True(t, errors.As(err, &sigErr))
}

func TestGeneratorRun_Regenerates(t *testing.T) {
	root := writeProject(t, map[string]string{
		"api/api.go": `package api

//restep::endpoint /v1/status
func Status() {}
`,
	})

	config := Config{
		Directories: []string{filepath.Join(root, "api")},
		ModuleName:  "example.com/testapp",
	}

	gen := NewGenerator(false)
	require.NoError(t, gen.Run(config))
	first, err := os.ReadFile(filepath.Join(root, "api", "autogen_endpoints.go"))
	require.NoError(t, err)

	// Second run parses the directory that now holds the generated file
	require.NoError(t, gen.Run(config))
	second, err := os.ReadFile(filepath.Join(root, "api", "autogen_endpoints.go"))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestGeneratorRun_InvalidDelims(t *testing.T) {
	gen := NewGenerator(false)
	err := gen.Run(Config{
		Directories: []string{"."},
		ModuleName:  "example.com/testapp",
		Delims:      "{{}",
	})
	require.Error(t, err)

	var genErr *models.GeneratorError
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, models.ErrorTypeValidation, genErr.Type)
}

func TestParseDelims(t *testing.T) {
	tests := []struct {
		input   string
		open    rune
		close   rune
		wantErr bool
	}{
		{input: "", open: '{', close: '}'},
		{input: "{ }", open: '{', close: '}'},
		{input: "< >", open: '<', close: '>'},
		{input: "[ ]", open: '[', close: ']'},
		{input: "{", wantErr: true},
		{input: "{ } extra", wantErr: true},
		{input: "{{ }}", wantErr: true},
		{input: "| |", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			delims, err := ParseDelims(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.open, delims.Open)
			assert.Equal(t, tt.close, delims.Close)
		})
	}
}
