package generator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/k-fujino-kohei/restep/internal/models"
	"github.com/k-fujino-kohei/restep/internal/pathtmpl"
	"github.com/k-fujino-kohei/restep/internal/schema"
)

func testIndex(t *testing.T, schemas ...*models.ParameterSchema) *schema.Index {
	t.Helper()
	idx := schema.NewIndex()
	for _, s := range schemas {
		require.NoError(t, idx.Add(s))
	}
	return idx
}

func mustSchema(t *testing.T, name string, fields ...models.Field) *models.ParameterSchema {
	t.Helper()
	s, err := models.NewParameterSchema(name, fields)
	require.NoError(t, err)
	return s
}

func TestGenerateEndpoint_SinglePlaceholder(t *testing.T) {
	idx := testIndex(t, mustSchema(t, "PathParameters",
		models.Field{Name: "CustomerID", Type: "uuid.UUID"},
	))

	helper, err := NewGenerator().GenerateEndpoint(models.EndpointMetadata{
		FuncName:   "GetCustomer",
		HelperName: "getCustomerEndpoint",
		Template:   "/customers/{CustomerID}",
		ParamsType: "PathParameters",
		FileName:   "api.go",
		Line:       10,
	}, idx)
	require.NoError(t, err)

	assert.Contains(t, helper, "func getCustomerEndpoint(params *PathParameters) string")
	assert.Contains(t, helper, `fmt.Sprintf("/customers/%v", params.CustomerID)`)
}

func TestGenerateEndpoint_MultiplePlaceholdersInOrder(t *testing.T) {
	idx := testIndex(t, mustSchema(t, "OrderParams",
		models.Field{Name: "CustomerID", Type: "string"},
		models.Field{Name: "OrderID", Type: "int"},
	))

	helper, err := NewGenerator().GenerateEndpoint(models.EndpointMetadata{
		FuncName:   "GetOrder",
		HelperName: "getOrderEndpoint",
		Template:   "/customers/{CustomerID}/orders/{OrderID}",
		ParamsType: "OrderParams",
	}, idx)
	require.NoError(t, err)

	assert.Contains(t, helper,
		`fmt.Sprintf("/customers/%v/orders/%v", params.CustomerID, params.OrderID)`)
}

func TestGenerateEndpoint_RepeatedPlaceholder(t *testing.T) {
	idx := testIndex(t, mustSchema(t, "Params",
		models.Field{Name: "ID", Type: "string"},
	))

	helper, err := NewGenerator().GenerateEndpoint(models.EndpointMetadata{
		FuncName:   "Compare",
		HelperName: "compareEndpoint",
		Template:   "/diff/{ID}/against/{ID}",
		ParamsType: "Params",
	}, idx)
	require.NoError(t, err)

	assert.Contains(t, helper,
		`fmt.Sprintf("/diff/%v/against/%v", params.ID, params.ID)`)
}

func TestGenerateEndpoint_StaticTemplate(t *testing.T) {
	helper, err := NewGenerator().GenerateEndpoint(models.EndpointMetadata{
		FuncName:   "ListCustomers",
		HelperName: "listCustomersEndpoint",
		Template:   "/customers",
	}, testIndex(t))
	require.NoError(t, err)

	assert.Contains(t, helper, "func listCustomersEndpoint() string")
	assert.Contains(t, helper, `return "/customers"`)
	assert.NotContains(t, helper, "fmt.Sprintf")
	assert.NotContains(t, helper, "params")
}

func TestGenerateEndpoint_PercentInLiteral(t *testing.T) {
	idx := testIndex(t, mustSchema(t, "Params",
		models.Field{Name: "Query", Type: "string"},
	))

	helper, err := NewGenerator().GenerateEndpoint(models.EndpointMetadata{
		FuncName:   "Search",
		HelperName: "searchEndpoint",
		Template:   "/search/100%/{Query}",
		ParamsType: "Params",
	}, idx)
	require.NoError(t, err)

	assert.Contains(t, helper, `fmt.Sprintf("/search/100%%/%v", params.Query)`)
}

func TestGenerateEndpoint_PercentInStaticTemplate(t *testing.T) {
	helper, err := NewGenerator().GenerateEndpoint(models.EndpointMetadata{
		FuncName:   "Discount",
		HelperName: "discountEndpoint",
		Template:   "/sale/50%-off",
	}, testIndex(t))
	require.NoError(t, err)

	// no Sprintf, so the percent sign stays as-is
	assert.Contains(t, helper, `return "/sale/50%-off"`)
}

func TestGenerateEndpoint_Errors(t *testing.T) {
	idx := testIndex(t, mustSchema(t, "Params",
		models.Field{Name: "CustomerID", Type: "string"},
	))

	tests := []struct {
		name     string
		endpoint models.EndpointMetadata
		check    func(t *testing.T, err error)
	}{
		{
			name: "unterminated placeholder",
			endpoint: models.EndpointMetadata{
				FuncName: "Bad", HelperName: "badEndpoint",
				Template: "/a/{CustomerID", ParamsType: "Params",
			},
			check: func(t *testing.T, err error) {
				var target *pathtmpl.UnterminatedPlaceholderError
				assert.True(t, errors.As(err, &target))
			},
		},
		{
			name: "unknown schema type",
			endpoint: models.EndpointMetadata{
				FuncName: "Bad", HelperName: "badEndpoint",
				Template: "/a/{CustomerID}", ParamsType: "Missing",
			},
			check: func(t *testing.T, err error) {
				var target *schema.UnknownTypeError
				assert.True(t, errors.As(err, &target))
			},
		},
		{
			name: "missing schema",
			endpoint: models.EndpointMetadata{
				FuncName: "Bad", HelperName: "badEndpoint",
				Template: "/a/{CustomerID}",
			},
			check: func(t *testing.T, err error) {
				var target *pathtmpl.MissingSchemaError
				assert.True(t, errors.As(err, &target))
			},
		},
		{
			name: "unused schema",
			endpoint: models.EndpointMetadata{
				FuncName: "Bad", HelperName: "badEndpoint",
				Template: "/customers", ParamsType: "Params",
			},
			check: func(t *testing.T, err error) {
				var target *pathtmpl.UnusedSchemaError
				assert.True(t, errors.As(err, &target))
			},
		},
		{
			name: "unbound placeholder",
			endpoint: models.EndpointMetadata{
				FuncName: "Bad", HelperName: "badEndpoint",
				Template: "/a/{OrderID}", ParamsType: "Params",
			},
			check: func(t *testing.T, err error) {
				var target *pathtmpl.UnboundPlaceholderError
				assert.True(t, errors.As(err, &target))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGenerator().GenerateEndpoint(tt.endpoint, idx)
			require.Error(t, err)
			tt.check(t, err)

			var genErr *models.GeneratorError
			require.True(t, errors.As(err, &genErr))
			assert.NotEmpty(t, genErr.Suggestions)
		})
	}
}

func TestGenerateEndpoint_CustomDelims(t *testing.T) {
	idx := testIndex(t, mustSchema(t, "Params",
		models.Field{Name: "ID", Type: "string"},
	))

	gen := NewGeneratorWithDelims(pathtmpl.Delims{Open: '<', Close: '>'})
	helper, err := gen.GenerateEndpoint(models.EndpointMetadata{
		FuncName:   "Get",
		HelperName: "getEndpoint",
		Template:   "/items/<ID>",
		ParamsType: "Params",
	}, idx)
	require.NoError(t, err)

	assert.Contains(t, helper, `fmt.Sprintf("/items/%v", params.ID)`)
}

func TestGenerateFile(t *testing.T) {
	idx := testIndex(t, mustSchema(t, "PathParameters",
		models.Field{Name: "CustomerID", Type: "string"},
	))

	metadata := &models.PackageMetadata{
		PackageName: "api",
		PackagePath: "internal/api",
		Endpoints: []models.EndpointMetadata{
			{
				FuncName: "ListCustomers", HelperName: "listCustomersEndpoint",
				Template: "/customers",
			},
			{
				FuncName: "GetCustomer", HelperName: "getCustomerEndpoint",
				Template: "/customers/{CustomerID}", ParamsType: "PathParameters",
			},
		},
	}

	file, err := NewGenerator().GenerateFile(metadata, idx)
	require.NoError(t, err)
	require.NotNil(t, file)

	assert.Equal(t, "api", file.PackageName)
	assert.Equal(t, "internal/api/autogen_endpoints.go", file.FilePath)
	assert.Equal(t, []string{"listCustomersEndpoint", "getCustomerEndpoint"}, file.Helpers)

	assert.Contains(t, file.Content, "// Code generated by restep. DO NOT EDIT.")
	assert.Contains(t, file.Content, "package api")
	assert.Contains(t, file.Content, `import "fmt"`)
	assert.Contains(t, file.Content, "func listCustomersEndpoint() string")
	assert.Contains(t, file.Content, "func getCustomerEndpoint(params *PathParameters) string")
}

func TestGenerateFile_StaticOnlySkipsFmtImport(t *testing.T) {
	metadata := &models.PackageMetadata{
		PackageName: "api",
		PackagePath: "internal/api",
		Endpoints: []models.EndpointMetadata{
			{FuncName: "Health", HelperName: "healthEndpoint", Template: "/healthz"},
		},
	}

	file, err := NewGenerator().GenerateFile(metadata, testIndex(t))
	require.NoError(t, err)

	assert.NotContains(t, file.Content, "import")
	assert.NotContains(t, file.Content, "fmt")
}

func TestGenerateFile_NoEndpoints(t *testing.T) {
	file, err := NewGenerator().GenerateFile(&models.PackageMetadata{
		PackageName: "api",
		PackagePath: "internal/api",
	}, testIndex(t))
	require.NoError(t, err)
	assert.Nil(t, file)
}

func TestGenerateFile_DuplicateHelperNames(t *testing.T) {
	metadata := &models.PackageMetadata{
		PackageName: "api",
		PackagePath: "internal/api",
		Endpoints: []models.EndpointMetadata{
			{FuncName: "A", HelperName: "sameEndpoint", Template: "/a"},
			{FuncName: "B", HelperName: "sameEndpoint", Template: "/b"},
		},
	}

	_, err := NewGenerator().GenerateFile(metadata, testIndex(t))
	require.Error(t, err)

	var genErr *models.GeneratorError
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, models.ErrorTypeValidation, genErr.Type)
	assert.Contains(t, genErr.Message, "sameEndpoint")
}

func TestGenerateFile_Deterministic(t *testing.T) {
	idx := testIndex(t, mustSchema(t, "Params",
		models.Field{Name: "ID", Type: "string"},
	))
	metadata := &models.PackageMetadata{
		PackageName: "api",
		PackagePath: "internal/api",
		Endpoints: []models.EndpointMetadata{
			{FuncName: "Get", HelperName: "getEndpoint", Template: "/items/{ID}", ParamsType: "Params"},
			{FuncName: "List", HelperName: "listEndpoint", Template: "/items"},
		},
	}

	first, err := NewGenerator().GenerateFile(metadata, idx)
	require.NoError(t, err)
	second, err := NewGenerator().GenerateFile(metadata, idx)
	require.NoError(t, err)

	assert.Equal(t, first.Content, second.Content)
}

func TestBuildFormat(t *testing.T) {
	field := models.Field{Name: "ID", Type: "string"}

	format, args := buildFormat([]pathtmpl.BoundSegment{
		{Kind: pathtmpl.SegmentLiteral, Literal: "/x/"},
		{Kind: pathtmpl.SegmentPlaceholder, Field: field},
		{Kind: pathtmpl.SegmentLiteral, Literal: "/100%"},
	})

	assert.Equal(t, `"/x/%v/100%%"`, format)
	assert.Equal(t, []string{"params.ID"}, args)

	format, args = buildFormat([]pathtmpl.BoundSegment{
		{Kind: pathtmpl.SegmentLiteral, Literal: "/plain/100%"},
	})
	assert.Equal(t, `"/plain/100%"`, format)
	assert.Empty(t, args)

	if !strings.HasPrefix(format, `"`) {
		t.Fatalf("format should be quoted: %s", format)
	}
}
