package annotations

import "fmt"

// Parameter names recognized by the endpoint annotation
const (
	ParamParams = "Params"
	ParamName   = "Name"
)

// RegisterBuiltinSchemas registers the schemas for all builtin annotation
// types
func RegisterBuiltinSchemas(registry AnnotationRegistry) error {
	endpointSchema := AnnotationSchema{
		Type:             EndpointAnnotation,
		Description:      "Generates a helper function that renders the annotated endpoint's path",
		RequiresTemplate: true,
		Parameters: map[string]ParameterSpec{
			ParamParams: {
				Required:    false,
				Description: "Struct type whose fields supply placeholder values",
				Validator:   validateIdentifier(ParamParams),
			},
			ParamName: {
				Required:    false,
				Description: "Name for the generated helper function (defaults to <funcName>Endpoint)",
				Validator:   validateIdentifier(ParamName),
			},
		},
		Examples: []string{
			"//restep::endpoint /customers",
			"//restep::endpoint /customers/{CustomerID} -Params=PathParameters",
			"//restep::endpoint /customers/{CustomerID} -Params=PathParameters -Name=customerPath",
		},
	}

	if err := registry.Register(EndpointAnnotation, endpointSchema); err != nil {
		return fmt.Errorf("failed to register endpoint schema: %w", err)
	}

	return nil
}

// validateIdentifier builds a validator requiring a Go identifier value
func validateIdentifier(param string) func(string) error {
	return func(value string) error {
		if value == "" {
			return fmt.Errorf("%s cannot be empty", param)
		}
		for i, r := range value {
			if r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				continue
			}
			if i > 0 && r >= '0' && r <= '9' {
				continue
			}
			return fmt.Errorf("%s must be a valid identifier, got %q", param, value)
		}
		return nil
	}
}
