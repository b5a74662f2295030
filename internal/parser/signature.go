package parser

import (
	"fmt"

	"github.com/k-fujino-kohei/restep/internal/models"
	"github.com/k-fujino-kohei/restep/internal/schema"
)

// validateSignatures checks every annotated function's declared parameter
// list against its annotation. The list must be empty, or contain exactly one
// parameter of the named schema type (value or pointer). Anything else stops
// generation before any code is emitted.
func (p *Parser) validateSignatures(metadata *models.PackageMetadata, idx *schema.Index) error {
	for _, endpoint := range metadata.Endpoints {
		if err := validateSignature(endpoint, idx); err != nil {
			return err
		}
	}
	return nil
}

func validateSignature(endpoint models.EndpointMetadata, idx *schema.Index) error {
	mismatch := func(reason string) error {
		return &models.SignatureMismatchError{
			FuncName:   endpoint.FuncName,
			SchemaName: endpoint.ParamsType,
			Reason:     reason,
			FileName:   endpoint.FileName,
			Line:       endpoint.Line,
		}
	}

	if endpoint.ParamsType == "" {
		if len(endpoint.DeclaredParams) != 0 {
			return mismatch("function declares parameters but the annotation names no -Params schema")
		}
		return nil
	}

	if !idx.Has(endpoint.ParamsType) {
		return nil // reported as UnknownSchemaType by the generation pass
	}

	switch len(endpoint.DeclaredParams) {
	case 0:
		return nil
	case 1:
		declared := endpoint.DeclaredParams[0]
		if declared.Type != endpoint.ParamsType {
			return mismatch(fmt.Sprintf("parameter type %s does not match the -Params schema", formatType(declared)))
		}
		return nil
	default:
		return mismatch(fmt.Sprintf("expected at most one parameter of type %s, found %d parameters",
			endpoint.ParamsType, len(endpoint.DeclaredParams)))
	}
}

func formatType(param models.DeclaredParam) string {
	if param.Ptr {
		return "*" + param.Type
	}
	return param.Type
}
