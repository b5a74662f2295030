package pathtmpl

import "github.com/k-fujino-kohei/restep/internal/models"

// BoundSegment is one entry of a bound template: either fixed literal text or
// a placeholder resolved to a schema field
type BoundSegment struct {
	Kind    SegmentKind
	Literal string       // literal text when Kind == SegmentLiteral
	Field   models.Field // resolved field when Kind == SegmentPlaceholder
}

// Bind matches every placeholder of the template against the schema's fields
// by exact, case-sensitive name and returns the bound entries in template
// order. Binding is all-or-nothing: any unmatched placeholder fails the whole
// template. The schema must be present exactly when the template has
// placeholders; fields not referenced by any placeholder are permitted.
func Bind(t *Template, schema *models.ParameterSchema) ([]BoundSegment, error) {
	if !t.HasPlaceholders() {
		if schema != nil {
			return nil, &UnusedSchemaError{SchemaName: schema.Name}
		}
	} else if schema == nil {
		return nil, &MissingSchemaError{Placeholders: t.Placeholders()}
	}

	bound := make([]BoundSegment, 0, len(t.Segments))
	for _, seg := range t.Segments {
		switch seg.Kind {
		case SegmentLiteral:
			bound = append(bound, BoundSegment{Kind: SegmentLiteral, Literal: seg.Value})
		case SegmentPlaceholder:
			field, ok := schema.Lookup(seg.Value)
			if !ok {
				return nil, &UnboundPlaceholderError{
					Name:       seg.Value,
					SchemaName: schema.Name,
					Fields:     schema.FieldNames(),
				}
			}
			bound = append(bound, BoundSegment{Kind: SegmentPlaceholder, Field: field})
		}
	}

	return bound, nil
}
