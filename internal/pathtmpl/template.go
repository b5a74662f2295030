// Package pathtmpl implements the endpoint path template compiler: a scanner
// that splits a template into literal and placeholder segments, and a binder
// that resolves placeholders against a parameter schema.
package pathtmpl

// SegmentKind discriminates template segments
type SegmentKind int

const (
	SegmentLiteral SegmentKind = iota
	SegmentPlaceholder
)

// String returns the string representation of the segment kind
func (k SegmentKind) String() string {
	switch k {
	case SegmentLiteral:
		return "literal"
	case SegmentPlaceholder:
		return "placeholder"
	default:
		return "unknown"
	}
}

// Segment is one parsed piece of a template: either literal text or the name
// of a placeholder
type Segment struct {
	Kind  SegmentKind
	Value string // literal text, or placeholder name
}

// Template is an ordered sequence of segments parsed from a raw template
// string. Segment order equals left-to-right occurrence order in the source
// and is the substitution order used by the renderer.
type Template struct {
	Raw      string
	Segments []Segment
}

// Placeholders returns the placeholder names in occurrence order, duplicates
// included
func (t *Template) Placeholders() []string {
	var names []string
	for _, seg := range t.Segments {
		if seg.Kind == SegmentPlaceholder {
			names = append(names, seg.Value)
		}
	}
	return names
}

// HasPlaceholders reports whether the template contains at least one
// placeholder segment
func (t *Template) HasPlaceholders() bool {
	for _, seg := range t.Segments {
		if seg.Kind == SegmentPlaceholder {
			return true
		}
	}
	return false
}
