package pathtmpl

// Delims is the placeholder delimiter pair used when scanning a template
type Delims struct {
	Open  rune
	Close rune
}

// DefaultDelims is the documented default delimiter pair
var DefaultDelims = Delims{Open: '{', Close: '}'}

// Parse tokenizes a raw template using the default delimiters
func Parse(raw string) (*Template, error) {
	return ParseWithDelims(raw, DefaultDelims)
}

// ParseWithDelims tokenizes a raw template into an ordered segment list.
//
// The scan is a single left-to-right pass over two states. In the literal
// state the open delimiter flushes the accumulated text (empty runs are
// dropped) and enters the placeholder state; in the placeholder state the
// close delimiter flushes the captured identifier and returns to the literal
// state. A close delimiter in the literal state is ordinary text.
func ParseWithDelims(raw string, d Delims) (*Template, error) {
	t := &Template{Raw: raw}

	var buf []rune
	inPlaceholder := false
	openOffset := 0

	flushLiteral := func() {
		if len(buf) > 0 {
			t.Segments = append(t.Segments, Segment{Kind: SegmentLiteral, Value: string(buf)})
		}
		buf = buf[:0]
	}

	for i, r := range raw {
		switch {
		case r == d.Open && !inPlaceholder:
			flushLiteral()
			inPlaceholder = true
			openOffset = i
		case r == d.Open && inPlaceholder:
			return nil, &NestedPlaceholderError{Raw: raw, Offset: i}
		case r == d.Close && inPlaceholder:
			name := string(buf)
			if !isIdentifier(name) {
				return nil, &InvalidPlaceholderNameError{Raw: raw, Name: name}
			}
			t.Segments = append(t.Segments, Segment{Kind: SegmentPlaceholder, Value: name})
			buf = buf[:0]
			inPlaceholder = false
		default:
			buf = append(buf, r)
		}
	}

	if inPlaceholder {
		return nil, &UnterminatedPlaceholderError{Raw: raw, Offset: openOffset}
	}
	flushLiteral()

	return t, nil
}

// isIdentifier reports whether s matches [A-Za-z_][A-Za-z0-9_]*
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			continue
		}
		if i > 0 && r >= '0' && r <= '9' {
			continue
		}
		return false
	}
	return true
}
