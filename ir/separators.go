package ir

// HeaderName is the literal name of the header segment.
const HeaderName = "MSH"

// Separators is the record of the six delimiter characters governing
// how raw text splits into the tree. The segment separator is caller
// supplied; the others are read once from the header segment at parse
// time.
type Separators struct {
	Segment      byte
	Field        byte
	Repetition   byte
	Component    byte
	Subcomponent byte
	Escape       byte
}

// DefaultSeparators are the standard HL7 delimiters with a carriage
// return segment separator.
func DefaultSeparators() Separators {
	return Separators{
		Segment:      '\r',
		Field:        '|',
		Repetition:   '~',
		Component:    '^',
		Subcomponent: '&',
		Escape:       '\\',
	}
}

// EncodingChars is the header's encoding-characters field: component,
// repetition, escape, subcomponent, in that fixed order.
func (s Separators) EncodingChars() string {
	return string([]byte{s.Component, s.Repetition, s.Escape, s.Subcomponent})
}

// ByLevel returns the separator joining the children of a node at the
// given level.
func (s Separators) ByLevel(l Level) byte {
	switch l {
	case MessageLevel:
		return s.Segment
	case SegmentLevel:
		return s.Field
	case FieldLevel:
		return s.Repetition
	case RepetitionLevel:
		return s.Component
	default:
		return s.Subcomponent
	}
}
