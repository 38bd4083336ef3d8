package parse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jamerfort/tclhl7/debug"
	"github.com/jamerfort/tclhl7/ir"
)

// ErrMalformedHeader reports input too short to carry the header's
// delimiter characters at offsets 3..7.
var ErrMalformedHeader = errors.New("malformed header")

// Separators derives the separator record from the fixed offsets of
// the raw text's header segment: field at 3, component at 4,
// repetition at 5, escape at 6, subcomponent at 7.
func Separators(text string, opts ...ParseOption) (ir.Separators, error) {
	pOpts := defaultOpts()
	for _, f := range opts {
		f(pOpts)
	}
	if len(text) < 8 {
		return ir.Separators{}, fmt.Errorf("%w: %d chars, need at least 8", ErrMalformedHeader, len(text))
	}
	return ir.Separators{
		Segment:      pOpts.segSep,
		Field:        text[3],
		Component:    text[4],
		Repetition:   text[5],
		Escape:       text[6],
		Subcomponent: text[7],
	}, nil
}

// Parse splits raw text into the five-level tree. Segments named like
// the header take the header path, keeping the header's own delimiter
// characters addressable as plain field values.
func Parse(text string, opts ...ParseOption) (*ir.Node, ir.Separators, error) {
	seps, err := Separators(text, opts...)
	if err != nil {
		return nil, ir.Separators{}, err
	}
	raws := strings.Split(text, string(seps.Segment))
	if debug.Parse() {
		debug.Logf("parse %d chars, %d segments, encoding %q\n",
			len(text), len(raws), seps.EncodingChars())
	}
	root := ir.Seq()
	root.Values = make([]*ir.Node, len(raws))
	for i, raw := range raws {
		if isHeader(raw, seps.Field) {
			root.Values[i] = parseHeader(raw, seps)
			continue
		}
		root.Values[i] = parseSegment(raw, seps)
	}
	return root, seps, nil
}

// isHeader reports whether a raw segment is named exactly like the
// header: the header name alone, or the header name followed by the
// field separator. Longer names sharing the prefix, like MSHX, are
// ordinary segments.
func isHeader(raw string, fieldSep byte) bool {
	if !strings.HasPrefix(raw, ir.HeaderName) {
		return false
	}
	return len(raw) == len(ir.HeaderName) || raw[len(ir.HeaderName)] == fieldSep
}

func parseSegment(raw string, seps ir.Separators) *ir.Node {
	fields := strings.Split(raw, string(seps.Field))
	seg := ir.Seq()
	seg.Values = make([]*ir.Node, len(fields))
	for i, f := range fields {
		seg.Values[i] = parseField(f, seps)
	}
	return seg
}

// parseHeader emits [name, field separator, encoding characters,
// ordinary fields...]. The literal slots are stored as full-depth
// chains so they address uniformly, and the encoding characters are
// never re-split by the delimiters they define.
func parseHeader(raw string, seps ir.Separators) *ir.Node {
	rawFields := strings.Split(raw, string(seps.Field))
	seg := ir.Seq(
		ir.Chain(ir.FieldLevel, rawFields[0]),
		ir.Chain(ir.FieldLevel, string(seps.Field)),
	)
	if len(rawFields) > 1 {
		seg.Values = append(seg.Values, ir.Chain(ir.FieldLevel, rawFields[1]))
	} else {
		seg.Values = append(seg.Values, ir.Chain(ir.FieldLevel, seps.EncodingChars()))
	}
	for _, f := range rawFields[2:] {
		seg.Values = append(seg.Values, parseField(f, seps))
	}
	return seg
}

func parseField(raw string, seps ir.Separators) *ir.Node {
	reps := strings.Split(raw, string(seps.Repetition))
	field := ir.Seq()
	field.Values = make([]*ir.Node, len(reps))
	for i, r := range reps {
		comps := strings.Split(r, string(seps.Component))
		rep := ir.Seq()
		rep.Values = make([]*ir.Node, len(comps))
		for j, c := range comps {
			rep.Values[j] = ir.FromStrings(strings.Split(c, string(seps.Subcomponent))...)
		}
		field.Values[i] = rep
	}
	return field
}
