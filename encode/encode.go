package encode

import (
	"io"
	"strings"

	"github.com/jamerfort/tclhl7/ir"
)

// Encode writes the raw text form of a message tree.
func Encode(root *ir.Node, seps ir.Separators, w io.Writer) error {
	_, err := io.WriteString(w, String(root, seps))
	return err
}

// String renders the whole message: segments joined by the segment
// separator, the header segment taking the dedicated path.
func String(root *ir.Node, seps ir.Separators) string {
	segs := make([]string, root.Len())
	for i, seg := range root.Values {
		if seg.FirstLeaf() == ir.HeaderName {
			segs[i] = headerString(seg, seps)
			continue
		}
		segs[i] = NodeString(seg, ir.SegmentLevel, seps)
	}
	return strings.Join(segs, string(seps.Segment))
}

// NodeString renders one subtree at the given level, joining children
// with the per-level separators.
func NodeString(node *ir.Node, level ir.Level, seps ir.Separators) string {
	if node == nil {
		return ""
	}
	if node.Type == ir.LeafType {
		return node.String
	}
	parts := make([]string, len(node.Values))
	for i, v := range node.Values {
		parts[i] = NodeString(v, level+1, seps)
	}
	return strings.Join(parts, string(seps.ByLevel(level)))
}

// headerString emits name, field separator, encoding characters from
// the separator record, then the ordinary fields from slot 3 on. The
// stored values at slots 1 and 2 are ignored.
func headerString(seg *ir.Node, seps ir.Separators) string {
	var b strings.Builder
	name := ir.HeaderName
	if seg.Len() > 0 {
		name = NodeString(seg.At(0), ir.FieldLevel, seps)
	}
	b.WriteString(name)
	b.WriteByte(seps.Field)
	b.WriteString(seps.EncodingChars())
	for i := 3; i < seg.Len(); i++ {
		b.WriteByte(seps.Field)
		b.WriteString(NodeString(seg.At(i), ir.FieldLevel, seps))
	}
	return b.String()
}
