package encode

import (
	"strings"

	"github.com/jamerfort/tclhl7/ir"

	"github.com/fatih/color"
)

// Colors is a terminal color scheme for rendered messages.
type Colors struct {
	Name  func(string, ...any) string
	Sep   func(string, ...any) string
	Value func(string, ...any) string
}

func NewColors() *Colors {
	return &Colors{
		Name:  color.RGB(128, 168, 196).SprintfFunc(),
		Sep:   color.RGB(255, 0, 196).SprintfFunc(),
		Value: color.RGB(8, 196, 16).SprintfFunc(),
	}
}

// ColorString renders the message like String, coloring segment names,
// separators and values. Segment separators print as newlines so the
// result is terminal-friendly; it is for viewing, not round-tripping.
func ColorString(root *ir.Node, seps ir.Separators, c *Colors) string {
	var b strings.Builder
	for si, seg := range root.Values {
		if si > 0 {
			b.WriteByte('\n')
		}
		if seg.FirstLeaf() == ir.HeaderName {
			b.WriteString(c.Name("%s", ir.HeaderName))
			b.WriteString(c.Sep("%c", seps.Field))
			b.WriteString(c.Value("%s", seps.EncodingChars()))
			for i := 3; i < seg.Len(); i++ {
				b.WriteString(c.Sep("%c", seps.Field))
				b.WriteString(colorNode(seg.At(i), ir.FieldLevel, seps, c))
			}
			continue
		}
		for i, f := range seg.Values {
			if i == 0 {
				b.WriteString(c.Name("%s", NodeString(f, ir.FieldLevel, seps)))
				continue
			}
			b.WriteString(c.Sep("%c", seps.Field))
			b.WriteString(colorNode(f, ir.FieldLevel, seps, c))
		}
	}
	return b.String()
}

func colorNode(node *ir.Node, level ir.Level, seps ir.Separators, c *Colors) string {
	if node == nil {
		return ""
	}
	if node.Type == ir.LeafType {
		return c.Value("%s", node.String)
	}
	parts := make([]string, len(node.Values))
	for i, v := range node.Values {
		parts[i] = colorNode(v, level+1, seps, c)
	}
	return strings.Join(parts, c.Sep("%c", seps.ByLevel(level)))
}
