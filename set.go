package hl7

import (
	"fmt"

	"github.com/jamerfort/tclhl7/debug"
	"github.com/jamerfort/tclhl7/ir"
)

// Set resolves a query (expand defaults to true) and overwrites every
// matched node with value, growing sequences with empty placeholders
// until each index path exists. Values may be a string, []string,
// []any, or *ir.Node; a plain string at a level above subcomponent
// sets a single full-depth chain. The empty query replaces the whole
// segment sequence.
func Set(m Message, query string, value any, opts ...Option) (Message, error) {
	if err := m.check(); err != nil {
		return Message{}, fmt.Errorf("%w: set %q", err, query)
	}
	v, err := ir.FromValue(value)
	if err != nil {
		return Message{}, fmt.Errorf("set %q: %w", query, err)
	}
	if query == "" {
		return m.withRoot(ir.Normalize(v, ir.MessageLevel)), nil
	}
	o := getOpts(true, opts)
	addrs, err := resolve(m, query, o.expand)
	if err != nil {
		return Message{}, err
	}
	root := m.root.Clone()
	for _, a := range addrs {
		if debug.Mutate() {
			debug.Logf("set %s = %v\n", a, v)
		}
		parent := ir.Ensure(root, ir.MessageLevel, a[:len(a)-1])
		last := a[len(a)-1]
		level := ir.Level(a.Depth())
		for parent.Len() <= last {
			parent.Values = append(parent.Values, ir.Placeholder(level))
		}
		parent.Values[last] = ir.Normalize(v.Clone(), level)
	}
	return m.withRoot(root), nil
}

// Clear sets every matched node to the empty string.
func Clear(m Message, query string, opts ...Option) (Message, error) {
	return Set(m, query, "", opts...)
}
