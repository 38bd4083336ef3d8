package hl7

import (
	"fmt"

	"github.com/jamerfort/tclhl7/debug"
	"github.com/jamerfort/tclhl7/ir"
	"github.com/jamerfort/tclhl7/ir/addr"
)

// Add appends value as a new trailing element of every matched node's
// own sequence, growing missing matches first. Appending to a segment
// sequence entry or a subcomponent leaf is illegal: Add fails at depth
// 1 and 5.
func Add(m Message, query string, value any, opts ...Option) (Message, error) {
	if err := m.check(); err != nil {
		return Message{}, fmt.Errorf("%w: add %q", err, query)
	}
	q, err := addr.ParseQuery(query)
	if err != nil {
		return Message{}, err
	}
	level := ir.Level(q.Depth())
	if !level.Policy().AllowAdd {
		return Message{}, fmt.Errorf("%w: add at %s depth (%q)", ErrIllegalOperation, level, query)
	}
	v, err := ir.FromValue(value)
	if err != nil {
		return Message{}, fmt.Errorf("add %q: %w", query, err)
	}
	o := getOpts(true, opts)
	addrs, err := resolve(m, query, o.expand)
	if err != nil {
		return Message{}, err
	}
	root := m.root.Clone()
	for i := len(addrs) - 1; i >= 0; i-- {
		a := addrs[i]
		if debug.Mutate() {
			debug.Logf("add %s <- %v\n", a, v)
		}
		node := ir.Ensure(root, ir.MessageLevel, a)
		node.Values = append(node.Values, ir.Normalize(v.Clone(), level+1))
	}
	return m.withRoot(root), nil
}

// Insert places values at every matched index, growing the parent as
// needed and shifting later elements right. Inserting a field would
// renumber the positional fields that follow it, so Insert fails at
// depth 2. Matches are processed from highest to lowest address.
func Insert(m Message, query string, values ...any) (Message, error) {
	return insertAt(m, query, 0, values)
}

// InsertBefore is Insert.
func InsertBefore(m Message, query string, values ...any) (Message, error) {
	return insertAt(m, query, 0, values)
}

// InsertAfter is Insert with the target index one past each match.
func InsertAfter(m Message, query string, values ...any) (Message, error) {
	return insertAt(m, query, 1, values)
}

func insertAt(m Message, query string, offset int, values []any) (Message, error) {
	if err := m.check(); err != nil {
		return Message{}, fmt.Errorf("%w: insert %q", err, query)
	}
	q, err := addr.ParseQuery(query)
	if err != nil {
		return Message{}, err
	}
	level := ir.Level(q.Depth())
	if !level.Policy().AllowInsert {
		return Message{}, fmt.Errorf("%w: insert at %s depth (%q)", ErrIllegalOperation, level, query)
	}
	vs := make([]*ir.Node, len(values))
	for i, value := range values {
		v, err := ir.FromValue(value)
		if err != nil {
			return Message{}, fmt.Errorf("insert %q: %w", query, err)
		}
		vs[i] = v
	}
	addrs, err := resolve(m, query, true)
	if err != nil {
		return Message{}, err
	}
	root := m.root.Clone()
	for i := len(addrs) - 1; i >= 0; i-- {
		a := addrs[i]
		if debug.Mutate() {
			debug.Logf("insert %s+%d (%d values)\n", a, offset, len(vs))
		}
		parent := ir.Ensure(root, ir.MessageLevel, a[:len(a)-1])
		ins := make([]*ir.Node, len(vs))
		for j, v := range vs {
			ins[j] = ir.Normalize(v.Clone(), level)
		}
		parent.Insert(a[len(a)-1]+offset, level, ins...)
	}
	return m.withRoot(root), nil
}
