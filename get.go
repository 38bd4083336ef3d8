package hl7

import (
	"fmt"

	"github.com/jamerfort/tclhl7/encode"
	"github.com/jamerfort/tclhl7/ir"
	"github.com/jamerfort/tclhl7/ir/addr"
)

// Result is one matched node: its value and the static address it was
// found at.
type Result struct {
	Value   *ir.Node
	Address string
}

// Get resolves a query and reads every matched node. Values are leaf
// strings at subcomponent depth and nested sequences above it; an
// address admitted by expand but absent from the tree reads as the
// blank placeholder for its level. The reserved empty query denotes
// the whole segment sequence, with address "".
func Get(m Message, query string, opts ...Option) ([]Result, error) {
	if err := m.check(); err != nil {
		return nil, fmt.Errorf("%w: get %q", err, query)
	}
	if query == "" {
		return []Result{{Value: m.root.Clone(), Address: ""}}, nil
	}
	o := getOpts(false, opts)
	addrs, err := resolve(m, query, o.expand)
	if err != nil {
		return nil, err
	}
	if o.reverse {
		for i, j := 0, len(addrs)-1; i < j; i, j = i+1, j-1 {
			addrs[i], addrs[j] = addrs[j], addrs[i]
		}
	}
	res := make([]Result, len(addrs))
	for i, a := range addrs {
		node := ir.Walk(m.root, a)
		if node == nil {
			node = ir.Placeholder(ir.Level(a.Depth()))
		} else {
			node = node.Clone()
		}
		res[i] = Result{Value: node, Address: a.String()}
	}
	return res, nil
}

// GetValues is Get without the addresses.
func GetValues(m Message, query string, opts ...Option) ([]*ir.Node, error) {
	rs, err := Get(m, query, opts...)
	if err != nil {
		return nil, err
	}
	vals := make([]*ir.Node, len(rs))
	for i, r := range rs {
		vals[i] = r.Value
	}
	return vals, nil
}

// GetStrings is Get with each value rendered to raw text using the
// message's separators.
func GetStrings(m Message, query string, opts ...Option) ([]string, error) {
	rs, err := Get(m, query, opts...)
	if err != nil {
		return nil, err
	}
	vals := make([]string, len(rs))
	for i, r := range rs {
		if r.Address == "" {
			vals[i] = encode.String(r.Value, m.seps)
			continue
		}
		a, _ := addr.Parse(r.Address)
		vals[i] = encode.NodeString(r.Value, ir.Level(a.Depth()), m.seps)
	}
	return vals, nil
}

// GetReverse is Get in descending address order.
func GetReverse(m Message, query string, opts ...Option) ([]Result, error) {
	return Get(m, query, append(opts, Reverse(true))...)
}

// Each iterates Get results in order, invoking body with each value
// and its address. Iteration stops at the first body error, which is
// returned.
func Each(m Message, query string, body func(value *ir.Node, address string) error, opts ...Option) error {
	rs, err := Get(m, query, opts...)
	if err != nil {
		return err
	}
	for _, r := range rs {
		if err := body(r.Value, r.Address); err != nil {
			return err
		}
	}
	return nil
}
