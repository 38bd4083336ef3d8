package hl7

import (
	"fmt"
	"sort"

	"github.com/jamerfort/tclhl7/debug"
	"github.com/jamerfort/tclhl7/ir"
	"github.com/jamerfort/tclhl7/ir/addr"
)

type options struct {
	expand  bool
	reverse bool
}

// Option configures resolution for Query, Get and the mutation
// operations.
type Option func(*options)

// Expand permits index and range tokens to reference positions beyond
// a sequence's current length. Reads of such positions yield blank
// values; writes grow the sequence. The field part of a query always
// resolves as if expand were set.
func Expand(v bool) Option {
	return func(o *options) { o.expand = v }
}

// Reverse orders results descending by address.
func Reverse(v bool) Option {
	return func(o *options) { o.reverse = v }
}

func getOpts(expandDefault bool, opts []Option) *options {
	o := &options{expand: expandDefault}
	for _, f := range opts {
		f(o)
	}
	return o
}

// Query resolves a query address against the message into the ordered
// set of static addresses it matches, ascending by numeric address
// order, descending with Reverse.
func Query(m Message, query string, opts ...Option) ([]string, error) {
	o := getOpts(false, opts)
	addrs, err := resolve(m, query, o.expand)
	if err != nil {
		return nil, err
	}
	res := make([]string, len(addrs))
	for i, a := range addrs {
		res[i] = a.String()
	}
	if o.reverse {
		for i, j := 0, len(res)-1; i < j; i, j = i+1, j-1 {
			res[i], res[j] = res[j], res[i]
		}
	}
	return res, nil
}

// resolve returns matching addresses in ascending order.
func resolve(m Message, query string, expand bool) ([]addr.Addr, error) {
	if err := m.check(); err != nil {
		return nil, fmt.Errorf("%w: query %q", err, query)
	}
	q, err := addr.ParseQuery(query)
	if err != nil {
		return nil, err
	}
	if debug.Query() {
		debug.Logf("resolve %q depth %d expand %v\n", query, q.Depth(), expand)
	}

	// segments are never expanded: only existing indices are
	// candidates
	prefixes := []addr.Addr{}
	for i, seg := range m.root.Values {
		name := seg.FirstLeaf()
		for _, t := range q.Segments {
			if t.Matches(name, i) {
				prefixes = append(prefixes, addr.Addr{i})
				break
			}
		}
	}

	for pi, part := range q.Parts {
		level := ir.Level(pi + 2)
		partExpand := expand || level.Policy().ForceExpand
		next := make([]addr.Addr, 0, len(prefixes))
		for _, p := range prefixes {
			node := ir.Walk(m.root, p)
			var idxs []int
			for _, t := range part {
				idxs = t.Indices(idxs, node.Len(), partExpand)
			}
			for _, i := range dedupe(idxs) {
				next = append(next, p.Child(i))
			}
		}
		prefixes = next
	}

	addr.Sort(prefixes, false)
	if debug.Query() {
		debug.Logf("resolved %q to %d addresses\n", query, len(prefixes))
	}
	return prefixes, nil
}

// dedupe collapses duplicate indices from overlapping comma-tokens
// into an ascending set.
func dedupe(idxs []int) []int {
	if len(idxs) < 2 {
		return idxs
	}
	sort.Ints(idxs)
	res := idxs[:1]
	for _, i := range idxs[1:] {
		if i != res[len(res)-1] {
			res = append(res, i)
		}
	}
	return res
}
