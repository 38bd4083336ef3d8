package ir

import (
	"fmt"
	"slices"
)

type Type int

const (
	SeqType Type = iota
	LeafType
)

func (t Type) String() string {
	switch t {
	case SeqType:
		return "seq"
	case LeafType:
		return "leaf"
	default:
		return fmt.Sprintf("<err: %d is not a node type>", t)
	}
}

// Node is either a leaf string (a subcomponent) or an ordered sequence
// of nodes at the next level down.
type Node struct {
	Type   Type
	String string
	Values []*Node
}

func Leaf(s string) *Node {
	return &Node{Type: LeafType, String: s}
}

func Seq(values ...*Node) *Node {
	return &Node{Type: SeqType, Values: values}
}

// FromStrings builds a sequence of leaves, one per value.
func FromStrings(values ...string) *Node {
	res := &Node{Type: SeqType, Values: make([]*Node, len(values))}
	for i, v := range values {
		res.Values[i] = Leaf(v)
	}
	return res
}

// Chain wraps a leaf value in single-element sequences so that the
// result sits at the given level: Chain(SubcomponentLevel, s) is a leaf,
// Chain(ComponentLevel, s) is a one-subcomponent component, and so on.
func Chain(level Level, s string) *Node {
	res := Leaf(s)
	for l := SubcomponentLevel; l > level; l-- {
		res = Seq(res)
	}
	return res
}

// Placeholder returns the empty-string chain used to grow sparse
// sequences at the given level.
func Placeholder(level Level) *Node {
	return Chain(level, "")
}

func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	res := &Node{Type: n.Type, String: n.String}
	if n.Values != nil {
		res.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}

// Len is the child count; it is 0 for nil nodes and leaves, so missing
// nodes resolve like empty sequences.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	return len(n.Values)
}

// At returns the i'th child, or nil when n is missing, a leaf, or i is
// out of range.
func (n *Node) At(i int) *Node {
	if n == nil || i < 0 || i >= len(n.Values) {
		return nil
	}
	return n.Values[i]
}

// FirstLeaf follows first children down to a leaf and returns its
// value. A segment's name is the first leaf of its first field.
func (n *Node) FirstLeaf() string {
	x := n
	for x != nil && x.Type == SeqType {
		x = x.At(0)
	}
	if x == nil {
		return ""
	}
	return x.String
}

// Walk follows an index path from root, returning nil as soon as an
// index is not present.
func Walk(root *Node, path []int) *Node {
	x := root
	for _, i := range path {
		x = x.At(i)
		if x == nil {
			return nil
		}
	}
	return x
}

// Ensure follows an index path from root, growing each sequence with
// placeholders so that every index on the path exists, and returns the
// node at the path. The root is at level; path[k] indexes children at
// level+k+1.
func Ensure(root *Node, level Level, path []int) *Node {
	x := root
	for k, i := range path {
		childLevel := level + Level(k) + 1
		for len(x.Values) <= i {
			x.Values = append(x.Values, Placeholder(childLevel))
		}
		x = x.Values[i]
	}
	return x
}

// Remove deletes the node addressed by path from its immediate parent
// sequence, shifting later siblings down. Missing paths are a no-op.
func Remove(root *Node, path []int) {
	if len(path) == 0 {
		return
	}
	parent := Walk(root, path[:len(path)-1])
	i := path[len(path)-1]
	if parent == nil || i < 0 || i >= len(parent.Values) {
		return
	}
	parent.Values = slices.Delete(parent.Values, i, i+1)
}

// Insert places values into the node's sequence at index i, growing the
// sequence with placeholders first when i is beyond the current length.
// childLevel is the level of the node's children.
func (n *Node) Insert(i int, childLevel Level, values ...*Node) {
	for len(n.Values) < i {
		n.Values = append(n.Values, Placeholder(childLevel))
	}
	n.Values = slices.Insert(n.Values, i, values...)
}

// FromValue converts a native Go value into a node: a string becomes a
// leaf, []string and []any become sequences, and *Node is cloned. nil
// becomes the empty leaf.
func FromValue(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Leaf(""), nil
	case string:
		return Leaf(x), nil
	case *Node:
		return x.Clone(), nil
	case []string:
		res := Seq()
		res.Values = make([]*Node, len(x))
		for i, e := range x {
			res.Values[i] = Leaf(e)
		}
		return res, nil
	case []any:
		res := Seq()
		res.Values = make([]*Node, len(x))
		for i, e := range x {
			c, err := FromValue(e)
			if err != nil {
				return nil, err
			}
			res.Values[i] = c
		}
		return res, nil
	default:
		return nil, fmt.Errorf("cannot convert %T to a node", v)
	}
}

// Value is the inverse of FromValue: leaves become strings, sequences
// become []any.
func (n *Node) Value() any {
	if n == nil {
		return ""
	}
	if n.Type == LeafType {
		return n.String
	}
	res := make([]any, len(n.Values))
	for i, v := range n.Values {
		res[i] = v.Value()
	}
	return res
}

// Normalize shapes a value node for placement at the given level: a
// leaf above the subcomponent level becomes a single full-depth chain,
// so setting a field to "W" behaves like setting it to a
// one-subcomponent field. Sequence children are normalized one level
// down; a sequence at subcomponent depth collapses to its first leaf.
// The result may share structure with n.
func Normalize(n *Node, level Level) *Node {
	if level >= SubcomponentLevel {
		if n.Type == LeafType {
			return n
		}
		return Leaf(n.FirstLeaf())
	}
	if n.Type == LeafType {
		return Seq(Normalize(n, level+1))
	}
	res := Seq()
	res.Values = make([]*Node, len(n.Values))
	for i, v := range n.Values {
		res.Values[i] = Normalize(v, level+1)
	}
	return res
}
