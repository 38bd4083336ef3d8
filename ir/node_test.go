package ir

import (
	"reflect"
	"testing"
)

func TestFromValueRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{name: "string", in: "X", want: "X"},
		{name: "nil", in: nil, want: ""},
		{name: "strings", in: []string{"X", "Y"}, want: []any{"X", "Y"}},
		{name: "nested", in: []any{"X", []any{"a", "b"}}, want: []any{"X", []any{"a", "b"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := FromValue(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			if got := n.Value(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Value() = %v, want %v", got, tt.want)
			}
		})
	}
	if _, err := FromValue(42); err == nil {
		t.Error("FromValue(42) should fail")
	}
}

func TestCloneIndependence(t *testing.T) {
	n := Seq(FromStrings("a", "b"), Leaf("c"))
	c := n.Clone()
	c.Values[0].Values[0].String = "zz"
	if n.Values[0].Values[0].String != "a" {
		t.Error("clone shares structure with original")
	}
}

func TestChainLevels(t *testing.T) {
	f := Chain(FieldLevel, "W")
	// field -> repetition -> component -> subcomponent
	if f.FirstLeaf() != "W" {
		t.Errorf("FirstLeaf = %q", f.FirstLeaf())
	}
	depth := 0
	for x := f; x.Type == SeqType; x = x.Values[0] {
		depth++
	}
	if depth != 3 {
		t.Errorf("chain depth = %d, want 3", depth)
	}
	if Chain(SubcomponentLevel, "s").Type != LeafType {
		t.Error("subcomponent chain should be a leaf")
	}
}

func TestWalkEnsureRemove(t *testing.T) {
	root := Seq(Seq(Chain(FieldLevel, "A")))
	if got := Walk(root, []int{0, 0}).FirstLeaf(); got != "A" {
		t.Errorf("Walk = %q, want A", got)
	}
	if Walk(root, []int{0, 5}) != nil {
		t.Error("Walk of missing index should be nil")
	}

	// sparse growth fills the gap with placeholders
	n := Ensure(root, MessageLevel, []int{0, 2, 0, 0, 0})
	if n.Type != LeafType || n.String != "" {
		t.Errorf("Ensure target = %+v, want empty leaf", n)
	}
	seg := root.Values[0]
	if seg.Len() != 3 {
		t.Fatalf("segment len = %d, want 3", seg.Len())
	}
	if seg.Values[1].FirstLeaf() != "" {
		t.Error("gap placeholder not blank")
	}

	Remove(root, []int{0, 1})
	if seg.Len() != 2 {
		t.Errorf("after Remove len = %d, want 2", seg.Len())
	}
	if seg.Values[1].FirstLeaf() != "" {
		t.Error("later sibling did not shift down")
	}
	// removing a missing path is a no-op
	Remove(root, []int{4, 4})
}

func TestInsertGrows(t *testing.T) {
	field := FromStrings("X", "Y")
	field.Insert(1, RepetitionLevel, Leaf("M"))
	if got := field.Values[1].FirstLeaf(); got != "M" {
		t.Errorf("inserted value = %q, want M", got)
	}
	if field.Len() != 3 || field.Values[2].FirstLeaf() != "Y" {
		t.Error("later elements did not shift right")
	}

	field2 := FromStrings("X")
	field2.Insert(3, RepetitionLevel, Leaf("Z"))
	if field2.Len() != 4 {
		t.Fatalf("len = %d, want 4", field2.Len())
	}
	if field2.Values[1].FirstLeaf() != "" || field2.Values[2].FirstLeaf() != "" {
		t.Error("growth placeholders not blank")
	}
}

func TestNormalize(t *testing.T) {
	f := Normalize(Leaf("W"), FieldLevel)
	if f.Type != SeqType || f.FirstLeaf() != "W" {
		t.Errorf("field normalize = %+v", f)
	}
	if Walk(f, []int{0, 0, 0}) == nil {
		t.Error("normalized field not walkable to subcomponent")
	}
	s := Normalize(FromStrings("X", "Y"), ComponentLevel)
	if s.Len() != 2 || Walk(s, []int{1}).Type != LeafType {
		t.Errorf("component normalize = %+v", s)
	}
}
