package hl7

import (
	"fmt"
	"strconv"

	"github.com/jamerfort/tclhl7/encode"
	"github.com/jamerfort/tclhl7/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Change is one difference between two messages. PathA and PathB are
// static addresses in the respective messages; an empty path means the
// node is absent on that side. From and To are the rendered values.
type Change struct {
	PathA string
	PathB string
	From  string
	To    string
}

// Diff compares two parsed messages. Segments are aligned with a
// sequence diff over their rendered text; aligned but unequal segments
// are compared leaf by leaf, and unaligned segments are reported
// whole.
func Diff(a, b Message) ([]Change, error) {
	if err := a.check(); err != nil {
		return nil, fmt.Errorf("%w: diff", err)
	}
	if err := b.check(); err != nil {
		return nil, fmt.Errorf("%w: diff", err)
	}
	segMap := map[string]rune{}
	aRunes := mapSegmentsTo(segMap, a)
	bRunes := mapSegmentsTo(segMap, b)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(aRunes, bRunes, false)

	var res []Change
	ai, bi := 0, 0
	var pendingA []int
	flush := func() {
		for _, i := range pendingA {
			res = append(res, Change{
				PathA: strconv.Itoa(i),
				From:  encode.NodeString(a.root.At(i), ir.SegmentLevel, a.seps),
			})
		}
		pendingA = nil
	}
	for i := range diffs {
		diff := &diffs[i]
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range diff.Text {
				pendingA = append(pendingA, ai)
				ai++
			}
		case diffpatch.DiffInsert:
			for range diff.Text {
				// pair a removed segment with an inserted one and
				// report their leaf differences instead of a whole
				// segment swap
				if len(pendingA) > 0 {
					pa := pendingA[0]
					pendingA = pendingA[1:]
					res = append(res, diffSegments(a, pa, b, bi)...)
				} else {
					res = append(res, Change{
						PathB: strconv.Itoa(bi),
						To:    encode.NodeString(b.root.At(bi), ir.SegmentLevel, b.seps),
					})
				}
				bi++
			}
		case diffpatch.DiffEqual:
			flush()
			ai += len([]rune(diff.Text))
			bi += len([]rune(diff.Text))
		}
	}
	flush()
	return res, nil
}

func mapSegmentsTo(m map[string]rune, msg Message) []rune {
	rs := make([]rune, msg.root.Len())
	for i, seg := range msg.root.Values {
		s := encode.NodeString(seg, ir.SegmentLevel, msg.seps)
		r, ok := m[s]
		if !ok {
			r = rune(len(m))
			m[s] = r
		}
		rs[i] = r
	}
	return rs
}

// diffSegments walks two aligned segments down to their leaves and
// reports every differing subcomponent.
func diffSegments(a Message, ai int, b Message, bi int) []Change {
	var res []Change
	var walk func(na, nb *ir.Node, level ir.Level, pa, pb string)
	walk = func(na, nb *ir.Node, level ir.Level, pa, pb string) {
		if level == ir.SubcomponentLevel {
			from := leafText(na)
			to := leafText(nb)
			if from == to {
				return
			}
			c := Change{From: from, To: to}
			if na != nil {
				c.PathA = pa
			}
			if nb != nil {
				c.PathB = pb
			}
			res = append(res, c)
			return
		}
		n := max(na.Len(), nb.Len())
		for i := 0; i < n; i++ {
			walk(na.At(i), nb.At(i), level+1,
				pa+"."+strconv.Itoa(i), pb+"."+strconv.Itoa(i))
		}
	}
	walk(a.root.At(ai), b.root.At(bi), ir.SegmentLevel,
		strconv.Itoa(ai), strconv.Itoa(bi))
	return res
}

func leafText(n *ir.Node) string {
	if n == nil {
		return ""
	}
	return n.FirstLeaf()
}
