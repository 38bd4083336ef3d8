package addr

import (
	"fmt"
	"path"
	"strconv"
	"strings"
)

// SegToken is one comma-joined alternative of a query's segment part.
// A token matches a segment by name equality, by numeric index
// equality, or by glob pattern against the name; the three predicates
// are independent and OR'd, with no precedence between them.
type SegToken struct {
	Raw     string
	Index   int
	IsIndex bool
	IsGlob  bool
}

// Matches reports whether the token matches the segment with the given
// name at index i.
func (t SegToken) Matches(name string, i int) bool {
	if t.Raw == name {
		return true
	}
	if t.IsIndex && t.Index == i {
		return true
	}
	if t.IsGlob {
		// a malformed pattern just fails the glob predicate
		if m, err := path.Match(t.Raw, name); err == nil && m {
			return true
		}
	}
	return false
}

type SeqTokenKind int

const (
	// IndexToken is a single non-negative index.
	IndexToken SeqTokenKind = iota
	// AllToken is `*`: every currently existing index.
	AllToken
	// RangeToken is `min-max`, inclusive at both ends.
	RangeToken
	// RangeEndToken is `min-end`: end resolves to the last existing
	// index under the matched parent.
	RangeEndToken
)

// SeqToken is one comma-joined alternative of a query part below the
// segment level.
type SeqToken struct {
	Kind SeqTokenKind
	Low  int
	High int
}

// Query is a parsed query address: a segment part followed by up to
// four sequence parts.
type Query struct {
	Raw      string
	Segments []SegToken
	Parts    [][]SeqToken
}

// Depth is the number of dot-joined parts.
func (q *Query) Depth() int {
	return 1 + len(q.Parts)
}

// ParseQuery parses a dotted query address of 1 to 5 parts.
func ParseQuery(s string) (*Query, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty query", ErrQueryDepth)
	}
	parts := strings.Split(s, ".")
	if len(parts) > 5 {
		return nil, fmt.Errorf("%w: %q has %d parts", ErrQueryDepth, s, len(parts))
	}
	q := &Query{Raw: s}
	for _, tok := range strings.Split(parts[0], ",") {
		q.Segments = append(q.Segments, parseSegToken(tok))
	}
	for _, part := range parts[1:] {
		var toks []SeqToken
		for _, tok := range strings.Split(part, ",") {
			st, err := parseSeqToken(tok)
			if err != nil {
				return nil, fmt.Errorf("%w in %q", err, s)
			}
			toks = append(toks, st)
		}
		q.Parts = append(q.Parts, toks)
	}
	return q, nil
}

func parseSegToken(tok string) SegToken {
	st := SegToken{Raw: tok}
	if n, err := strconv.Atoi(tok); err == nil && n >= 0 {
		st.Index = n
		st.IsIndex = true
	}
	st.IsGlob = strings.ContainsAny(tok, "*?[")
	return st
}

func parseSeqToken(tok string) (SeqToken, error) {
	if tok == "*" {
		return SeqToken{Kind: AllToken}, nil
	}
	if lo, hi, ok := strings.Cut(tok, "-"); ok {
		low, err := strconv.Atoi(lo)
		if err != nil || low < 0 {
			return SeqToken{}, fmt.Errorf("%w: bad range start %q", ErrBadQuery, tok)
		}
		if hi == "end" {
			return SeqToken{Kind: RangeEndToken, Low: low}, nil
		}
		high, err := strconv.Atoi(hi)
		if err != nil || high < 0 {
			return SeqToken{}, fmt.Errorf("%w: bad range end %q", ErrBadQuery, tok)
		}
		return SeqToken{Kind: RangeToken, Low: low, High: high}, nil
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n < 0 {
		return SeqToken{}, fmt.Errorf("%w: bad index token %q", ErrBadQuery, tok)
	}
	return SeqToken{Kind: IndexToken, Low: n}, nil
}

// Indices resolves the token against a sequence of length n, appending
// admissible indices to dst. With expand set, index and range tokens
// may name positions at or beyond n; `*` and the resolved end of
// `min-end` never do.
func (t SeqToken) Indices(dst []int, n int, expand bool) []int {
	switch t.Kind {
	case IndexToken:
		if t.Low < n || expand {
			dst = append(dst, t.Low)
		}
	case AllToken:
		for i := 0; i < n; i++ {
			dst = append(dst, i)
		}
	case RangeToken:
		for i := t.Low; i <= t.High; i++ {
			if i < n || expand {
				dst = append(dst, i)
			}
		}
	case RangeEndToken:
		for i := t.Low; i <= n-1; i++ {
			dst = append(dst, i)
		}
	}
	return dst
}
