package addr

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseAddr(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Addr
		wantErr bool
	}{
		{name: "empty", input: "", want: nil},
		{name: "segment only", input: "1", want: Addr{1}},
		{name: "full depth", input: "1.3.0.0.0", want: Addr{1, 3, 0, 0, 0}},
		{name: "negative", input: "1.-2", wantErr: true},
		{name: "non numeric", input: "PID.3", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCompareNumericNotLexicographic(t *testing.T) {
	addrs := []string{"1.3.0", "1.3.10", "1.3.2"}
	SortStrings(addrs, false)
	want := []string{"1.3.0", "1.3.2", "1.3.10"}
	if !reflect.DeepEqual(addrs, want) {
		t.Errorf("ascending = %v, want %v", addrs, want)
	}
	SortStrings(addrs, true)
	wantRev := []string{"1.3.10", "1.3.2", "1.3.0"}
	if !reflect.DeepEqual(addrs, wantRev) {
		t.Errorf("descending = %v, want %v", addrs, wantRev)
	}
}

func TestCompareDepthAndEmpty(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "0", -1},
		{"", "", 0},
		{"1", "1.0", -1},
		{"1.2", "1.2", 0},
		{"2", "1.9.9.9.9", 1},
		{"0.0", "0.1", -1},
	}
	for _, tt := range tests {
		if got := CompareStrings(tt.a, tt.b); got != tt.want {
			t.Errorf("CompareStrings(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestParseQueryDepth(t *testing.T) {
	if _, err := ParseQuery(""); !errors.Is(err, ErrQueryDepth) {
		t.Errorf("empty query error = %v, want ErrQueryDepth", err)
	}
	if _, err := ParseQuery("1.2.3.4.5.6"); !errors.Is(err, ErrQueryDepth) {
		t.Errorf("6-part query error = %v, want ErrQueryDepth", err)
	}
	for _, q := range []string{"PID", "PID.3", "PID.3.*.0.0"} {
		if _, err := ParseQuery(q); err != nil {
			t.Errorf("ParseQuery(%q) error = %v", q, err)
		}
	}
}

func TestParseQueryTokens(t *testing.T) {
	q, err := ParseQuery("PID,O*,2.3,0-2,1-end,*")
	if err != nil {
		t.Fatal(err)
	}
	if q.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", q.Depth())
	}
	segs := q.Segments
	if len(segs) != 3 {
		t.Fatalf("segment tokens = %d, want 3", len(segs))
	}
	if segs[0].IsGlob || segs[0].IsIndex {
		t.Errorf("PID classified as glob/index: %+v", segs[0])
	}
	if !segs[1].IsGlob {
		t.Errorf("O* not classified as glob: %+v", segs[1])
	}
	if !segs[2].IsIndex || segs[2].Index != 2 {
		t.Errorf("2 not classified as index: %+v", segs[2])
	}
	want := []SeqToken{
		{Kind: IndexToken, Low: 3},
		{Kind: RangeToken, Low: 0, High: 2},
		{Kind: RangeEndToken, Low: 1},
		{Kind: AllToken},
	}
	if !reflect.DeepEqual(q.Parts[0], want) {
		t.Errorf("part tokens = %+v, want %+v", q.Parts[0], want)
	}
}

func TestParseQueryBadTokens(t *testing.T) {
	for _, q := range []string{"PID.x", "PID.1-", "PID.-1", "PID.a-b", "PID.1-1-1"} {
		if _, err := ParseQuery(q); !errors.Is(err, ErrBadQuery) {
			t.Errorf("ParseQuery(%q) error = %v, want ErrBadQuery", q, err)
		}
	}
}

func TestSegTokenMatches(t *testing.T) {
	tests := []struct {
		tok   string
		name  string
		index int
		want  bool
	}{
		{"PID", "PID", 1, true},
		{"PID", "OBX", 1, false},
		{"1", "PID", 1, true},
		{"1", "PID", 2, false},
		{"O*", "OBX", 2, true},
		{"O*", "PID", 2, false},
		{"P?D", "PID", 1, true},
		{"[OP]ID", "PID", 1, true},
		{"*", "", 3, true},
	}
	for _, tt := range tests {
		st := parseSegToken(tt.tok)
		if got := st.Matches(tt.name, tt.index); got != tt.want {
			t.Errorf("token %q vs (%q, %d) = %v, want %v", tt.tok, tt.name, tt.index, got, tt.want)
		}
	}
}

func TestSeqTokenIndices(t *testing.T) {
	tests := []struct {
		tok    string
		n      int
		expand bool
		want   []int
	}{
		{"2", 2, false, nil},
		{"2", 2, true, []int{2}},
		{"*", 3, false, []int{0, 1, 2}},
		{"*", 3, true, []int{0, 1, 2}},
		{"*", 0, true, nil},
		{"1-3", 3, false, []int{1, 2}},
		{"1-3", 3, true, []int{1, 2, 3}},
		{"1-end", 3, false, []int{1, 2}},
		{"1-end", 3, true, []int{1, 2}},
		{"0-end", 0, true, nil},
	}
	for _, tt := range tests {
		st, err := parseSeqToken(tt.tok)
		if err != nil {
			t.Fatalf("parseSeqToken(%q): %v", tt.tok, err)
		}
		got := st.Indices(nil, tt.n, tt.expand)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%q n=%d expand=%v -> %v, want %v", tt.tok, tt.n, tt.expand, got, tt.want)
		}
	}
}
