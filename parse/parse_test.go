package parse

import (
	"errors"
	"testing"

	"github.com/jamerfort/tclhl7/ir"
)

const sample = "MSH|^~\\&|SEND|FAC\rPID|||X~Y\r"

func TestSeparators(t *testing.T) {
	seps, err := Separators(sample)
	if err != nil {
		t.Fatal(err)
	}
	want := ir.Separators{
		Segment:      '\r',
		Field:        '|',
		Component:    '^',
		Repetition:   '~',
		Escape:       '\\',
		Subcomponent: '&',
	}
	if seps != want {
		t.Errorf("Separators = %+v, want %+v", seps, want)
	}
	if seps.EncodingChars() != "^~\\&" {
		t.Errorf("EncodingChars = %q", seps.EncodingChars())
	}
}

func TestSeparatorsNonStandard(t *testing.T) {
	seps, err := Separators("MSH#@*$%#F1")
	if err != nil {
		t.Fatal(err)
	}
	if seps.Field != '#' || seps.Component != '@' || seps.Repetition != '*' ||
		seps.Escape != '$' || seps.Subcomponent != '%' {
		t.Errorf("Separators = %+v", seps)
	}
}

func TestMalformedHeader(t *testing.T) {
	for _, text := range []string{"", "MSH|^~\\"} {
		if _, err := Separators(text); !errors.Is(err, ErrMalformedHeader) {
			t.Errorf("Separators(%q) error = %v, want ErrMalformedHeader", text, err)
		}
		if _, _, err := Parse(text); !errors.Is(err, ErrMalformedHeader) {
			t.Errorf("Parse(%q) error = %v, want ErrMalformedHeader", text, err)
		}
	}
}

func TestHeaderSlots(t *testing.T) {
	root, _, err := Parse(sample)
	if err != nil {
		t.Fatal(err)
	}
	msh := root.At(0)
	if got := msh.At(0).FirstLeaf(); got != "MSH" {
		t.Errorf("slot 0 = %q, want MSH", got)
	}
	if got := msh.At(1).FirstLeaf(); got != "|" {
		t.Errorf("slot 1 = %q, want |", got)
	}
	// the encoding characters stay one literal value, not re-split by
	// the delimiters they define
	if got := msh.At(2).FirstLeaf(); got != "^~\\&" {
		t.Errorf("slot 2 = %q, want ^~\\&", got)
	}
	if msh.At(2).Len() != 1 || msh.At(2).At(0).Len() != 1 {
		t.Error("encoding characters were re-split")
	}
	if got := msh.At(3).FirstLeaf(); got != "SEND" {
		t.Errorf("slot 3 = %q, want SEND", got)
	}
}

func TestHeaderPrefixedName(t *testing.T) {
	root, _, err := Parse("MSH|^~\\&|A\rMSHX|a^b\r")
	if err != nil {
		t.Fatal(err)
	}
	// MSHX is not the header: no literal separator slots, components
	// split as usual
	seg := root.At(1)
	if got := seg.FirstLeaf(); got != "MSHX" {
		t.Errorf("segment name = %q, want MSHX", got)
	}
	if seg.Len() != 2 {
		t.Fatalf("fields = %d, want 2", seg.Len())
	}
	if seg.At(1).At(0).Len() != 2 {
		t.Errorf("components = %d, want 2", seg.At(1).At(0).Len())
	}
}

func TestFiveLevelSplit(t *testing.T) {
	root, _, err := Parse("MSH|^~\\&|X\rPID|a~b|c^d|e&f\r")
	if err != nil {
		t.Fatal(err)
	}
	pid := root.At(1)
	if got := pid.At(0).FirstLeaf(); got != "PID" {
		t.Errorf("segment name = %q", got)
	}
	if pid.At(1).Len() != 2 {
		t.Errorf("repetitions = %d, want 2", pid.At(1).Len())
	}
	if pid.At(2).At(0).Len() != 2 {
		t.Errorf("components = %d, want 2", pid.At(2).At(0).Len())
	}
	if pid.At(3).At(0).At(0).Len() != 2 {
		t.Errorf("subcomponents = %d, want 2", pid.At(3).At(0).At(0).Len())
	}
	if got := pid.At(3).At(0).At(0).At(1).String; got != "f" {
		t.Errorf("leaf = %q, want f", got)
	}
	// trailing separator yields a trailing empty segment
	if root.Len() != 3 {
		t.Errorf("segments = %d, want 3", root.Len())
	}
}

func TestParseNeverFailsOnMalformedBody(t *testing.T) {
	root, _, err := Parse("MSH|^~\\&|A\rjunk with no delimiters")
	if err != nil {
		t.Fatal(err)
	}
	seg := root.At(1)
	if seg.Len() != 1 || seg.At(0).Len() != 1 {
		t.Error("absent delimiters should yield single-element sequences")
	}
	if got := seg.FirstLeaf(); got != "junk with no delimiters" {
		t.Errorf("leaf = %q", got)
	}
}

func TestSegmentSeparatorOption(t *testing.T) {
	root, seps, err := Parse("MSH|^~\\&|A\nPID|1\n", SegmentSeparator('\n'))
	if err != nil {
		t.Fatal(err)
	}
	if seps.Segment != '\n' {
		t.Errorf("segment separator = %q", seps.Segment)
	}
	if root.Len() != 3 {
		t.Errorf("segments = %d, want 3", root.Len())
	}
	if got := root.At(1).FirstLeaf(); got != "PID" {
		t.Errorf("second segment name = %q", got)
	}
}
