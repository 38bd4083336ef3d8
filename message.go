package hl7

import (
	"fmt"

	"github.com/jamerfort/tclhl7/encode"
	"github.com/jamerfort/tclhl7/ir"
	"github.com/jamerfort/tclhl7/parse"
)

// Message is a parsed HL7 message: the structural tree, the separator
// record it was split with, and the parsed marker. Messages are
// immutable from the caller's view; every mutating operation returns a
// new Message.
type Message struct {
	root   *ir.Node
	seps   ir.Separators
	parsed bool
}

// ParseOption is re-exported from the parse package.
type ParseOption = parse.ParseOption

// SegmentSeparator is re-exported from the parse package.
var SegmentSeparator = parse.SegmentSeparator

// Parse builds a Message from raw text. The segment separator defaults
// to carriage return; the other five separators are read from the
// header segment's fixed offsets.
func Parse(text string, opts ...ParseOption) (Message, error) {
	root, seps, err := parse.Parse(text, opts...)
	if err != nil {
		return Message{}, err
	}
	return Message{root: root, seps: seps, parsed: true}, nil
}

func (m Message) check() error {
	if !m.parsed {
		return ErrUnparsedMessage
	}
	return nil
}

// Data regenerates the raw text of a message. It fails with
// ErrUnparsedMessage on a Message not produced by Parse.
func Data(m Message) (string, error) {
	if err := m.check(); err != nil {
		return "", fmt.Errorf("%w: data", err)
	}
	return encode.String(m.root, m.seps), nil
}

// Separators returns the message's separator record.
func (m Message) Separators() ir.Separators {
	return m.seps
}

// Tree returns a clone of the message's segment sequence.
func (m Message) Tree() *ir.Node {
	return m.root.Clone()
}

// withRoot derives a new Message sharing the separator record.
func (m Message) withRoot(root *ir.Node) Message {
	return Message{root: root, seps: m.seps, parsed: m.parsed}
}
