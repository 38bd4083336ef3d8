package hl7

import (
	"errors"

	"github.com/jamerfort/tclhl7/ir/addr"
	"github.com/jamerfort/tclhl7/parse"
)

var (
	// ErrUnparsedMessage reports an operation requiring a parsed
	// Message given one not produced by Parse.
	ErrUnparsedMessage = errors.New("unparsed message")
	// ErrIllegalOperation reports Add at segment or subcomponent
	// depth, or Insert at field depth.
	ErrIllegalOperation = errors.New("illegal operation")

	ErrQueryDepth      = addr.ErrQueryDepth
	ErrBadQuery        = addr.ErrBadQuery
	ErrMalformedHeader = parse.ErrMalformedHeader
)
