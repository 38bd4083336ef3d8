package addr

import "errors"

var (
	// ErrQueryDepth reports a query with zero parts or more than
	// five.
	ErrQueryDepth = errors.New("query depth out of range")
	// ErrBadQuery reports a syntactically invalid query token.
	ErrBadQuery = errors.New("bad query")
)
