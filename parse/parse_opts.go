package parse

type parseOpts struct {
	segSep byte
}

func defaultOpts() *parseOpts {
	return &parseOpts{segSep: '\r'}
}

type ParseOption func(*parseOpts)

// SegmentSeparator overrides the default carriage-return segment
// separator.
func SegmentSeparator(c byte) ParseOption {
	return func(o *parseOpts) { o.segSep = c }
}
