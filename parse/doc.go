// Package parse provides HL7 structural parsing support: separator
// extraction from the header segment and the five-level split of raw
// text into an ir tree.
//
// # Usage
//
//	root, seps, err := parse.Parse(text)
//	root, seps, err := parse.Parse(text, parse.SegmentSeparator('\n'))
//
// Parsing never fails on malformed non-header input: absent delimiters
// simply yield single-element sequences at that level.
//
// # Related Packages
//
//   - github.com/jamerfort/tclhl7/ir - the tree representation
//   - github.com/jamerfort/tclhl7/encode - the inverse transform
package parse
