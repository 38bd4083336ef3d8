// Package encode provides the inverse of parsing: regenerating raw
// HL7 text from an ir tree and its separator record.
//
// # Usage
//
//	err := encode.Encode(root, seps, w)
//	s := encode.String(root, seps)
//
//	// Render one subtree at its level
//	s := encode.NodeString(field, ir.FieldLevel, seps)
//
// The header segment's encoding-characters field is rebuilt from the
// separator record rather than the stored tree value, so separator
// edits can never desynchronize output.
//
// # Related Packages
//
//   - github.com/jamerfort/tclhl7/ir - the tree representation
//   - github.com/jamerfort/tclhl7/parse - the inverse transform
package encode
