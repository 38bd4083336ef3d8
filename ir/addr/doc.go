// Package addr provides the address grammar for HL7 messages: static
// addresses of concrete indices, and query addresses whose parts may
// carry names, glob patterns, wildcards, ranges and comma-unions.
//
// # Usage
//
//	// Static addresses order numerically, part by part
//	addr.CompareStrings("1.3.2", "1.3.10") // -1
//
//	// Queries have 1..5 dot-joined parts
//	q, err := addr.ParseQuery("PID,OBX.3.*.0-end")
//
// # Related Packages
//
//   - github.com/jamerfort/tclhl7/ir - the node tree queries resolve against
package addr
