// Package data holds the built-in renderers for primitive data types.
// They double as the conformance fixture set: display semantics for
// invalid input (zero for non-numbers, the "Invalid Date" literal, the
// empty-object marker) are part of the contract.
package data
