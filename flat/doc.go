// Package flat defines the flat-entry record and its line format.
//
// A flat entry pairs a structural path with a value:
//
//	/FundsXML/Funds/Fund[2]/Currency|EUR
//	/FundsXML/Funds/Fund[2]/@id|F-1042
//
// One entry exists per leaf text value and per attribute; containers with
// children produce no entry of their own, while an element carrying
// neither gets an empty-valued entry at its exact path so it survives
// reconstruction. Lines split on the FIRST delimiter occurrence, so values
// may contain the delimiter freely.
//
// The package also carries the decode error taxonomy: ErrFormat,
// ErrStructure, ErrConflict and ErrEmptyInput, with typed errors
// (FormatError, StructureError, ConflictError) wrapping the sentinels for
// use with errors.Is and errors.As.
package flat
