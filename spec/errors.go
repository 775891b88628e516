package spec

import "errors"

// Sentinel errors for the spec package.
var (
	// ErrMalformedSpec indicates Parse encountered input that does not
	// match the .bdd grammar at the point it failed.
	ErrMalformedSpec = errors.New("spec: malformed .bdd input")

	// ErrEmptyBDDSpec indicates a BDDSpec had no levels at all, which
	// cannot describe even a sink-only BDD (a valid BDD always has at
	// least a source and a sink level).
	ErrEmptyBDDSpec = errors.New("spec: bdd spec has no levels")
)
