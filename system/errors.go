package system

import "errors"

// Sentinel errors for the system package. Wrapped with fmt.Errorf("...: %w",
// err) at the point of failure; branch on these with errors.Is.
var (
	// ErrBddNotFound indicates a BddID not currently held by the System.
	ErrBddNotFound = errors.New("system: bdd not found")

	// ErrDuplicateBddID indicates PushBDD was asked to add a BddID already
	// present in the System.
	ErrDuplicateBddID = errors.New("system: duplicate bdd id")

	// ErrNvarMismatch indicates a BDD's variable count doesn't match the
	// System's.
	ErrNvarMismatch = errors.New("system: variable count mismatch")

	// ErrEmptySystem indicates FromElem was given zero BDDs to build from.
	ErrEmptySystem = errors.New("system: cannot build from an empty set of bdds")

	// ErrSameBdd indicates JoinBDDs was asked to join a BDD with itself.
	ErrSameBdd = errors.New("system: cannot join a bdd with itself")

	// ErrNonIndependentFix indicates Fix's equation reduced to the zero
	// vector against the LinBank: it was already implied by what's known.
	ErrNonIndependentFix = errors.New("system: equation is not linearly independent from the current bank")
)
