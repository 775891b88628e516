package crhs

import "errors"

// Sentinel errors for the crhs package. Wrapped with fmt.Errorf("...: %w",
// err) at the point of failure; branch on these with errors.Is.
var (
	// ErrInvalidLevel indicates a level index is negative or beyond the
	// last level of a BDD.
	ErrInvalidLevel = errors.New("crhs: invalid level index")

	// ErrLevelOutOfRange is ErrInvalidLevel's companion for operations
	// that additionally require the level not be the sink.
	ErrLevelOutOfRange = errors.New("crhs: level index out of range")

	// ErrNotAdjacent indicates Swap was asked to exchange two levels
	// that are not immediately adjacent.
	ErrNotAdjacent = errors.New("crhs: levels are not adjacent")

	// ErrNoVariableIsolated names the condition of a level that isolates no
	// variable to drop. Drop does not check for this condition, and no
	// function in this package returns this error.
	ErrNoVariableIsolated = errors.New("crhs: level has no isolated variable to drop")

	// ErrInfeasible indicates an absorb step found a level with every
	// outgoing edge pointing nowhere along the kept direction — the
	// equation system has no solution (a 0=1 contradiction).
	ErrInfeasible = errors.New("crhs: system has no solutions")

	// ErrTooManyBDDs indicates a BddID would not fit in the reserved low
	// bits of a NodeID (see MaxBDDs).
	ErrTooManyBDDs = errors.New("crhs: too many BDDs for the node id scheme")

	// ErrPathCountOverflow indicates CountPaths overflowed its uint64
	// accumulator.
	ErrPathCountOverflow = errors.New("crhs: path count overflow")
)
