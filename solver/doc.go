// Package solver drives a system.System to a solved state: it repeatedly
// absorbs discoverable linear equations, picks the cheapest remaining
// dependency (and, for a dropping Solver, the cheapest independency) per
// analyzer's scoring, and resolves it by joining, swapping, adding and
// absorbing (or dropping) the levels involved, until no dependency remains.
//
// A plain Solver only ever absorbs; a dropping Solver additionally trades
// off dropping an isolated variable against resolving a dependency whenever
// that is cheaper, at the cost of losing that variable's value in the final
// solution. Both behaviors live on the same Solver type, selected with
// WithDropping.
package solver
