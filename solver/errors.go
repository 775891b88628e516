package solver

import "github.com/katalvlaran/crhsys/crhs"

// ErrPathCountOverflow is crhs.ErrPathCountOverflow re-exported for callers
// that only import solver. It surfaces from EstimatedSolutionCount, which a
// caller can use to decide whether a BDD is worth enumerating before handing
// the System to Solve.
var ErrPathCountOverflow = crhs.ErrPathCountOverflow
