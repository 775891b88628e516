// Package system collects a set of crhs.BDD values that share one variable
// universe into a single object that can be driven towards a solved state:
// swap/add/absorb/drop rewrites on individual BDDs, a LinBank accumulating
// the independent linear equations discovered along the way, and
// get_solutions-style extraction of the final assignment once enough
// structure has been eliminated.
//
// Every linear equation pulled out of a BDD (by ScanAbsorbLinEqs or pushed
// directly by Fix) is first checked for independence against the LinBank:
// if it reduces to all-zero against what's already known, it is discarded.
// Otherwise it's reduced, stored, and immediately substituted back into
// every BDD still in the System, which often triggers further absorption.
package system
