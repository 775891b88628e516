// Package analyzer finds the level-sets of a system.System worth acting on
// next: dependencies (groups of levels whose forms XOR to zero, which can
// be added together and absorbed to remove a node from the system) and
// independencies (every level naming a given variable, which can be
// collapsed and dropped to shed that variable's information entirely in
// exchange for a smaller system). Both are scored by how many nodes
// resolving them would force the solver to touch, so a driver package can
// always resolve the cheapest one first.
//
// Analysis never fails: a System with no linear dependency among its
// levels simply yields no Dependency values, and a System with nothing to
// drop yields no Independency values. Neither Extract function returns an
// error.
package analyzer
