// Package spec builds a system.System from a declarative SystemSpec (the
// construction-time shape a caller — a cipher model, a hand-written test
// fixture, or a parsed .bdd file — assembles directly rather than driving
// the System through its node-by-node mutation API), and implements the
// textual .bdd format's read side (Parse) to complement system.System.Dump's
// write side.
//
// A SystemSpec's LevelSpec.LHS may contain -1 entries: these cancel in
// pairs against the rest of the form and, if an odd number remain, flip
// every node's edges at that level, a convenience inherited from how the
// format represents symbolic cancellation during spec construction (see
// LevelSpec.RemoveMinusOne). Node ids of 0 in a NodeSpec's E0/E1 mean "no
// edge", matching the .bdd format's own sentinel.
package spec
