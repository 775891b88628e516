// Package crhs implements compressed-right-hand-side equations: ordered
// decision diagrams whose levels each carry a GF(2) linear form, and whose
// accepting root-to-sink paths enumerate the solutions of that form's
// equation system.
//
// A BDD is a sequence of Levels; every Level but the last holds one or more
// Nodes, each with two outgoing edges (e0, e1) into the level below. The
// last level is the sink: exactly one node, no outgoing edges, an all-zero
// left-hand side. The first level is the source: exactly one node. Walking
// from source to sink and recording, at each level, which edge was taken
// yields one LinEq per level — together they pin every free variable the
// walk touched.
//
// Node identity is global across an entire System: the low bddIDBits bits of
// a NodeID name the owning BDD, the remaining high bits are a counter local
// to that BDD. This lets two BDDs be joined (their node sets unioned) without
// ever colliding on an id, at the cost of a hard cap on how many BDDs can
// coexist in one System (see MaxBDDs).
package crhs
