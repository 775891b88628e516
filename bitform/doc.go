// Package bitform provides dense linear algebra over GF(2): a word-packed
// bit-vector (Form), a Matrix of such vectors, and the two Gaussian-elimination
// kernels the CRHS engine needs — extraction of the left null-space of a
// matrix (linear dependencies) and solving a linear system for a partial
// assignment.
//
// Pivoting throughout uses the highest set bit of each row, with ties broken
// by the lower row index and zero rows skipped. This "reverse" column order
// is not a style choice: it is what makes a dependency row line up with the
// deepest-first level ordering the BDD levels are built in (see the crhs
// package), so the same elimination kernel serves both the System's linear
// bank and the cross-BDD dependency analyzer.
//
// All operations here are O(nvar/64) per row scan; there is no global or
// package-level mutable state.
package bitform
