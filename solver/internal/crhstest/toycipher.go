// Package crhstest provides a small toy cipher model, internal to solver's
// own test suite, standing in for a real cipher's key-recovery system. Real
// S-box expansion is out of scope; this model is purely linear (XOR and
// fixed bit rotation) over GF(2), so it exercises the same path a real
// cipher's CRHS model would (SystemSpec -> spec.Build -> solver.Solve ->
// re-encrypt-and-compare) without needing branching nodes to encode an
// S-box's truth table.
package crhstest

import "github.com/katalvlaran/crhsys/spec"

// ToyCipher is a tiny NBits-block, NBits-key, round-based cipher: round r
// maps state s to a new state whose bit i is s[i] XOR s[(i+1)%NBits] XOR
// key[(i+r)%NBits]. Every round's transform is linear in the state and key,
// so the whole encryption is linear in the key given a known plaintext.
type ToyCipher struct {
	NBits  int
	Rounds int
}

// Encrypt runs the cipher forward, returning the ciphertext and every
// intermediate state (index 0 is the plaintext, index Rounds is the
// ciphertext).
func (c ToyCipher) Encrypt(plaintext, key []bool) (ciphertext []bool, states [][]bool) {
	states = make([][]bool, c.Rounds+1)
	states[0] = append([]bool(nil), plaintext...)
	for r := 0; r < c.Rounds; r++ {
		cur := states[r]
		next := make([]bool, c.NBits)
		for i := 0; i < c.NBits; i++ {
			next[i] = cur[i] != cur[(i+1)%c.NBits] != key[(i+r)%c.NBits]
		}
		states[r+1] = next
	}
	return states[c.Rounds], states
}

// KeyRecoverySpec builds the SystemSpec whose unknowns are the key bits plus
// every intermediate state bit (states 1..Rounds-1; state 0 is the known
// plaintext and state Rounds is the known ciphertext, so neither needs a
// variable). One BDD is built per round, its levels the round's per-bit
// equations, each already non-branching (single edge) since every equation
// is a known parity constraint, not a real choice: ScanAbsorbLinEqs pulls
// every one of them straight into the System's LinBank.
//
// Variable layout: key bits occupy [0, NBits), then each intermediate
// state's bits occupy the next NBits indices in round order.
func (c ToyCipher) KeyRecoverySpec(plaintext, ciphertext []bool) spec.SystemSpec {
	nvar := c.NBits * c.Rounds

	keyVar := func(i int) int64 { return int64(i) }
	stateVar := func(round, i int) int64 {
		// round 0 is the plaintext (known, no variable); round c.Rounds is
		// the ciphertext (known, no variable). Only rounds 1..Rounds-1 need
		// one.
		return int64(c.NBits*round + i)
	}

	var bdds []spec.BDDSpec
	for r := 0; r < c.Rounds; r++ {
		var levels []spec.LevelSpec
		for i := 0; i < c.NBits; i++ {
			var lhs []int64
			var known bool
			haveLHS := func(v int64) { lhs = append(lhs, v) }

			// next[i] = cur[i] XOR cur[(i+1)%n] XOR key[(i+r)%n]; rearranged
			// so every unknown term moves to the LHS and every known term
			// (a literal plaintext/ciphertext bit) folds into known.
			known = false
			if r == 0 {
				known = plaintext[i] != plaintext[(i+1)%c.NBits]
			} else {
				haveLHS(stateVar(r, i))
				haveLHS(stateVar(r, (i+1)%c.NBits))
			}
			if r == c.Rounds-1 {
				known = known != ciphertext[i]
			} else {
				haveLHS(stateVar(r+1, i))
			}
			haveLHS(keyVar((i + r) % c.NBits))

			// Node ids run 1..NBits+1 down the chain: level i's source is
			// node i+1, wired to node i+2 (the next level's source, or the
			// sink once i == NBits-1).
			source := spec.NodeSpec{ID: uint64(i + 1)}
			target := uint64(i + 2)
			if known {
				source.E1 = target
			} else {
				source.E0 = target
			}
			levels = append(levels, spec.LevelSpec{
				LHS: lhs,
				RHS: []spec.NodeSpec{source},
			})
		}
		levels = append(levels, spec.LevelSpec{RHS: []spec.NodeSpec{{ID: uint64(c.NBits + 1)}}})
		bdds = append(bdds, spec.BDDSpec{ID: uint64(r), Levels: levels})
	}

	return spec.SystemSpec{NVar: nvar, BDDs: bdds}
}
