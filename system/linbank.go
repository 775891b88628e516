package system

import "github.com/katalvlaran/crhsys/bitform"
import "github.com/katalvlaran/crhsys/crhs"

// LinBank accumulates the linearly independent equations discovered while
// reducing a System, in row-echelon form: every stored equation's highest
// set bit is a column that no equation stored after it sets. Stored
// equations are not reduced against equations pushed later, so an earlier
// equation can still set a later equation's highest bit.
//
// Pushing a new equation reduces it against the bank first: for every
// already-stored equation whose highest set bit the incoming equation also
// sets, the stored equation is XORed in. If what's left is the zero vector,
// the incoming equation carried no information the bank didn't already have
// and is discarded; otherwise it's appended.
//
// Example: bank holds x0+x1=1 (highest bit 1). Pushing x1+x2=0 (highest bit
// 2, but it sets bit 1 too) XORs the bank equation in, giving x0+x2=1, which
// is then appended since its own highest bit (2) is new.
type LinBank struct {
	linEqs []crhs.LinEq
}

// PushLinEq reduces eq against the bank and, if the result is non-trivial,
// appends it and returns (reduced, true). If the reduction collapses eq to
// the zero vector, returns (reduced, false): the equation added no new
// information. The caller's eq and its form are not modified.
func (lb *LinBank) PushLinEq(eq crhs.LinEq) (crhs.LinEq, bool) {
	eq = crhs.NewLinEq(eq.LHS(), eq.RHS())
	for _, bankEq := range lb.linEqs {
		pivot, ok := bankEq.LHSHighestSetBit()
		if !ok {
			continue
		}
		if eq.LHS().Get(pivot) {
			_ = eq.Add(bankEq)
		}
	}
	if _, ok := eq.LHSHighestSetBit(); !ok {
		return eq, false
	}
	lb.linEqs = append(lb.linEqs, eq)
	return eq, true
}

// LHS returns the bank's equations' forms, one row per stored equation, in
// the order they were accepted.
func (lb *LinBank) LHS() []bitform.Form {
	out := make([]bitform.Form, len(lb.linEqs))
	for i, eq := range lb.linEqs {
		out[i] = eq.LHS()
	}
	return out
}

// RHS returns a Form whose bit i is the i-th stored equation's right-hand
// side value.
func (lb *LinBank) RHS() bitform.Form {
	rhs := bitform.NewForm(len(lb.linEqs))
	for i, eq := range lb.linEqs {
		rhs.SetBit(i, eq.RHS())
	}
	return rhs
}

// Size returns the number of equations held in the bank.
func (lb *LinBank) Size() int { return len(lb.linEqs) }

// Clone returns an independent deep copy of lb.
func (lb *LinBank) Clone() LinBank {
	linEqs := make([]crhs.LinEq, len(lb.linEqs))
	for i, eq := range lb.linEqs {
		linEqs[i] = crhs.NewLinEq(eq.LHS(), eq.RHS())
	}
	return LinBank{linEqs: linEqs}
}
