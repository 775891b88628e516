package crhs

import "github.com/katalvlaran/crhsys/bitform"

// LinEq is a linear equation extracted from a BDD level that was absorbed: a
// level with only outgoing 0-edges or only outgoing 1-edges carries no
// branching information, so its form is known to equal a fixed bit and can
// be pulled out of the diagram entirely.
type LinEq struct {
	lhs bitform.Form
	rhs bool
}

// NewLinEq builds a LinEq from a form and its known value.
func NewLinEq(lhs bitform.Form, rhs bool) LinEq {
	return LinEq{lhs: lhs, rhs: rhs}
}

// LHS returns a copy of the equation's form.
func (e LinEq) LHS() bitform.Form { return e.lhs.Clone() }

// RHS returns the equation's fixed value.
func (e LinEq) RHS() bool { return e.rhs }

// LHSHighestSetBit returns the highest-indexed variable in the equation's
// form, or false if the form is the zero vector (a trivial 0=rhs equation).
func (e LinEq) LHSHighestSetBit() (int, bool) { return e.lhs.HighestSetBit() }

// Add XORs other into e in place: lhs ^= other.lhs, rhs ^= other.rhs.
func (e *LinEq) Add(other LinEq) error {
	if err := e.lhs.Xor(other.lhs); err != nil {
		return err
	}
	e.rhs = e.rhs != other.rhs
	return nil
}
