package bitform

import "fmt"

// ExtractLinearDependencies returns a basis for the left null-space of mat:
// a matrix D such that D*mat = 0, with D in reduced row-echelon form. Each
// row of D names a subset of mat's rows that XOR to the zero vector — the
// analyzer package uses this to find level-sets of a BDD whose forms cancel.
//
// The algorithm augments mat with an identity matrix of matching row count
// and eliminates mat bottom-up, using each row's highest set bit as pivot
// column (ties broken toward the lower row index); every mirrored operation
// is replayed on the identity half. Once a prefix of mat rows has been driven
// to all-zero, the corresponding identity rows are exactly the dependency
// basis, which is then reduced to canonical form by a second bottom-up pass
// followed by a forward sweep that clears each pivot column from the rows
// after its pivot row.
func ExtractLinearDependencies(mat Matrix) (Matrix, error) {
	m := mat.Clone()
	id, err := Identity(m.Rows())
	if err != nil {
		return Matrix{}, fmt.Errorf("ExtractLinearDependencies: %w", err)
	}

	n := m.Rows()
	loopID := n
	for i := n - 1; i >= 0; i-- {
		highest, hasHighest := m.Row(i).HighestSetBit()
		maxRow := i
		for j := i - 1; j >= 0; j-- {
			if hb, ok := m.Row(j).HighestSetBit(); ok {
				if !hasHighest || hb >= highest {
					highest, hasHighest, maxRow = hb, true, j
				}
			}
		}
		if !hasHighest {
			break
		}
		if maxRow < i {
			m.SwapRows(i, maxRow)
			id.SwapRows(i, maxRow)
		}
		for j := i - 1; j >= 0; j-- {
			if hb, ok := m.Row(j).HighestSetBit(); ok && hb == highest {
				if err := m.Row(j).Xor(m.Row(i)); err != nil {
					return Matrix{}, fmt.Errorf("ExtractLinearDependencies: %w", err)
				}
				if err := id.Row(j).Xor(id.Row(i)); err != nil {
					return Matrix{}, fmt.Errorf("ExtractLinearDependencies: %w", err)
				}
			}
		}
		loopID = i
	}

	// Rows [0, loopID) of id are exactly the combinations that drove the
	// matching mat rows to zero: the dependency basis, unreduced.
	dep := Matrix{rows: append([]Form(nil), id.rows[:loopID]...), cols: id.cols}
	reduceInPlace(dep)
	return dep, nil
}

// reduceInPlace drives dep to reduced row-echelon form: a bottom-up pass
// identical in shape to ExtractLinearDependencies' main loop (but operating
// on a single matrix, with no mirrored identity), followed by a forward
// sweep clearing each pivot column in every row after its pivot row, so no
// two rows share a pivot.
func reduceInPlace(dep Matrix) {
	n := dep.Rows()
	for i := n - 1; i >= 0; i-- {
		highest, hasHighest := dep.Row(i).HighestSetBit()
		maxRow := i
		for j := i - 1; j >= 0; j-- {
			if hb, ok := dep.Row(j).HighestSetBit(); ok {
				if !hasHighest || hb >= highest {
					highest, hasHighest, maxRow = hb, true, j
				}
			}
		}
		if !hasHighest {
			break
		}
		if maxRow < i {
			dep.SwapRows(i, maxRow)
		}
		for j := i - 1; j >= 0; j-- {
			if hb, ok := dep.Row(j).HighestSetBit(); ok && hb == highest {
				_ = dep.Row(j).Xor(dep.Row(i))
			}
		}
	}
	for i := 0; i < n; i++ {
		pivot, ok := dep.Row(i).HighestSetBit()
		if !ok {
			continue
		}
		for j := i + 1; j < n; j++ {
			if dep.Row(j).Get(pivot) {
				_ = dep.Row(j).Xor(dep.Row(i))
			}
		}
	}
}

// SolveLinearSystem solves lhs*x = rhs over GF(2), returning one entry per
// column of lhs: a non-nil *bool when the elimination pins that variable to
// a fixed value, nil when the variable remains free. Returns
// ErrDimensionMismatch if rhs's length does not match lhs's row count.
//
// The elimination mirrors ExtractLinearDependencies, augmenting lhs with the
// single rhs column instead of a full identity: after the bottom-up pivot
// pass and the forward clearing sweep, any row left with exactly one set bit
// (its lowest set bit equals its highest) pins that column to the
// corresponding rhs bit.
func SolveLinearSystem(lhs Matrix, rhs Form) ([]*bool, error) {
	if lhs.Rows() != rhs.Len() {
		return nil, fmt.Errorf("SolveLinearSystem: %w (%d rows vs rhs length %d)", ErrDimensionMismatch, lhs.Rows(), rhs.Len())
	}

	m := lhs.Clone()
	r := rhs.Clone()
	n := m.Rows()

	for i := n - 1; i >= 0; i-- {
		highest, hasHighest := m.Row(i).HighestSetBit()
		maxRow := i
		for j := i - 1; j >= 0; j-- {
			if hb, ok := m.Row(j).HighestSetBit(); ok {
				if !hasHighest || hb >= highest {
					highest, hasHighest, maxRow = hb, true, j
				}
			}
		}
		if !hasHighest {
			break
		}
		if maxRow < i {
			m.SwapRows(i, maxRow)
			vi, vMax := r.Get(i), r.Get(maxRow)
			r.SetBit(i, vMax)
			r.SetBit(maxRow, vi)
		}
		for j := i - 1; j >= 0; j-- {
			if hb, ok := m.Row(j).HighestSetBit(); ok && hb == highest {
				_ = m.Row(j).Xor(m.Row(i))
				r.SetBit(j, r.Get(j) != r.Get(i))
			}
		}
	}

	for i := 0; i < n; i++ {
		pivot, ok := m.Row(i).HighestSetBit()
		if !ok {
			continue
		}
		for j := i + 1; j < n; j++ {
			if m.Row(j).Get(pivot) {
				_ = m.Row(j).Xor(m.Row(i))
				r.SetBit(j, r.Get(j) != r.Get(i))
			}
		}
	}

	solutions := make([]*bool, lhs.Cols())
	for i := 0; i < n; i++ {
		row := m.Row(i)
		lowest, hasLowest := row.LowestSetBit()
		if !hasLowest {
			continue
		}
		highest, _ := row.HighestSetBit()
		if lowest == highest {
			val := r.Get(i)
			solutions[lowest] = &val
		}
	}
	return solutions, nil
}
