package bitform

import "fmt"

// Matrix is a dense GF(2) matrix: a sequence of equal-width Forms, one per
// row. The zero value is not usable; build with NewMatrix or
// NewMatrixFromRows.
type Matrix struct {
	rows []Form
	cols int
}

// NewMatrix returns an all-zero r×c Matrix. Returns ErrShapeMismatch if r or
// c is negative.
func NewMatrix(r, c int) (Matrix, error) {
	if r < 0 || c < 0 {
		return Matrix{}, fmt.Errorf("NewMatrix: %w (%dx%d)", ErrShapeMismatch, r, c)
	}
	rows := make([]Form, r)
	for i := range rows {
		rows[i] = NewForm(c)
	}
	return Matrix{rows: rows, cols: c}, nil
}

// NewMatrixFromRows builds a Matrix from the given rows. Returns
// ErrShapeMismatch if the rows do not share a common length. An empty rows
// slice yields a 0x0 Matrix and no error.
func NewMatrixFromRows(rows []Form) (Matrix, error) {
	if len(rows) == 0 {
		return Matrix{rows: nil, cols: 0}, nil
	}
	width := rows[0].Len()
	for i, r := range rows[1:] {
		if r.Len() != width {
			return Matrix{}, fmt.Errorf("NewMatrixFromRows: row %d: %w", i+1, ErrShapeMismatch)
		}
	}
	return Matrix{rows: append([]Form(nil), rows...), cols: width}, nil
}

// Identity returns the n×n identity matrix. Returns ErrShapeMismatch if
// n < 0.
func Identity(n int) (Matrix, error) {
	m, err := NewMatrix(n, n)
	if err != nil {
		return Matrix{}, fmt.Errorf("Identity: %w", err)
	}
	for i := 0; i < n; i++ {
		m.rows[i].Set(i)
	}
	return m, nil
}

// Rows returns the number of rows.
func (m Matrix) Rows() int { return len(m.rows) }

// Cols returns the number of columns.
func (m Matrix) Cols() int { return m.cols }

// Row returns a reference to row i. Panics if i is out of range — matrix
// indices are always internally derived, never user-supplied.
func (m Matrix) Row(i int) Form {
	if i < 0 || i >= len(m.rows) {
		panic(fmt.Sprintf("bitform: row %d out of range [0,%d)", i, len(m.rows)))
	}
	return m.rows[i]
}

// SwapRows exchanges rows i and j in place.
func (m Matrix) SwapRows(i, j int) {
	m.rows[i], m.rows[j] = m.rows[j], m.rows[i]
}

// Clone returns an independent deep copy of m.
func (m Matrix) Clone() Matrix {
	rows := make([]Form, len(m.rows))
	for i, r := range m.rows {
		rows[i] = r.Clone()
	}
	return Matrix{rows: rows, cols: m.cols}
}

// Transpose returns the transpose of m: columns become rows.
// Complexity: O(rows*cols/64) amortized over the bit-packed storage of the
// result, O(rows*cols) in the worst case since each source bit is visited
// once.
func Transpose(m Matrix) (Matrix, error) {
	out, err := NewMatrix(m.cols, len(m.rows))
	if err != nil {
		return Matrix{}, fmt.Errorf("Transpose: %w", err)
	}
	for i, row := range m.rows {
		for _, v := range row.SetBits() {
			out.rows[v].Set(i)
		}
	}
	return out, nil
}

// String renders m as one 0/1 line per row.
func (m Matrix) String() string {
	s := ""
	for i, r := range m.rows {
		if i > 0 {
			s += "\n"
		}
		s += r.String()
	}
	return s
}
