package bitform

import "errors"

// Sentinel errors for the bitform package. Every exported function that can
// fail returns one of these (wrapped with context via fmt.Errorf and %w);
// callers should branch with errors.Is.
var (
	// ErrDimensionMismatch indicates two Forms of different bit-length were
	// combined (Form.Xor), or SolveLinearSystem received an rhs whose length
	// differs from the matrix's row count.
	ErrDimensionMismatch = errors.New("bitform: dimension mismatch")

	// ErrShapeMismatch indicates a Matrix operation received an
	// incompatible row/column count (e.g. NewMatrix or Identity with a
	// negative size, a ragged
	// set of rows passed to NewMatrixFromRows).
	ErrShapeMismatch = errors.New("bitform: shape mismatch")

	// ErrIndexOutOfRange indicates a bit or row index outside the valid
	// range for a Form or Matrix.
	ErrIndexOutOfRange = errors.New("bitform: index out of range")
)
