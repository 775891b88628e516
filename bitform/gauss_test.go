package bitform_test

import (
	"testing"

	"github.com/katalvlaran/crhsys/bitform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

// TestSolveLinearSystem_Triangular checks a square, already-triangular
// system with exactly one solution per variable.
func TestSolveLinearSystem_Triangular(t *testing.T) {
	rows := []bitform.Form{
		bitform.NewFormFromVars(4, []int{0, 2}),
		bitform.NewFormFromVars(4, []int{1, 2, 3}),
		bitform.NewFormFromVars(4, []int{2, 3}),
		bitform.NewFormFromVars(4, []int{3}),
	}
	a, err := bitform.NewMatrixFromRows(rows)
	require.NoError(t, err)
	b := bitform.NewFormFromVars(4, []int{0, 2, 3})

	got, err := bitform.SolveLinearSystem(a, b)
	require.NoError(t, err)

	want := []*bool{boolPtr(true), boolPtr(true), boolPtr(false), boolPtr(true)}
	require.Len(t, got, len(want))
	for i := range want {
		require.NotNil(t, got[i], "variable %d expected to be pinned", i)
		assert.Equal(t, *want[i], *got[i])
	}
}

func TestSolveLinearSystem_Identity(t *testing.T) {
	id, err := bitform.Identity(4)
	require.NoError(t, err)
	b := bitform.NewFormFromVars(4, []int{1, 3})

	got, err := bitform.SolveLinearSystem(id, b)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		require.NotNil(t, got[i])
		assert.Equal(t, b.Get(i), *got[i])
	}
}

func TestSolveLinearSystem_FreeVariable(t *testing.T) {
	// Single equation over 3 variables: x0 + x1 = 1. x2 is unconstrained.
	rows := []bitform.Form{bitform.NewFormFromVars(3, []int{0, 1})}
	a, err := bitform.NewMatrixFromRows(rows)
	require.NoError(t, err)
	b := bitform.NewFormFromVars(1, []int{0})

	got, err := bitform.SolveLinearSystem(a, b)
	require.NoError(t, err)
	assert.Nil(t, got[0])
	assert.Nil(t, got[1])
	assert.Nil(t, got[2])
}

func TestSolveLinearSystem_DimensionMismatch(t *testing.T) {
	a, err := bitform.Identity(3)
	require.NoError(t, err)
	_, err = bitform.SolveLinearSystem(a, bitform.NewForm(4))
	require.Error(t, err)
	assert.ErrorIs(t, err, bitform.ErrDimensionMismatch)
}

// TestExtractLinearDependencies_FindsKnownDependency constructs a matrix
// whose third row is the XOR of the first two, and checks that the
// resulting dependency basis selects exactly that combination and
// annihilates the source matrix: D*mat = 0.
func TestExtractLinearDependencies_FindsKnownDependency(t *testing.T) {
	rows := []bitform.Form{
		bitform.NewFormFromVars(4, []int{0}),
		bitform.NewFormFromVars(4, []int{1}),
		bitform.NewFormFromVars(4, []int{0, 1}),
	}
	mat, err := bitform.NewMatrixFromRows(rows)
	require.NoError(t, err)

	dep, err := bitform.ExtractLinearDependencies(mat)
	require.NoError(t, err)
	require.Equal(t, 1, dep.Rows(), "exactly one dependency among 3 rows spanning rank 2")

	assertAnnihilates(t, dep, mat)
}

func TestExtractLinearDependencies_FullRankHasNoDependencies(t *testing.T) {
	id, err := bitform.Identity(4)
	require.NoError(t, err)

	dep, err := bitform.ExtractLinearDependencies(id)
	require.NoError(t, err)
	assert.Equal(t, 0, dep.Rows())
}

func assertAnnihilates(t *testing.T, dep, mat bitform.Matrix) {
	t.Helper()
	for i := 0; i < dep.Rows(); i++ {
		acc := bitform.NewForm(mat.Cols())
		for _, rowIdx := range dep.Row(i).SetBits() {
			require.NoError(t, acc.Xor(mat.Row(rowIdx)))
		}
		assert.True(t, acc.IsZero(), "dependency row %d must XOR mat's selected rows to zero", i)
	}
}
