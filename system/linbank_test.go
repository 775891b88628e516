package system_test

import (
	"testing"

	"github.com/katalvlaran/crhsys/bitform"
	"github.com/katalvlaran/crhsys/crhs"
	"github.com/katalvlaran/crhsys/system"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinBank_PushAccumulatesIndependent(t *testing.T) {
	var lb system.LinBank

	eq1 := crhs.NewLinEq(bitform.NewFormFromVars(3, []int{0, 1}), true)
	_, ok := lb.PushLinEq(eq1)
	require.True(t, ok)
	assert.Equal(t, 1, lb.Size())

	eq2 := crhs.NewLinEq(bitform.NewFormFromVars(3, []int{1, 2}), false)
	_, ok = lb.PushLinEq(eq2)
	require.True(t, ok)
	assert.Equal(t, 2, lb.Size())
}

func TestLinBank_PushRejectsDependent(t *testing.T) {
	var lb system.LinBank

	eq1 := crhs.NewLinEq(bitform.NewFormFromVars(3, []int{0, 1}), true)
	_, ok := lb.PushLinEq(eq1)
	require.True(t, ok)

	// Same equation again: reduces straight to zero.
	eq2 := crhs.NewLinEq(bitform.NewFormFromVars(3, []int{0, 1}), true)
	reduced, ok := lb.PushLinEq(eq2)
	require.False(t, ok)
	assert.True(t, reduced.LHS().IsZero())
	assert.Equal(t, 1, lb.Size())
}

func TestLinBank_LHSAndRHS(t *testing.T) {
	var lb system.LinBank
	lb.PushLinEq(crhs.NewLinEq(bitform.NewFormFromVars(2, []int{0}), true))
	lb.PushLinEq(crhs.NewLinEq(bitform.NewFormFromVars(2, []int{1}), false))

	lhs := lb.LHS()
	require.Len(t, lhs, 2)
	assert.Equal(t, "10", lhs[0].String())
	assert.Equal(t, "01", lhs[1].String())

	rhs := lb.RHS()
	assert.True(t, rhs.Get(0))
	assert.False(t, rhs.Get(1))
}

func TestLinBank_Clone(t *testing.T) {
	var lb system.LinBank
	lb.PushLinEq(crhs.NewLinEq(bitform.NewFormFromVars(2, []int{0}), true))

	clone := lb.Clone()
	clone.PushLinEq(crhs.NewLinEq(bitform.NewFormFromVars(2, []int{1}), true))

	assert.Equal(t, 1, lb.Size())
	assert.Equal(t, 2, clone.Size())
}
