package bitform_test

import (
	"testing"

	"github.com/katalvlaran/crhsys/bitform"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForm_SetClearToggle(t *testing.T) {
	f := bitform.NewForm(8)
	assert.True(t, f.IsZero())

	f.Set(2)
	f.Set(5)
	assert.True(t, f.Get(2))
	assert.True(t, f.Get(5))
	assert.False(t, f.Get(3))

	f.Clear(2)
	assert.False(t, f.Get(2))

	f.Toggle(5)
	assert.False(t, f.Get(5))
	f.Toggle(5)
	assert.True(t, f.Get(5))
}

func TestForm_FromVarsCancels(t *testing.T) {
	f := bitform.NewFormFromVars(8, []int{1, 3, 3, 5})
	assert.True(t, f.Get(1))
	assert.False(t, f.Get(3))
	assert.True(t, f.Get(5))
}

func TestForm_Xor(t *testing.T) {
	a := bitform.NewFormFromVars(4, []int{0, 1})
	b := bitform.NewFormFromVars(4, []int{1, 2})
	require.NoError(t, a.Xor(b))
	assert.Equal(t, "1010", a.String())
}

func TestForm_XorDimensionMismatch(t *testing.T) {
	a := bitform.NewForm(4)
	b := bitform.NewForm(5)
	err := a.Xor(b)
	require.Error(t, err)
	assert.ErrorIs(t, err, bitform.ErrDimensionMismatch)
}

func TestForm_HighestLowestSetBit(t *testing.T) {
	f := bitform.NewForm(70)
	_, ok := f.HighestSetBit()
	assert.False(t, ok)

	f.Set(3)
	f.Set(69)
	f.Set(10)

	hi, ok := f.HighestSetBit()
	require.True(t, ok)
	assert.Equal(t, 69, hi)

	lo, ok := f.LowestSetBit()
	require.True(t, ok)
	assert.Equal(t, 3, lo)
}

func TestForm_SetBitsAndWeight(t *testing.T) {
	f := bitform.NewFormFromVars(10, []int{1, 4, 7})
	assert.Equal(t, []int{1, 4, 7}, f.SetBits())
	assert.Equal(t, 3, f.Weight())
}

func TestForm_EqualAndClone(t *testing.T) {
	a := bitform.NewFormFromVars(4, []int{1, 2})
	b := a.Clone()
	assert.True(t, a.Equal(b))

	b.Toggle(1)
	assert.False(t, a.Equal(b))
	assert.True(t, a.Get(1), "Clone must not alias the original's storage")
}

func TestForm_String(t *testing.T) {
	f := bitform.NewFormFromVars(4, []int{1, 3})
	assert.Equal(t, "0101", f.String())
}
