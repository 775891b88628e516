package spec_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crhsys/spec"
)

const twoLevelFixture = `1 1
0 2
0:(1;0,2)|
:(2;0,0)|
---
`

func TestParse_TwoLevelFixture(t *testing.T) {
	sys, err := spec.Parse(strings.NewReader(twoLevelFixture))
	require.NoError(t, err)

	assert.Equal(t, 1, sys.NVar)
	require.Len(t, sys.BDDs, 1)

	bdd := sys.BDDs[0]
	assert.Equal(t, uint64(0), bdd.ID)
	require.Len(t, bdd.Levels, 2)

	assert.Equal(t, []int64{0}, bdd.Levels[0].LHS)
	require.Len(t, bdd.Levels[0].RHS, 1)
	assert.Equal(t, spec.NodeSpec{ID: 1, E0: 0, E1: 2}, bdd.Levels[0].RHS[0])

	assert.Empty(t, bdd.Levels[1].LHS)
	require.Len(t, bdd.Levels[1].RHS, 1)
	assert.Equal(t, spec.NodeSpec{ID: 2, E0: 0, E1: 0}, bdd.Levels[1].RHS[0])
}

func TestParse_MultipleNodesPerLevel(t *testing.T) {
	const fixture = `2 1
0 2
0+1:(1;0,3)(2;3,0)|
:(3;0,0)|
---
`
	sys, err := spec.Parse(strings.NewReader(fixture))
	require.NoError(t, err)

	require.Len(t, sys.BDDs, 1)
	level := sys.BDDs[0].Levels[0]
	assert.Equal(t, []int64{0, 1}, level.LHS)
	require.Len(t, level.RHS, 2)
	assert.Equal(t, spec.NodeSpec{ID: 1, E0: 0, E1: 3}, level.RHS[0])
	assert.Equal(t, spec.NodeSpec{ID: 2, E0: 3, E1: 0}, level.RHS[1])
}

func TestParse_MinusOneMarker(t *testing.T) {
	const fixture = `1 1
0 2
0+-1:(1;0,2)|
:(2;0,0)|
---
`
	sys, err := spec.Parse(strings.NewReader(fixture))
	require.NoError(t, err)

	level := sys.BDDs[0].Levels[0]
	assert.Equal(t, []int64{0, -1}, level.LHS)
}

func TestParse_MultipleBDDs(t *testing.T) {
	const fixture = `2 2
0 2
0:(1;0,2)|
:(2;0,0)|
---
1 2
1:(1;0,2)|
:(2;0,0)|
---
`
	sys, err := spec.Parse(strings.NewReader(fixture))
	require.NoError(t, err)
	require.Len(t, sys.BDDs, 2)
	assert.Equal(t, uint64(0), sys.BDDs[0].ID)
	assert.Equal(t, uint64(1), sys.BDDs[1].ID)
}

func TestParse_RejectsMissingHeader(t *testing.T) {
	_, err := spec.Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, spec.ErrMalformedSpec)
}

func TestParse_RejectsUnterminatedBDD(t *testing.T) {
	const fixture = `1 1
0 1
0:(1;0,2)|
`
	_, err := spec.Parse(strings.NewReader(fixture))
	assert.ErrorIs(t, err, spec.ErrMalformedSpec)
}

func TestParse_RejectsMalformedNode(t *testing.T) {
	const fixture = `1 1
0 1
0:(1;0)|
---
`
	_, err := spec.Parse(strings.NewReader(fixture))
	assert.ErrorIs(t, err, spec.ErrMalformedSpec)
}

func TestParse_RoundTripsThroughDump(t *testing.T) {
	sys := spec.SystemSpec{
		NVar: 2,
		BDDs: []spec.BDDSpec{
			{
				ID: 0,
				Levels: []spec.LevelSpec{
					{LHS: []int64{0}, RHS: []spec.NodeSpec{{ID: 1, E0: 0, E1: 2}}},
					{LHS: nil, RHS: []spec.NodeSpec{{ID: 2, E0: 0, E1: 0}}},
				},
			},
			{
				ID: 1,
				Levels: []spec.LevelSpec{
					{LHS: []int64{1}, RHS: []spec.NodeSpec{{ID: 1, E0: 0, E1: 2}}},
					{LHS: nil, RHS: []spec.NodeSpec{{ID: 2, E0: 0, E1: 0}}},
				},
			},
		},
	}
	s, err := spec.Build(sys)
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, s.Dump(&buf))

	reparsed, err := spec.Parse(strings.NewReader(buf.String()))
	require.NoError(t, err)
	assert.Equal(t, 2, reparsed.NVar)
	require.Len(t, reparsed.BDDs, 2)

	rebuilt, err := spec.Build(reparsed)
	require.NoError(t, err)

	result, err := rebuilt.GetSolutions(0)
	require.NoError(t, err)
	require.Len(t, result.Assignments, 1)
	require.Len(t, result.Assignments[0], 2)
	assert.True(t, *result.Assignments[0][0])
	assert.True(t, *result.Assignments[0][1])
}
