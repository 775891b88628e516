package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crhsys/analyzer"
	"github.com/katalvlaran/crhsys/crhs"
	"github.com/katalvlaran/crhsys/system"
)

func TestBestDepIndex_PicksLowestDistance(t *testing.T) {
	deps := []analyzer.Dependency{
		{InvolvedBdds: []analyzer.InvolvedBdd{{ID: 0, Levels: []int{1}, InvolvedLevels: []int{0}}}},
		{InvolvedBdds: []analyzer.InvolvedBdd{{ID: 1, Levels: []int{2, 3}, InvolvedLevels: []int{0, 1}}}},
	}

	idx, distance := bestDepIndex(deps)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 0, distance)
}

func TestBestDepIndex_TiesKeepEarliestIndex(t *testing.T) {
	deps := []analyzer.Dependency{
		{InvolvedBdds: []analyzer.InvolvedBdd{{ID: 0, Levels: []int{1}, InvolvedLevels: []int{0}}}},
		{InvolvedBdds: []analyzer.InvolvedBdd{{ID: 1, Levels: []int{7}, InvolvedLevels: []int{0}}}},
	}

	idx, distance := bestDepIndex(deps)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 0, distance)
}

func TestBestIndepIndex_PicksLowestDistance(t *testing.T) {
	indeps := []analyzer.Independency{
		{InvolvedBdds: []analyzer.InvolvedBdd{{ID: 0, Levels: []int{1, 5}, InvolvedLevels: []int{0}}}},
		{InvolvedBdds: []analyzer.InvolvedBdd{{ID: 1, Levels: []int{3}, InvolvedLevels: []int{0}}}},
	}

	idx, distance := bestIndepIndex(indeps)
	assert.Equal(t, 1, idx)
	assert.Equal(t, 3, distance)
}

// singleEdgeBDD returns a 2-level BDD over 1 variable whose sole level is
// non-branching: an immediate candidate for absorbAllEquations.
func singleEdgeBDD(t *testing.T, id crhs.BddID) crhs.BDD {
	t.Helper()
	bdd := crhs.NewBDD(id)
	bdd.AddLevel(1)
	bdd.AddLevel(1)
	require.NoError(t, bdd.SetLHSLevel(0, []int{0}, 1))
	_, err := bdd.AddNodesToLevel(0, []uint64{1})
	require.NoError(t, err)
	_, err = bdd.AddNodesToLevel(1, []uint64{2})
	require.NoError(t, err)
	require.NoError(t, bdd.ConnectNodesFromSpec(1, 2, true))
	return bdd
}

func TestJoinAll_MergesUnderFirstID(t *testing.T) {
	sys := system.New(1)
	require.NoError(t, sys.PushBDD(singleEdgeBDD(t, 0)))
	require.NoError(t, sys.PushBDD(singleEdgeBDD(t, 1)))

	root, err := joinAll(sys, []crhs.BddID{0, 1})
	require.NoError(t, err)
	assert.Equal(t, crhs.BddID(0), root)

	_, err = sys.GetBDD(0)
	assert.NoError(t, err)
	_, err = sys.GetBDD(1)
	assert.Error(t, err)
}

func TestAbsorbAllEquations_PopsFullyAbsorbedBDD(t *testing.T) {
	sys := system.New(1)
	require.NoError(t, sys.PushBDD(singleEdgeBDD(t, 0)))

	require.NoError(t, absorbAllEquations(sys))
	assert.Empty(t, sys.BddIDs())
	assert.Equal(t, 1, sys.LinBankSize())
}

func TestAbsorbAllEquations_LeavesUnabsorbableBDDInPlace(t *testing.T) {
	// A single level with both edges present is genuine branching: no
	// equation to absorb, so the bdd survives the pass untouched.
	sys := system.New(1)
	bdd := crhs.NewBDD(0)
	bdd.AddLevel(1)
	bdd.AddLevel(1)
	require.NoError(t, bdd.SetLHSLevel(0, []int{0}, 1))
	_, err := bdd.AddNodesToLevel(0, []uint64{1})
	require.NoError(t, err)
	_, err = bdd.AddNodesToLevel(1, []uint64{2})
	require.NoError(t, err)
	require.NoError(t, bdd.ConnectNodesFromSpec(1, 2, false))
	require.NoError(t, bdd.ConnectNodesFromSpec(1, 2, true))
	require.NoError(t, sys.PushBDD(bdd))

	require.NoError(t, absorbAllEquations(sys))
	assert.Equal(t, []crhs.BddID{0}, sys.BddIDs())
	assert.Equal(t, 0, sys.LinBankSize())
}
