package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crhsys/analyzer"
	"github.com/katalvlaran/crhsys/crhs"
	"github.com/katalvlaran/crhsys/system"
)

// buildTwoVarBDD returns a 3-level BDD over 2 variables where level 0
// names only x0 and level 1 names only x1, so each variable's
// independency involves exactly one level.
func buildTwoVarBDD(t *testing.T, id crhs.BddID) crhs.BDD {
	t.Helper()
	bdd := crhs.NewBDD(id)
	bdd.AddLevel(2)
	bdd.AddLevel(2)
	bdd.AddLevel(2)
	require.NoError(t, bdd.SetLHSLevel(0, []int{0}, 2))
	require.NoError(t, bdd.SetLHSLevel(1, []int{1}, 2))
	_, err := bdd.AddNodesToLevel(0, []uint64{1})
	require.NoError(t, err)
	_, err = bdd.AddNodesToLevel(1, []uint64{2})
	require.NoError(t, err)
	_, err = bdd.AddNodesToLevel(2, []uint64{3})
	require.NoError(t, err)
	return bdd
}

func TestExtractIndependencies_OnePerVariable(t *testing.T) {
	s := system.New(2)
	require.NoError(t, s.PushBDD(buildTwoVarBDD(t, 0)))

	indeps := analyzer.ExtractIndependencies(s, nil)
	require.Len(t, indeps, 2)
	for _, ind := range indeps {
		require.Len(t, ind.InvolvedBdds, 1)
		assert.Len(t, ind.InvolvedBdds[0].InvolvedLevels, 1)
	}
}

func TestExtractIndependencies_ForbidDroppingExcludesVariable(t *testing.T) {
	s := system.New(2)
	require.NoError(t, s.PushBDD(buildTwoVarBDD(t, 0)))

	indeps := analyzer.ExtractIndependencies(s, []int{0})
	require.Len(t, indeps, 1)
	assert.Equal(t, []int{1}, indeps[0].InvolvedBdds[0].InvolvedLevels)
}

func TestIndependency_MinimizeDistance_Single(t *testing.T) {
	ind := analyzer.Independency{
		InvolvedBdds: []analyzer.InvolvedBdd{
			{ID: 0, Levels: []int{4, 5, 6}, TotalSize: 15, InvolvedLevels: []int{1}},
		},
	}
	assert.Equal(t, 11, ind.MinimizeDistance()) // levels[1]+levels[2] = 5+6
}

func TestIndependency_BestJoinOrder_Multi(t *testing.T) {
	ind := analyzer.Independency{
		InvolvedBdds: []analyzer.InvolvedBdd{
			// bdd 0 has 10 nodes above its involved level: placing it first
			// avoids carrying them, so it should be chosen as the join root.
			{ID: 0, Levels: []int{10, 1}, TotalSize: 11, InvolvedLevels: []int{1}},
			{ID: 1, Levels: []int{2, 3}, TotalSize: 5, InvolvedLevels: []int{0}},
		},
	}
	ids, levels := ind.BestJoinOrder()
	assert.Equal(t, []crhs.BddID{0, 1}, ids)
	assert.Equal(t, []int{1, 2}, levels)
}
