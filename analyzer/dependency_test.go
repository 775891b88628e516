package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crhsys/analyzer"
	"github.com/katalvlaran/crhsys/crhs"
	"github.com/katalvlaran/crhsys/system"
)

func TestDependency_MinimizeDistance_SingleLevel(t *testing.T) {
	dep := analyzer.Dependency{
		InvolvedBdds: []analyzer.InvolvedBdd{
			{ID: 0, Levels: []int{3, 2, 1}, TotalSize: 6, InvolvedLevels: []int{1}},
		},
	}
	assert.Equal(t, 0, dep.MinimizeDistance())
}

func TestDependency_MinimizeDistance_SingleBDDMultiLevel(t *testing.T) {
	dep := analyzer.Dependency{
		InvolvedBdds: []analyzer.InvolvedBdd{
			{ID: 0, Levels: []int{5, 3, 2}, TotalSize: 10, InvolvedLevels: []int{0, 2}},
		},
	}
	assert.Equal(t, 8, dep.MinimizeDistance())
}

func TestDependency_BestJoinOrder_Single(t *testing.T) {
	dep := analyzer.Dependency{
		InvolvedBdds: []analyzer.InvolvedBdd{
			{ID: 7, Levels: []int{1, 2}, TotalSize: 3, InvolvedLevels: []int{0}},
		},
	}
	ids, levels := dep.BestJoinOrder()
	assert.Equal(t, []crhs.BddID{7}, ids)
	assert.Equal(t, []int{0}, levels)
}

func TestDependency_BestJoinOrder_Multi(t *testing.T) {
	dep := analyzer.Dependency{
		InvolvedBdds: []analyzer.InvolvedBdd{
			{ID: 0, Levels: []int{10, 20, 30}, TotalSize: 60, InvolvedLevels: []int{2}},
			{ID: 1, Levels: []int{5, 6, 7}, TotalSize: 18, InvolvedLevels: []int{0}},
		},
	}
	ids, levels := dep.BestJoinOrder()
	assert.Equal(t, []crhs.BddID{0, 1}, ids)
	assert.Equal(t, []int{2, 3}, levels)
	assert.Equal(t, 30, dep.MinimizeDistance())
}

// buildDuplicateFormBDD returns a 3-level BDD over 1 variable whose first
// two levels both have the form {x0}, so they XOR to zero: a textbook
// dependency.
func buildDuplicateFormBDD(t *testing.T, id crhs.BddID) crhs.BDD {
	t.Helper()
	bdd := crhs.NewBDD(id)
	bdd.AddLevel(1)
	bdd.AddLevel(1)
	bdd.AddLevel(1)
	require.NoError(t, bdd.SetLHSLevel(0, []int{0}, 1))
	require.NoError(t, bdd.SetLHSLevel(1, []int{0}, 1))
	_, err := bdd.AddNodesToLevel(0, []uint64{1})
	require.NoError(t, err)
	_, err = bdd.AddNodesToLevel(1, []uint64{2})
	require.NoError(t, err)
	_, err = bdd.AddNodesToLevel(2, []uint64{3})
	require.NoError(t, err)
	return bdd
}

func TestExtractDependencies_FindsDuplicateLevelForms(t *testing.T) {
	s := system.New(1)
	require.NoError(t, s.PushBDD(buildDuplicateFormBDD(t, 0)))

	deps := analyzer.ExtractDependencies(s)
	require.Len(t, deps, 1)
	require.Len(t, deps[0].InvolvedBdds, 1)
	assert.Equal(t, crhs.BddID(0), deps[0].InvolvedBdds[0].ID)
	assert.Equal(t, []int{0, 1}, deps[0].InvolvedBdds[0].InvolvedLevels)
}

func TestExtractDependencies_EmptySystemYieldsNone(t *testing.T) {
	s := system.New(1)
	assert.Nil(t, analyzer.ExtractDependencies(s))
}
