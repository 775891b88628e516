package analyzer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crhsys/analyzer"
)

func TestFindBestBDDPattern_GroupsByInvolvedBDDSet(t *testing.T) {
	deps := []analyzer.Dependency{
		{InvolvedBdds: []analyzer.InvolvedBdd{{ID: 0, TotalSize: 10}}},
		{InvolvedBdds: []analyzer.InvolvedBdd{{ID: 0, TotalSize: 10}}},
		{InvolvedBdds: []analyzer.InvolvedBdd{{ID: 1, TotalSize: 5}}},
	}

	// Pattern {0} weighs 10/2 = 5 and pattern {1} weighs 5/1 = 5; on a tie
	// the first pattern seen is kept.
	best := analyzer.FindBestBDDPattern(deps)
	require.Len(t, best, 2)
	assert.Equal(t, deps[:2], best)
}

func TestFindBestBDDPattern_EmptyInputYieldsNone(t *testing.T) {
	assert.Nil(t, analyzer.FindBestBDDPattern(nil))
}
