package analyzer

import (
	"sort"

	"github.com/katalvlaran/crhsys/bitform"
	"github.com/katalvlaran/crhsys/crhs"
	"github.com/katalvlaran/crhsys/system"
)

// Independency is every level across a system.System that names a given
// variable. Adding all but one of those levels to the remaining one
// collapses the variable to a single occurrence, which can then be
// dropped: the system loses the ability to recover that variable's value,
// but sheds every node those levels were carrying.
type Independency struct {
	InvolvedBdds []InvolvedBdd
}

// MinimizeDistance estimates the number of nodes resolving ind will force
// the solver to touch, the same way Dependency.MinimizeDistance does.
func (ind Independency) MinimizeDistance() int {
	if len(ind.InvolvedBdds) == 1 {
		bdd := ind.InvolvedBdds[0]
		return sumSkipTake(bdd.Levels, bdd.InvolvedLevels[0], len(bdd.Levels))
	}

	ids, _ := ind.BestJoinOrder()
	start := ids[0]
	score := 0
	for _, bdd := range ind.InvolvedBdds {
		if bdd.ID == start {
			score += sumSkipTake(bdd.Levels, bdd.InvolvedLevels[0], len(bdd.Levels))
		} else {
			for _, v := range bdd.Levels {
				score += v
			}
		}
	}
	return score
}

// BestJoinOrder returns the join order and resulting level indices for
// ind: the BDD carrying the most avoidable nodes above its first involved
// level goes first, and every other BDD follows in no particular order
// (an independency, unlike a dependency, is resolved by collapsing onto
// one level rather than a contiguous range, so there is no benefit to
// choosing a distinguished last BDD).
func (ind Independency) BestJoinOrder() ([]crhs.BddID, []int) {
	if len(ind.InvolvedBdds) == 1 {
		return []crhs.BddID{ind.InvolvedBdds[0].ID}, append([]int(nil), ind.InvolvedBdds[0].InvolvedLevels...)
	}

	remaining := append([]InvolvedBdd(nil), ind.InvolvedBdds...)
	var resIDs []crhs.BddID
	var resLevels []int

	startIdx, maxSaved := 0, 0
	for i, bdd := range remaining {
		if saved := sumSkipTake(bdd.Levels, 0, bdd.InvolvedLevels[0]); saved > maxSaved {
			maxSaved, startIdx = saved, i
		}
	}
	lenAbove := 0
	start := remaining[startIdx]
	remaining = append(remaining[:startIdx], remaining[startIdx+1:]...)
	resIDs = append(resIDs, start.ID)
	resLevels = append(resLevels, start.InvolvedLevels...)
	lenAbove += len(start.Levels)

	for _, bdd := range remaining {
		resIDs = append(resIDs, bdd.ID)
	}
	for _, bdd := range remaining {
		for _, level := range bdd.InvolvedLevels {
			resLevels = append(resLevels, level+lenAbove)
		}
		lenAbove += len(bdd.Levels)
	}

	return resIDs, resLevels
}

// ExtractIndependencies finds every Independency in sys, one per variable
// not named in forbidDropping: it transposes the concatenated per-level
// form matrix (so each row names every level containing one variable
// instead of every variable set at one level) and keeps only the rows
// that resolve to levels within a single BDD — an independency spanning
// multiple BDDs would require joining them just to shed one variable,
// which is never worth it, so those are discarded rather than scored.
func ExtractIndependencies(sys *system.System, forbidDropping []int) []Independency {
	lhsByID := sys.SystemLHS()
	sizes := sys.BddSizes()

	forbidden := make(map[int]struct{}, len(forbidDropping))
	for _, v := range forbidDropping {
		forbidden[v] = struct{}{}
	}

	ids := make([]crhs.BddID, 0, len(lhsByID))
	for id := range lhsByID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var lhsConcat []bitform.Form
	entries := make([]levelEntry, 0, len(ids))
	for _, id := range ids {
		info := sizes[id]
		entries = append(entries, levelEntry{id: id, levels: info.Levels, totalSize: info.TotalSize})
		lhsConcat = append(lhsConcat, lhsByID[id]...)
	}
	if len(lhsConcat) == 0 {
		return nil
	}

	mat, err := bitform.NewMatrixFromRows(lhsConcat)
	if err != nil {
		return nil
	}
	transposed, err := bitform.Transpose(mat)
	if err != nil {
		return nil
	}

	var indeps []Independency
	for v := 0; v < transposed.Rows(); v++ {
		if _, skip := forbidden[v]; skip {
			continue
		}
		bits := transposed.Row(v).SetBits()
		if len(bits) == 0 {
			continue
		}
		involved := involvedBddsFromBits(bits, entries)
		if len(involved) != 1 {
			continue
		}
		indeps = append(indeps, Independency{InvolvedBdds: involved})
	}
	return indeps
}
