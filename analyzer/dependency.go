package analyzer

import (
	"sort"

	"github.com/katalvlaran/crhsys/bitform"
	"github.com/katalvlaran/crhsys/crhs"
	"github.com/katalvlaran/crhsys/system"
)

// Dependency is a linear combination of levels, scattered across one or
// more BDDs, whose forms XOR to the all-zero vector: joining the BDDs
// involved, adding those levels together, and absorbing the resulting
// zero-level removes it from the system.
type Dependency struct {
	InvolvedBdds []InvolvedBdd
}

// MinimizeDistance estimates the number of nodes that resolving d will
// force the solver to touch. Lower is cheaper. A single-BDD dependency
// spanning only one level costs nothing (it's already a single level, no
// join or add is needed); everything else sums the node counts the best
// join order would have to carry along.
func (d Dependency) MinimizeDistance() int {
	if len(d.InvolvedBdds) == 1 {
		bdd := d.InvolvedBdds[0]
		if len(bdd.InvolvedLevels) == 1 {
			return 0
		}
		start := bdd.InvolvedLevels[0]
		end := bdd.InvolvedLevels[len(bdd.InvolvedLevels)-1]
		return sumSkipTake(bdd.Levels, start, end)
	}

	ids, _ := d.BestJoinOrder()
	start, end := ids[0], ids[len(ids)-1]
	score := 0
	for _, bdd := range d.InvolvedBdds {
		switch bdd.ID {
		case start:
			score += sumSkipTake(bdd.Levels, bdd.InvolvedLevels[0], len(bdd.Levels))
		case end:
			score += sumSkipTake(bdd.Levels, 0, bdd.InvolvedLevels[len(bdd.InvolvedLevels)-1])
		default:
			for _, v := range bdd.Levels {
				score += v
			}
		}
	}
	return score
}

// BestJoinOrder returns the order the involved BDDs should be joined in
// (the first id becomes the root every other id is folded into) and the
// level indices, in the resulting joined BDD, that compose the
// dependency. The BDD placed first avoids having to carry its levels
// above the dependency through the join; the BDD placed last avoids
// carrying its levels below. Everything else is joined in between, in no
// particular order, since it pays the full cost regardless of position.
func (d Dependency) BestJoinOrder() ([]crhs.BddID, []int) {
	if len(d.InvolvedBdds) == 1 {
		return []crhs.BddID{d.InvolvedBdds[0].ID}, append([]int(nil), d.InvolvedBdds[0].InvolvedLevels...)
	}

	remaining := append([]InvolvedBdd(nil), d.InvolvedBdds...)
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

	endIdx, maxSaved := 0, 0
	for i, bdd := range remaining {
		last := bdd.InvolvedLevels[len(bdd.InvolvedLevels)-1]
		if saved := sumSkipTake(bdd.Levels, last, len(bdd.Levels)); saved > maxSaved {
			maxSaved, endIdx = saved, i
		}
	}
	end := remaining[endIdx]
	remaining = append(remaining[:endIdx], remaining[endIdx+1:]...)

	for _, bdd := range remaining {
		resIDs = append(resIDs, bdd.ID)
	}
	resIDs = append(resIDs, end.ID)

	for _, bdd := range remaining {
		for _, level := range bdd.InvolvedLevels {
			resLevels = append(resLevels, level+lenAbove)
		}
		lenAbove += len(bdd.Levels)
	}
	for _, level := range end.InvolvedLevels {
		resLevels = append(resLevels, level+lenAbove)
	}

	return resIDs, resLevels
}

// ExtractDependencies finds every Dependency in sys: it concatenates every
// BDD's per-level forms (sorted by BddID, for a reproducible bit-to-level
// mapping) into one matrix, extracts that matrix's linear dependency
// basis, and maps each basis row's set bits back to the levels, across
// one or more BDDs, they name.
func ExtractDependencies(sys *system.System) []Dependency {
	lhsByID := sys.SystemLHS()
	sizes := sys.BddSizes()

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
	linDep, err := bitform.ExtractLinearDependencies(mat)
	if err != nil {
		return nil
	}

	var deps []Dependency
	for i := 0; i < linDep.Rows(); i++ {
		bits := linDep.Row(i).SetBits()
		if len(bits) == 0 {
			continue
		}
		deps = append(deps, Dependency{InvolvedBdds: involvedBddsFromBits(bits, entries)})
	}
	return deps
}
