package analyzer

import (
	"math"
	"sort"

	"github.com/katalvlaran/crhsys/crhs"
)

// bddPattern groups dependencies that involve exactly the same set of
// BDDs (by id), tracking the indices into the original deps slice and the
// total node weight those BDDs carry.
type bddPattern struct {
	ids    []crhs.BddID
	deps   []int
	weight int
}

func idsEqual(a, b []crhs.BddID) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// FindBestBDDPattern groups deps by the set of BDDs each one involves and
// returns only the group whose average weight (total node count of the
// involved BDDs, divided by how many dependencies share that pattern) is
// lowest. Resolving dependencies from the cheapest pattern first tends to
// shrink the system before the more expensive patterns are even
// considered, since later extraction passes often make those patterns'
// dependencies cheaper too.
func FindBestBDDPattern(deps []Dependency) []Dependency {
	var patterns []*bddPattern
	for i, dep := range deps {
		ids := make([]crhs.BddID, 0, len(dep.InvolvedBdds))
		weight := 0
		for _, bdd := range dep.InvolvedBdds {
			ids = append(ids, bdd.ID)
			weight += bdd.TotalSize
		}
		sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })

		var matched *bddPattern
		for _, p := range patterns {
			if idsEqual(p.ids, ids) {
				matched = p
				break
			}
		}
		if matched != nil {
			matched.deps = append(matched.deps, i)
			continue
		}
		patterns = append(patterns, &bddPattern{ids: ids, deps: []int{i}, weight: weight})
	}
	if len(patterns) == 0 {
		return nil
	}

	bestIdx, minWeight := 0, math.MaxInt
	for i, p := range patterns {
		if w := p.weight / len(p.deps); w < minWeight {
			minWeight, bestIdx = w, i
		}
	}

	best := make([]Dependency, 0, len(patterns[bestIdx].deps))
	for _, i := range patterns[bestIdx].deps {
		best = append(best, deps[i])
	}
	return best
}
