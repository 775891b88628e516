package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/crhsys/analyzer"
	"github.com/katalvlaran/crhsys/crhs"
	"github.com/katalvlaran/crhsys/system"
)

// bestDepIndex returns the index of the Dependency with the lowest
// MinimizeDistance, and that distance. Ties keep the earliest index.
func bestDepIndex(deps []analyzer.Dependency) (int, int) {
	best, minDistance := 0, math.MaxInt
	for i, d := range deps {
		if md := d.MinimizeDistance(); md < minDistance {
			best, minDistance = i, md
		}
	}
	return best, minDistance
}

// bestIndepIndex mirrors bestDepIndex for independencies.
func bestIndepIndex(indeps []analyzer.Independency) (int, int) {
	best, minDistance := 0, math.MaxInt
	for i, ind := range indeps {
		if md := ind.MinimizeDistance(); md < minDistance {
			best, minDistance = i, md
		}
	}
	return best, minDistance
}

// depResolve joins every bdd in ids onto ids[0], then repeatedly swaps and
// adds the involved levels upward until their sum sits at level levels[0]+1,
// which is then absorbed along its 0-edges. ids and levels must come from a
// Dependency.BestJoinOrder result.
func depResolve(sys *system.System, ids []crhs.BddID, levels []int) error {
	root, err := joinAll(sys, ids)
	if err != nil {
		return fmt.Errorf("depResolve: %w", err)
	}
	for i := len(levels) - 2; i >= 0; i-- {
		for j := levels[i+1] - 1; j > levels[i]; j-- {
			if err := sys.Swap(root, j, j+1); err != nil {
				return fmt.Errorf("depResolve: %w", err)
			}
		}
		if err := sys.Add(root, levels[i], levels[i]+1); err != nil {
			return fmt.Errorf("depResolve: %w", err)
		}
		if i != 0 {
			if err := sys.Swap(root, levels[i], levels[i]+1); err != nil {
				return fmt.Errorf("depResolve: %w", err)
			}
		}
	}
	if err := sys.Absorb(root, levels[0]+1, false); err != nil {
		return fmt.Errorf("depResolve: %w", err)
	}
	return nil
}

// indepResolve joins every bdd in ids onto ids[0], then adds each involved
// level into the next one downward and swaps it into place, leaving the last
// level in levels isolating the dropped variable, which is then dropped.
// ids and levels must come from an Independency.BestJoinOrder result.
func indepResolve(sys *system.System, ids []crhs.BddID, levels []int) error {
	root, err := joinAll(sys, ids)
	if err != nil {
		return fmt.Errorf("indepResolve: %w", err)
	}
	for i := 0; i < len(levels)-1; i++ {
		if err := sys.Add(root, levels[i], levels[i+1]); err != nil {
			return fmt.Errorf("indepResolve: %w", err)
		}
		if err := sys.Swap(root, levels[i+1]-1, levels[i+1]); err != nil {
			return fmt.Errorf("indepResolve: %w", err)
		}
	}
	if err := sys.Drop(root, levels[len(levels)-1]); err != nil {
		return fmt.Errorf("indepResolve: %w", err)
	}
	return nil
}

// joinAll splices every bdd in ids[1:] onto ids[0] and returns ids[0]. ids
// always has at least one entry, since BestJoinOrder never returns an empty
// join order.
func joinAll(sys *system.System, ids []crhs.BddID) (crhs.BddID, error) {
	root := ids[0]
	for _, id := range ids[1:] {
		if _, err := sys.JoinBDDs(root, id); err != nil {
			return 0, err
		}
	}
	return root, nil
}

// absorbAllEquations repeatedly scans every bdd in sys for equations to
// absorb until a full pass absorbs nothing, popping any bdd reduced to its
// sink along the way.
func absorbAllEquations(sys *system.System) error {
	for {
		absorbedAny := false
		ids := sys.BddIDs()
		for _, id := range ids {
			n, err := sys.ScanAbsorbLinEqs(id)
			if err != nil {
				return fmt.Errorf("absorbAllEquations: %w", err)
			}
			if n > 0 {
				absorbedAny = true
			}
		}
		for _, id := range ids {
			bdd, err := sys.GetBDD(id)
			if err != nil {
				continue
			}
			if bdd.SinkLevelIndex() == 0 {
				if _, err := sys.PopBDD(id); err != nil {
					return fmt.Errorf("absorbAllEquations: %w", err)
				}
			}
		}
		if !absorbedAny {
			return nil
		}
	}
}
