package spec

import (
	"fmt"

	"github.com/katalvlaran/crhsys/crhs"
	"github.com/katalvlaran/crhsys/system"
)

// Build constructs a system.System from spec. If the BDD ids named in
// spec.BDDs are not all distinct, every BDD is instead assigned its slice
// index as its id.
func Build(sys SystemSpec) (*system.System, error) {
	ids := make(map[uint64]struct{}, len(sys.BDDs))
	for _, bdd := range sys.BDDs {
		ids[bdd.ID] = struct{}{}
	}
	reassign := len(ids) != len(sys.BDDs)

	s := system.New(sys.NVar)
	for i := range sys.BDDs {
		bddSpec := &sys.BDDs[i]
		if reassign {
			bddSpec.ID = uint64(i)
		}
		bdd, err := BuildBDD(bddSpec, sys.NVar)
		if err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		if err := s.PushBDD(bdd); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}
	return s, nil
}

// BuildBDD constructs a single crhs.BDD from a BDDSpec: levels are created
// and their forms set (after resolving each LevelSpec's -1 cancellation
// markers), nodes are inserted, edges are connected per each NodeSpec's
// E0/E1 (an edge value of 0 means no edge), and any jumping edges — a node
// whose child lives more than one level down — are repaired by inserting
// same-edges nodes at every intervening level.
func BuildBDD(spec *BDDSpec, nvar int) (crhs.BDD, error) {
	if len(spec.Levels) == 0 {
		return crhs.BDD{}, fmt.Errorf("BuildBDD: %w", ErrEmptyBDDSpec)
	}
	if spec.ID >= crhs.MaxBDDs {
		return crhs.BDD{}, fmt.Errorf("BuildBDD: %w (id=%d)", crhs.ErrTooManyBDDs, spec.ID)
	}

	bdd := crhs.NewBDD(crhs.BddID(spec.ID))

	var maxID uint64
	for i := range spec.Levels {
		level := &spec.Levels[i]
		level.RemoveMinusOne()
		bdd.AddLevel(nvar)
		vars := make([]int, len(level.LHS))
		for j, v := range level.LHS {
			vars[j] = int(v)
		}
		if err := bdd.SetLHSLevel(i, vars, nvar); err != nil {
			return crhs.BDD{}, fmt.Errorf("BuildBDD: %w", err)
		}
		specIDs := make([]uint64, len(level.RHS))
		for j, node := range level.RHS {
			specIDs[j] = node.ID
			if node.ID > maxID {
				maxID = node.ID
			}
		}
		if _, err := bdd.AddNodesToLevel(i, specIDs); err != nil {
			return crhs.BDD{}, fmt.Errorf("BuildBDD: %w", err)
		}
	}
	bdd.ResetNextLocal(maxID + 1)

	for _, level := range spec.Levels {
		for _, node := range level.RHS {
			if node.E0 != 0 {
				if err := bdd.ConnectNodesFromSpec(node.ID, node.E0, false); err != nil {
					return crhs.BDD{}, fmt.Errorf("BuildBDD: %w", err)
				}
			}
			if node.E1 != 0 {
				if err := bdd.ConnectNodesFromSpec(node.ID, node.E1, true); err != nil {
					return crhs.BDD{}, fmt.Errorf("BuildBDD: %w", err)
				}
			}
		}
	}

	for i := 1; i < len(spec.Levels)-1; i++ {
		if _, err := bdd.AddSameEdgesNodeAtLevel(i); err != nil {
			return crhs.BDD{}, fmt.Errorf("BuildBDD: %w", err)
		}
	}

	return bdd, nil
}
