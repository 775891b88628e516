package solver_test

import (
	"fmt"

	"github.com/katalvlaran/crhsys/solver"
	"github.com/katalvlaran/crhsys/spec"
)

// ExampleSolver_Solve builds a single-variable, single-equation system
// ("x0 = 1") and solves it.
func ExampleSolver_Solve() {
	sysSpec := spec.SystemSpec{
		NVar: 1,
		BDDs: []spec.BDDSpec{{
			ID: 0,
			Levels: []spec.LevelSpec{
				{LHS: []int64{0}, RHS: []spec.NodeSpec{{ID: 1, E0: 0, E1: 2}}},
				{LHS: nil, RHS: []spec.NodeSpec{{ID: 2, E0: 0, E1: 0}}},
			},
		}},
	}
	sys, err := spec.Build(sysSpec)
	if err != nil {
		panic(err)
	}

	sol, err := solver.New().Solve(sys)
	if err != nil {
		panic(err)
	}
	fmt.Println(*sol.Assignments[0][0])
	// Output: true
}
