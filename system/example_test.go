package system_test

import (
	"fmt"

	"github.com/katalvlaran/crhsys/crhs"
	"github.com/katalvlaran/crhsys/system"
)

// ExampleSystem_GetSolutions builds a System holding the BDD for x0+x1=1,
// then reads off both solutions.
func ExampleSystem_GetSolutions() {
	bdd := crhs.NewBDD(0)
	bdd.AddLevel(2)
	bdd.AddLevel(2)
	bdd.AddLevel(2)
	_ = bdd.SetLHSLevel(0, []int{0}, 2)
	_ = bdd.SetLHSLevel(1, []int{1}, 2)
	_, _ = bdd.AddNodesToLevel(0, []uint64{1})
	_, _ = bdd.AddNodesToLevel(1, []uint64{2, 3})
	_, _ = bdd.AddNodesToLevel(2, []uint64{4})
	_ = bdd.ConnectNodesFromSpec(1, 2, false)
	_ = bdd.ConnectNodesFromSpec(1, 3, true)
	_ = bdd.ConnectNodesFromSpec(2, 4, true)
	_ = bdd.ConnectNodesFromSpec(3, 4, false)

	s := system.New(2)
	_ = s.PushBDD(bdd)

	result, _ := s.GetSolutions(0)
	fmt.Println(len(result.Assignments))
	// Output:
	// 2
}
