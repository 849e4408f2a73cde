package automorphism_test

import (
	"fmt"

	"github.com/cgtl/mpsym/automorphism"
)

func ExampleGraph_ToGAP() {
	g := automorphism.New(3, false)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)

	fmt.Println(g.ToGAP())
	// Output: ReduceGroup(GraphAutoms([[1,2],[2,1],[2,3],[3,2]],[[1,2,3]],3),3)
}
