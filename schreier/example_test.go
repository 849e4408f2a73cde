package schreier_test

import (
	"fmt"

	"github.com/cgtl/mpsym/perm"
	"github.com/cgtl/mpsym/schreier"
)

func ExampleTree() {
	var labels perm.PermSet
	cyc, _ := perm.NewCycle(3, []uint{1, 2, 3})
	_ = labels.Insert(cyc)

	tree := schreier.NewTree()
	tree.CreateRoot(1)
	tree.CreateLabels(labels)
	tree.CreateEdge(1, 2, 0)
	tree.CreateEdge(2, 3, 0)

	tr, _ := tree.Transversal(3)
	fmt.Println(tr)
	// Output: (1 3 2)
}
