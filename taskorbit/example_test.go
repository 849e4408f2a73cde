package taskorbit_test

import (
	"fmt"

	"github.com/cgtl/mpsym/perm"
	"github.com/cgtl/mpsym/permgroup"
	"github.com/cgtl/mpsym/taskorbit"
)

func ExampleMinimize() {
	var gens perm.PermSet
	cyc, _ := perm.NewCycle(3, []uint{1, 2, 3})
	tr, _ := perm.NewTransposition(3, 1, 2)
	_ = gens.Insert(cyc)
	_ = gens.Insert(tr)
	g, _ := permgroup.New(3, gens)

	a := taskorbit.NewTaskAllocation([]uint{3, 1, 2}, 0)
	canon, _ := taskorbit.Minimize(a, g, taskorbit.Iterate, nil)
	fmt.Println(canon.Values())
	// Output: [1 2 3]
}
