package orbit_test

import (
	"testing"

	"github.com/cgtl/mpsym/orbit"
	"github.com/cgtl/mpsym/perm"
	"github.com/cgtl/mpsym/schreier"
)

// BenchmarkGenerateCycle100 measures orbit closure under a single large
// cycle, the cheapest possible BFS shape (one edge per node).
func BenchmarkGenerateCycle100(b *testing.B) {
	const degree = 100
	cycle := make([]uint, degree)
	for i := range cycle {
		cycle[i] = uint(i + 1)
	}
	gen, err := perm.NewCycle(degree, cycle)
	if err != nil {
		b.Fatal(err)
	}
	var labels perm.PermSet
	if err := labels.Insert(gen); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		orbit.Generate(1, labels, schreier.NewTree())
	}
}
