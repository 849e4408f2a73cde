package automorphism_test

import (
	"github.com/cgtl/mpsym/automorphism"
)

// mockoracle is a hand-checked test double for automorphism.Oracle: it
// returns a fixed set of generators for a specific graph shape, standing
// in for a real dense-graph-automorphism engine (an explicit exclusion of
// this repo).
type mockoracle struct {
	generators [][]int
	err        error
}

func (m *mockoracle) Generators(automorphism.DenseGraph) ([][]int, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.generators, nil
}

// fourCycleOracle returns the dihedral group D4's generators for the
// undirected 4-cycle 1-2-3-4-1 (0-based: 0-1-2-3-0): the rotation
// (0 1 2 3) and the reflection (1 3) fixing 0 and 2.
func fourCycleOracle() *mockoracle {
	return &mockoracle{
		generators: [][]int{
			{1, 2, 3, 0}, // rotation: 0->1->2->3->0
			{0, 3, 2, 1}, // reflection fixing 0 and 2
		},
	}
}
