package automorphism

import (
	"fmt"
	"sync"

	"github.com/cgtl/mpsym/perm"
)

// DenseGraph is the dense representation an Oracle consumes: an n x n
// adjacency bit-matrix, a per-vertex color label, the originating
// partition (for oracles that want cell boundaries directly), a directed
// flag, and the real-vertex prefix length.
type DenseGraph struct {
	N         int
	NReduced  int
	Directed  bool
	Adjacency [][]bool
	Labels    []int
	Partition [][]int
}

// Oracle is the external dense-graph-automorphism engine this package
// wraps. A real binding targets a vendored nauty/bliss-equivalent engine;
// this repo ships no such binding (an explicit Non-goal), only the
// interface and a small mockoracle test double.
type Oracle interface {
	// Generators returns one 0-based image array of length g.N per
	// generator of the automorphism group of g.
	Generators(g DenseGraph) ([][]int, error)
}

// oracleMu serializes every call into an Oracle. The dense-graph-
// automorphism engines this wraps are documented as carrying process-wide
// mutable state (global buffers, a global callback pointer); a single
// package-level mutex is strategy (a) from SPEC_FULL.md's Design Notes,
// chosen over a re-entrant oracle or a worker subprocess per call.
var oracleMu sync.Mutex

// AutomorphismGenerators builds this graph's dense representation, invokes
// oracle under the process-wide lock, and translates the raw 0-based
// generator callbacks into a PermSet of degree NumReduced(): only the
// real-vertex prefix is retained per generator, auxiliary color vertices
// having served their purpose encoding the coloring to the oracle.
func (g *Graph) AutomorphismGenerators(oracle Oracle) (perm.PermSet, error) {
	dense := g.toDense()

	oracleMu.Lock()
	raw, err := oracle.Generators(dense)
	oracleMu.Unlock()
	if err != nil {
		return perm.PermSet{}, fmt.Errorf("%w: %v", ErrOracleFailure, err)
	}

	var out perm.PermSet
	for _, image := range raw {
		p, err := reducedPermutation(image, g.numReduced)
		if err != nil {
			return perm.PermSet{}, fmt.Errorf("%w: %v", ErrOracleFailure, err)
		}
		if err := out.Insert(p); err != nil {
			return perm.PermSet{}, fmt.Errorf("%w: %v", ErrOracleFailure, err)
		}
	}
	return out, nil
}

func (g *Graph) toDense() DenseGraph {
	n := g.numVertices
	directed := g.directed || g.effectivelyDirected

	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	for _, e := range g.edges {
		adj[e.From][e.To] = true
		if !directed {
			adj[e.To][e.From] = true
		}
	}

	labels := make([]int, n)
	for cellIdx, cell := range g.partition {
		for _, v := range cell {
			labels[v] = cellIdx
		}
	}

	return DenseGraph{
		N:         n,
		NReduced:  g.numReduced,
		Directed:  directed,
		Adjacency: adj,
		Labels:    labels,
		Partition: g.Partition(),
	}
}

// reducedPermutation converts a 0-based image array of length >= nReduced
// into a 1-based perm.Permutation of degree nReduced, validating that the
// real-vertex prefix maps within itself (the wrapper's documented
// contract: auxiliary vertices never appear in the returned generators).
func reducedPermutation(image []int, nReduced int) (perm.Permutation, error) {
	if len(image) < nReduced {
		return perm.Permutation{}, fmt.Errorf("generator image too short: %d < %d", len(image), nReduced)
	}
	out := make([]uint, nReduced)
	for i := 0; i < nReduced; i++ {
		v := image[i]
		if v < 0 || v >= nReduced {
			return perm.Permutation{}, fmt.Errorf("generator maps real vertex %d outside [0, %d)", i, nReduced)
		}
		out[i] = uint(v) + 1
	}
	return perm.New(out)
}
