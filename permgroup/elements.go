package permgroup

import (
	"iter"

	"github.com/cgtl/mpsym/perm"
)

// Elements returns a single-pass iterator over every element of the group,
// in the order induced by the stabilizer chain's base-image odometer:
// varying the last base level's representative fastest. The sequence has
// exactly Order() elements; stopping the range early (the yield function
// returning false) abandons enumeration without building the rest.
//
// Every element decomposes uniquely as
// T_1(beta_1) . T_2(beta_2) . ... . T_k(beta_k); the inner loop below folds
// that product right to left, prepending each level's transversal onto the
// accumulator built from the levels after it.
func (g *PermGroup) Elements() iter.Seq[perm.Permutation] {
	chain := g.chain
	return func(yield func(perm.Permutation) bool) {
		k := chain.BaseSize()
		if k == 0 {
			yield(perm.Identity(chain.Degree()))
			return
		}

		orbits := make([][]uint, k)
		for i := 0; i < k; i++ {
			orbits[i] = chain.Orbit(i).Points()
		}

		idx := make([]int, k)
		for {
			acc := perm.Identity(chain.Degree())
			for i := k - 1; i >= 0; i-- {
				t, err := chain.Transversal(i, orbits[i][idx[i]])
				if err != nil {
					return
				}
				acc = t.Mul(acc)
			}
			if !yield(acc) {
				return
			}

			pos := k - 1
			for pos >= 0 {
				idx[pos]++
				if idx[pos] < len(orbits[pos]) {
					break
				}
				idx[pos] = 0
				pos--
			}
			if pos < 0 {
				return
			}
		}
	}
}

// All collects Elements into a slice; unlike Elements, the result can be
// iterated repeatedly.
func (g *PermGroup) All() []perm.Permutation {
	out := make([]perm.Permutation, 0, g.Order())
	for p := range g.Elements() {
		out = append(out, p)
	}
	return out
}
