package bsgs

import (
	"github.com/cgtl/mpsym/orbit"
	"github.com/cgtl/mpsym/perm"
)

// reduceGens greedily removes redundant strong generators: for each
// generator (tried in reverse insertion order, since later-inserted
// generators are usually the more-derived Schreier-generator residues and
// the more likely to be removable), tentatively drop it and recompute
// every level's orbit from the remaining set. If every level's orbit size
// is unchanged, the order is unchanged; since the remaining generators
// still generate a subgroup of the original group and a subgroup of equal
// order to a finite group equals that group, dropping the generator is
// safe. Otherwise it is restored.
func (b *BSGS) reduceGens() {
	members := append([]perm.Permutation(nil), b.strongGenerators.Members()...)
	originalOrbitSizes := b.orbitSizes()

	kept := make([]perm.Permutation, len(members))
	copy(kept, members)

	for i := len(kept) - 1; i >= 0; i-- {
		candidate := append(append([]perm.Permutation(nil), kept[:i]...), kept[i+1:]...)

		var trial perm.PermSet
		for _, p := range candidate {
			_ = trial.Insert(p)
		}

		if b.ordersMatch(trial, originalOrbitSizes) {
			kept = candidate
		}
	}

	var reduced perm.PermSet
	for _, p := range kept {
		_ = reduced.Insert(p)
	}
	b.strongGenerators = reduced
	b.rebuild()
}

func (b *BSGS) orbitSizes() []int {
	sizes := make([]int, len(b.levels))
	for i, lv := range b.levels {
		sizes[i] = len(lv.Nodes())
	}
	return sizes
}

// ordersMatch reports whether every level's orbit, recomputed from trial,
// has the same size as want.
func (b *BSGS) ordersMatch(trial perm.PermSet, want []int) bool {
	for i := range b.base {
		stab := trial.StabilizingSubset(b.base[:i])
		_ = stab.InsertInverses()
		s := b.newStructure()
		orb := orbit.Generate(b.base[i], stab, s)
		if orb.Size() != want[i] {
			return false
		}
	}
	return true
}
