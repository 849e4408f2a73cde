package bsgs

import (
	"github.com/cgtl/mpsym/orbit"
	"github.com/cgtl/mpsym/perm"
	"github.com/cgtl/mpsym/schreier"
)

// constructSymmetric builds the canonical BSGS for Sym(degree) directly,
// bypassing Schreier-Sims: base (1, ..., degree-1), strong generators the
// transpositions (i, degree) for i = degree-1 down to 1, inserted in that
// order. Level i uses the first (degree-i-1) of those transpositions,
// giving an orbit of size degree-i at that level.
func (b *BSGS) constructSymmetric() {
	if b.degree <= 1 {
		return
	}

	base := make([]uint, b.degree-1)
	for i := range base {
		base[i] = uint(i + 1)
	}

	var sgs perm.PermSet
	for i := b.degree - 1; i > 0; i-- {
		tr, err := perm.NewTransposition(b.degree, i, b.degree)
		if err != nil {
			continue
		}
		_ = sgs.Insert(tr)
	}
	sgs.MakeUnique()

	b.base = base
	b.strongGenerators = sgs
	b.buildSubsetLevels(sgs)
}

// constructAlternating builds the canonical BSGS for Alt(degree) directly:
// base (1, ..., degree-2), strong generators the 3-cycles
// (i, degree-1, degree) for i = degree-2 down to 1, plus their inverses.
// Level i uses the first (degree-i-2) of those 3-cycles (and their
// inverses).
func (b *BSGS) constructAlternating() {
	if b.degree < 3 {
		return
	}

	base := make([]uint, b.degree-2)
	for i := range base {
		base[i] = uint(i + 1)
	}

	var sgs perm.PermSet
	for i := b.degree - 2; i > 0; i-- {
		c, err := perm.NewCycle(b.degree, []uint{i, b.degree - 1, b.degree})
		if err != nil {
			continue
		}
		_ = sgs.Insert(c)
	}
	_ = sgs.InsertInverses()
	sgs.MakeUnique()

	b.base = base
	b.strongGenerators = sgs
	b.buildSubsetLevels(sgs)
}

// buildSubsetLevels populates b.levels directly from prefixes of sgs: level
// i (0-indexed) stabilizes base[0:i] using the first (len(base) - i)
// generators of sgs (the list is ordered so that every later-appended
// generator only ever moves points outside the remaining base suffix, and
// InsertInverses only appends, so this prefix is insulated from any
// inverses already folded into sgs).
func (b *BSGS) buildSubsetLevels(sgs perm.PermSet) {
	b.levels = make([]schreier.Structure, len(b.base))
	for i := range b.base {
		width := len(b.base) - i
		tmp := sgs.Subset(0, width)
		_ = tmp.InsertInverses()
		s := b.newStructure()
		orbit.Generate(b.base[i], tmp, s)
		b.levels[i] = s
	}
}
