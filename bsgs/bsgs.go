package bsgs

import (
	"fmt"

	"github.com/cgtl/mpsym/orbit"
	"github.com/cgtl/mpsym/perm"
	"github.com/cgtl/mpsym/prandom"
	"github.com/cgtl/mpsym/schreier"
)

// BSGS is a base and strong generating set for a permutation group: a
// sequence of base points and a strong generating set, plus one Schreier
// structure per base level representing the orbit of that level's point
// under the stabilizer of the preceding points.
type BSGS struct {
	degree           uint
	base             []uint
	strongGenerators perm.PermSet
	levels           []schreier.Structure
	variant          Transversals
	isSymmetric      bool
	isAlternating    bool
}

// New builds a BSGS for the group generated by generators, a PermSet of
// degree == degree (or the trivial/empty set, denoting the trivial group).
//
// Construction dispatch, in order:
//  1. Options.Transversals == ShallowSchreierTrees -> ErrUnsupported.
//  2. Trivial generators -> empty base, order 1.
//  3. degree > 8 and Options.CheckAltSym -> run prandom's alt/sym tests;
//     on a positive result, take the matching fast path.
//  4. Otherwise dispatch on Options.Construction: SchreierSimsRandom forces
//     the randomized variant; SchreierSims and Solve force deterministic
//     Schreier-Sims (Solve is a documented alias, see SPEC_FULL.md §4.E); Auto
//     uses randomized Schreier-Sims when a known order hint is supplied,
//     deterministic otherwise.
//  5. If Options.ReduceGens, run generator reduction.
func New(degree uint, generators perm.PermSet, opts ...Option) (*BSGS, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.Transversals == ShallowSchreierTrees {
		return nil, ErrUnsupported
	}

	if !generators.Trivial() {
		if err := generators.AssertDegree(degree); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDegreeMismatch, err)
		}
	}

	b := &BSGS{degree: degree, variant: o.Transversals}

	if generators.Trivial() {
		return b, nil
	}

	var altSymSampler *prandom.Randomizer
	if degree > altSymDegreeThreshold && o.CheckAltSym {
		r, err := prandom.New(generators, prandom.WithSeed(o.RandomSeed))
		if err == nil {
			altSymSampler = r
			switch {
			case r.TestSymmetric():
				b.constructSymmetric()
				b.isSymmetric = true
			case r.TestAlternating():
				b.constructAlternating()
				b.isAlternating = true
			}
		}
	}

	if len(b.base) == 0 {
		switch o.Construction {
		case SchreierSimsRandom:
			if err := b.schreierSimsRandom(generators, o, altSymSampler); err != nil {
				return nil, err
			}
		case SchreierSims, Solve:
			if err := b.schreierSims(generators); err != nil {
				return nil, err
			}
		default: // Auto
			if o.SchreierSimsRandomUseKnownOrder {
				if err := b.schreierSimsRandom(generators, o, altSymSampler); err != nil {
					return nil, err
				}
			} else if err := b.schreierSims(generators); err != nil {
				return nil, err
			}
		}
	}

	if o.ReduceGens {
		b.reduceGens()
	}

	if !b.stripsCompletelyAll() {
		return nil, ErrInvariantViolated
	}

	return b, nil
}

// Degree returns the size of the underlying point set.
func (b *BSGS) Degree() uint { return b.degree }

// Base returns the base points, in level order.
func (b *BSGS) Base() []uint {
	out := make([]uint, len(b.base))
	copy(out, b.base)
	return out
}

// BaseSize returns len(Base()).
func (b *BSGS) BaseSize() int { return len(b.base) }

// StrongGenerators returns the strong generating set.
func (b *BSGS) StrongGenerators() perm.PermSet { return b.strongGenerators }

// IsSymmetric reports whether construction took the symmetric fast path.
func (b *BSGS) IsSymmetric() bool { return b.isSymmetric }

// IsAlternating reports whether construction took the alternating fast path.
func (b *BSGS) IsAlternating() bool { return b.isAlternating }

// Orbit returns level i's orbit (the orbit of Base()[i] under the
// stabilizer of the preceding base points).
func (b *BSGS) Orbit(i int) orbit.Orbit {
	return orbit.FromPoints(b.levels[i].Nodes())
}

// Transversal returns level i's transversal of point, the permutation
// carrying Base()[i] to point.
func (b *BSGS) Transversal(i int, point uint) (perm.Permutation, error) {
	return b.levels[i].Transversal(point)
}

// Order returns the group order: the product of every level's orbit size,
// or 1 for the trivial group.
func (b *BSGS) Order() uint64 {
	order := uint64(1)
	for _, lv := range b.levels {
		order *= uint64(len(lv.Nodes()))
	}
	return order
}

// Strip sifts p through the stabilizer chain starting at level offs: for
// each level i >= offs, let beta = p(base[i]); if beta is not in level i's
// orbit, strip returns immediately with that level's index + 1 (1-based
// "failed here"). Otherwise p is replaced with
// transversal(beta)^-1 * p (so the result fixes base[i]) and the walk
// continues. Strip returns (residue, BaseSize()+1) when every level is
// passed.
func (b *BSGS) Strip(p perm.Permutation, offs int) (perm.Permutation, int) {
	for i := offs; i < len(b.base); i++ {
		beta, err := p.At(b.base[i])
		if err != nil || !b.levels[i].Contains(beta) {
			return p, i + 1
		}
		t, err := b.levels[i].Transversal(beta)
		if err != nil {
			return p, i + 1
		}
		p, err = perm.Compose(t.Inverse(), p)
		if err != nil {
			return p, i + 1
		}
	}
	return p, len(b.base) + 1
}

// StripsCompletely reports whether p strips to the identity at level
// BaseSize()+1, i.e. whether p is a member of the group.
func (b *BSGS) StripsCompletely(p perm.Permutation) bool {
	residue, level := b.Strip(p, 0)
	return level == len(b.base)+1 && residue.IsIdentity()
}

// Contains is an alias for StripsCompletely: group membership.
func (b *BSGS) Contains(p perm.Permutation) bool { return b.StripsCompletely(p) }

func (b *BSGS) stripsCompletelyAll() bool {
	for _, g := range b.strongGenerators.Members() {
		if !b.StripsCompletely(g) {
			return false
		}
	}
	return true
}

func (b *BSGS) newStructure() schreier.Structure {
	if b.variant == Explicit {
		return schreier.NewExplicit()
	}
	return schreier.NewTree()
}

// rebuildLevel recomputes level i's Schreier structure from scratch, given
// the current base and strong generating set.
func (b *BSGS) rebuildLevel(i int) {
	stab := b.strongGenerators.StabilizingSubset(b.base[:i])
	_ = stab.InsertInverses()
	s := b.newStructure()
	orbit.Generate(b.base[i], stab, s)
	b.levels[i] = s
}

// rebuild recomputes every level's Schreier structure, growing levels to
// match len(base) first.
func (b *BSGS) rebuild() {
	for len(b.levels) < len(b.base) {
		b.levels = append(b.levels, nil)
	}
	b.levels = b.levels[:len(b.base)]
	for i := range b.base {
		b.rebuildLevel(i)
	}
}

// firstMovedPoint returns the smallest point not in excluded that p does
// not fix, or (0, false) if none exists (p fixes every point outside
// excluded, meaning p is the identity on the unbased points).
func firstMovedPoint(p perm.Permutation, excluded []uint) (uint, bool) {
	isExcluded := make(map[uint]bool, len(excluded))
	for _, e := range excluded {
		isExcluded[e] = true
	}
	for x := uint(1); x <= p.Degree(); x++ {
		if isExcluded[x] {
			continue
		}
		img, err := p.At(x)
		if err == nil && img != x {
			return x, true
		}
	}
	return 0, false
}
