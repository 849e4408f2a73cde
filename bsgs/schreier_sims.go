package bsgs

import "github.com/cgtl/mpsym/perm"

// schreierSimsIterationCap bounds the fixed-point loop below as a defense
// against a construction bug turning into an infinite loop; a genuine BSGS
// construction for the degrees this package targets converges in a small
// multiple of |base| * |strongGenerators| iterations.
const schreierSimsIterationCap = 100000

// schreierSims runs deterministic Schreier-Sims: seed a base from a point
// moved by some generator, build the stabilizer chain, then repeatedly scan
// every (orbit point, label) pair for a Schreier generator that does not
// strip to identity, inserting its residue (and extending the base when
// the residue already fixes every current base point) until no such pair
// remains.
func (b *BSGS) schreierSims(generators perm.PermSet) error {
	b.strongGenerators = copySet(generators)
	b.base = nil
	ensureNonTrivialBase(&b.base, b.strongGenerators)
	b.rebuild()

	for iter := 0; iter < schreierSimsIterationCap; iter++ {
		extended, err := b.scanSchreierGenerators()
		if err != nil {
			return err
		}
		if !extended {
			return nil
		}
	}
	return ErrInvariantViolated
}

// scanSchreierGenerators walks every level's (orbit point, label) pair,
// forms the corresponding Schreier generator, and strips it through the
// chain starting just past that level (it is already guaranteed to fix the
// base points up to and including that level). A non-trivial residue is
// inserted into the strong generating set, extending the base first if the
// residue already fixes every current base point. Returns true (and stops
// scanning) as soon as one insertion happens, since inserting changes every
// level's orbit and the scan must restart from a rebuilt chain.
func (b *BSGS) scanSchreierGenerators() (bool, error) {
	for i := range b.base {
		levelLabels := b.levels[i].Labels()
		labels := levelLabels.Members()
		for _, beta := range b.levels[i].Nodes() {
			tBeta, err := b.levels[i].Transversal(beta)
			if err != nil {
				return false, err
			}
			for _, g := range labels {
				betaPrime, err := g.At(beta)
				if err != nil {
					continue
				}
				tBetaPrime, err := b.levels[i].Transversal(betaPrime)
				if err != nil {
					continue
				}

				gen, err := schreierGenerator(g, tBeta, tBetaPrime)
				if err != nil {
					return false, err
				}

				residue, level := b.Strip(gen, i+1)
				if level == len(b.base)+1 && residue.IsIdentity() {
					continue
				}

				if err := b.insertResidue(residue); err != nil {
					return false, err
				}
				return true, nil
			}
		}
	}
	return false, nil
}

// schreierGenerator builds the Schreier generator for (beta, g):
// tBetaPrime^-1 * g * tBeta, where tBeta(root) = beta and
// tBetaPrime(root) = g(beta). This fixes root by construction (Schreier's
// lemma): root -> beta -> g(beta) -> root.
func schreierGenerator(g, tBeta, tBetaPrime perm.Permutation) (perm.Permutation, error) {
	mid, err := perm.Compose(g, tBeta)
	if err != nil {
		return perm.Permutation{}, err
	}
	return perm.Compose(tBetaPrime.Inverse(), mid)
}

// insertResidue inserts a non-identity Schreier-generator residue into the
// strong generating set, extending the base first if residue already fixes
// every current base point, then rebuilds the whole chain.
func (b *BSGS) insertResidue(residue perm.Permutation) error {
	if residue.IsIdentity() {
		return nil
	}
	if residue.Stabilizes(b.base) {
		point, ok := firstMovedPoint(residue, b.base)
		if !ok {
			return ErrInvariantViolated
		}
		b.base = append(b.base, point)
	}
	if err := b.strongGenerators.Insert(residue); err != nil {
		return err
	}
	b.rebuild()
	return nil
}

// ensureNonTrivialBase appends one point moved by some member of gens to
// base, if base is empty and gens is non-trivial.
func ensureNonTrivialBase(base *[]uint, gens perm.PermSet) {
	if len(*base) > 0 || gens.Trivial() {
		return
	}
	for _, g := range gens.Members() {
		if point, ok := firstMovedPoint(g, nil); ok {
			*base = append(*base, point)
			return
		}
	}
}

func copySet(s perm.PermSet) perm.PermSet {
	var out perm.PermSet
	for _, p := range s.Members() {
		_ = out.Insert(p)
	}
	return out
}
