package bsgs

import (
	"github.com/cgtl/mpsym/perm"
	"github.com/cgtl/mpsym/prandom"
)

// schreierSimsRandomStream identifies the RNG sub-stream schreierSimsRandom
// derives from an existing alt/sym sampler, so the two draw decorrelated
// tape histories from the same root seed instead of replaying it.
const schreierSimsRandomStream uint64 = 1

// schreierSimsRandom runs randomized Schreier-Sims: draw random elements
// from a product-replacement randomizer, strip each through the chain, and
// insert any non-trivial residue exactly as the deterministic variant does.
// When sampler is non-nil (construction already ran the alt/sym test), the
// scratch randomizer's RNG is derived from sampler's own stream via
// prandom.NewScratch rather than re-seeded from o.RandomSeed directly;
// otherwise it seeds fresh from o.RandomSeed. Stops when either the
// computed order matches a supplied known-order hint, or
// randomFailureBound consecutive draws strip to identity without extending
// the chain.
func (b *BSGS) schreierSimsRandom(generators perm.PermSet, o Options, sampler *prandom.Randomizer) error {
	b.strongGenerators = copySet(generators)
	b.base = nil
	ensureNonTrivialBase(&b.base, b.strongGenerators)
	b.rebuild()

	r, err := prandom.NewScratch(sampler, schreierSimsRandomStream, generators, prandom.WithSeed(o.RandomSeed))
	if err != nil {
		return err
	}

	misses := 0
	for misses < randomFailureBound {
		if o.SchreierSimsRandomUseKnownOrder && b.Order() == o.SchreierSimsRandomKnownOrder {
			return nil
		}

		sample := r.Next()
		residue, level := b.Strip(sample, 0)
		if level == len(b.base)+1 && residue.IsIdentity() {
			misses++
			continue
		}

		if err := b.insertResidue(residue); err != nil {
			return err
		}
		misses = 0
	}

	if o.SchreierSimsRandomUseKnownOrder && b.Order() != o.SchreierSimsRandomKnownOrder {
		// The known-order hint was supplied but never matched: fall back to
		// the deterministic sweep to guarantee a correct chain rather than
		// return a probably-but-not-certainly-complete one.
		return b.schreierSims(generators)
	}

	return nil
}
