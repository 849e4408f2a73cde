package prandom

import (
	"math"
	"math/rand"

	"github.com/cgtl/mpsym/orbit"
	"github.com/cgtl/mpsym/perm"
	"github.com/cgtl/mpsym/schreier"
)

// Randomizer implements the product-replacement Markov chain over a tape
// seeded from a generating set, producing approximately uniform random
// elements of the group the set generates.
type Randomizer struct {
	degree      uint
	tape        []perm.Permutation
	accumulator perm.Permutation
	rng         *rand.Rand
	testRuns    int
}

// New builds a Randomizer from generators, running the warm-up walk before
// returning. Returns ErrEmptyGenerators if generators is empty.
func New(generators perm.PermSet, opts ...Option) (*Randomizer, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return newFromRNG(rngFromSeed(o.Seed), generators, o)
}

// NewScratch builds a second Randomizer decorrelated from one the caller
// already holds: its RNG stream is derived from base's current state via
// deriveRNG rather than re-seeded from scratch, so two randomizers spun up
// from the same root seed (e.g. BSGS's alt/sym test and its randomized
// Schreier-Sims pass) don't replay identical tape histories. base == nil
// falls back to seeding from opts directly, same as New.
func NewScratch(base *Randomizer, stream uint64, generators perm.PermSet, opts ...Option) (*Randomizer, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if base == nil {
		return newFromRNG(rngFromSeed(o.Seed), generators, o)
	}
	return newFromRNG(deriveRNG(base.rng, stream), generators, o)
}

func newFromRNG(rng *rand.Rand, generators perm.PermSet, o Options) (*Randomizer, error) {
	if generators.Trivial() {
		return nil, ErrEmptyGenerators
	}

	degree := generators.Degree()
	members := generators.Members()

	tapeSize := minTapeSize
	if want := 2*len(members) + 1; want > tapeSize {
		tapeSize = want
	}

	tape := make([]perm.Permutation, tapeSize)
	for i := range tape {
		tape[i] = members[i%len(members)]
	}

	testRuns := o.TestRuns
	if testRuns == 0 {
		testRuns = int(math.Ceil(float64(altSymConstant) * log2(float64(degree))))
		if testRuns < 1 {
			testRuns = 1
		}
	}

	r := &Randomizer{
		degree:      degree,
		tape:        tape,
		accumulator: perm.Identity(degree),
		rng:         rng,
		testRuns:    testRuns,
	}

	warmup := o.WarmupSteps
	if warmup == 0 {
		warmup = defaultWarmupSteps
	}
	for i := 0; i < warmup; i++ {
		r.Step()
	}

	return r, nil
}

func log2(x float64) float64 { return math.Log(x) / math.Log(2) }

// side selects which operand of the tape combination the randomly chosen
// factor becomes: Right means tape[i] <- tape[i] * factor, Left means
// tape[i] <- factor * tape[i].
type side int

const (
	sideRight side = iota
	sideLeft
)

// Step performs one product-replacement transition: it picks two distinct
// tape slots i != j, a random side, and a random polarity (direct or
// inverse), replaces tape[i] with the combination, and applies the
// identical operation (same factor, same side) to the accumulator.
func (r *Randomizer) Step() {
	n := len(r.tape)
	i := r.rng.Intn(n)
	j := i
	for j == i {
		j = r.rng.Intn(n)
	}

	factor := r.tape[j]
	if r.rng.Intn(2) == 0 {
		factor = factor.Inverse()
	}

	s := sideRight
	if r.rng.Intn(2) == 1 {
		s = sideLeft
	}

	r.tape[i] = combine(r.tape[i], factor, s)
	r.accumulator = combine(r.accumulator, factor, s)
}

func combine(x, factor perm.Permutation, s side) perm.Permutation {
	var result perm.Permutation
	var err error
	if s == sideRight {
		result, err = perm.Compose(x, factor)
	} else {
		result, err = perm.Compose(factor, x)
	}
	if err != nil {
		// x and factor always share a degree by construction (every tape
		// slot and the accumulator are built from the same generating set).
		panic(err)
	}
	return result
}

// Next performs one Step and returns accumulator * tape[0], the sampled
// element for this call.
func (r *Randomizer) Next() perm.Permutation {
	r.Step()
	sample, err := perm.Compose(r.accumulator, r.tape[0])
	if err != nil {
		panic(err)
	}
	return sample
}

// TestSymmetric draws testRuns samples and reports true iff at least one is
// odd and the samples, taken together, generate a transitive action on
// point 1 (checked via a trial orbit closure). False negatives are
// possible with bounded probability; this never produces an error.
func (r *Randomizer) TestSymmetric() bool {
	samples := r.sample()
	return r.anyOdd(samples) && r.transitive(samples)
}

// TestAlternating draws testRuns samples and reports true iff all are even
// and the samples generate a transitive action on point 1.
func (r *Randomizer) TestAlternating() bool {
	samples := r.sample()
	for _, s := range samples {
		if s.IsOdd() {
			return false
		}
	}
	return r.transitive(samples)
}

func (r *Randomizer) sample() []perm.Permutation {
	out := make([]perm.Permutation, r.testRuns)
	for i := range out {
		out[i] = r.Next()
	}
	return out
}

func (r *Randomizer) anyOdd(samples []perm.Permutation) bool {
	for _, s := range samples {
		if s.IsOdd() {
			return true
		}
	}
	return false
}

func (r *Randomizer) transitive(samples []perm.Permutation) bool {
	if r.degree == 0 {
		return true
	}
	var set perm.PermSet
	for _, s := range samples {
		_ = set.Insert(s)
	}
	tree := schreier.NewTree()
	orb := orbit.Generate(1, set, tree)
	return uint(orb.Size()) == r.degree
}
