package bsgs

// Transversals selects the Schreier structure variant used at every level
// of the stabilizer chain.
type Transversals int

const (
	// SchreierTrees stores (predecessor, label index) per node; transversal
	// queries walk to the root. Default: lower memory, O(depth) query.
	SchreierTrees Transversals = iota
	// Explicit stores the composed transversal permutation per node
	// directly: O(1) query, more memory.
	Explicit
	// ShallowSchreierTrees is recognized but not implemented; New returns
	// ErrUnsupported when selected.
	ShallowSchreierTrees
)

// Construction selects the chain-construction strategy.
type Construction int

const (
	// Auto picks deterministic Schreier-Sims, unless a known order hint is
	// supplied via SchreierSimsRandomUseKnownOrder, in which case it uses
	// the randomized variant.
	Auto Construction = iota
	// SchreierSims forces deterministic Schreier-Sims.
	SchreierSims
	// SchreierSimsRandom forces the randomized variant (product-replacement
	// sampling in place of systematic Schreier-generator enumeration).
	SchreierSimsRandom
	// Solve requests a solvable-group-specific construction. Per SPEC_FULL.md,
	// the source's solve() body is underspecified beyond the dispatch
	// shell; this falls back to deterministic Schreier-Sims.
	Solve
)

// Options configures BSGS construction.
type Options struct {
	// Transversals selects the Schreier structure variant (default:
	// SchreierTrees).
	Transversals Transversals

	// Construction selects the chain-construction strategy (default: Auto).
	Construction Construction

	// CheckAltSym enables the symmetric/alternating fast path for degree >
	// 8, backed by prandom's probabilistic tests.
	CheckAltSym bool

	// SchreierSimsRandomUseKnownOrder, when true, lets the randomized
	// construction stop as soon as the computed order matches
	// SchreierSimsRandomKnownOrder, instead of relying purely on the
	// bounded-failure counter.
	SchreierSimsRandomUseKnownOrder bool

	// SchreierSimsRandomKnownOrder is the expected group order, used only
	// when SchreierSimsRandomUseKnownOrder is set.
	SchreierSimsRandomKnownOrder uint64

	// ReduceGens, when true, runs generator reduction after construction.
	ReduceGens bool

	// RandomSeed seeds the internal prandom.Randomizer used by CheckAltSym
	// and SchreierSimsRandom, so construction is reproducible given a seed.
	RandomSeed int64
}

// Option configures Options via functional arguments.
type Option func(*Options)

// DefaultOptions returns {SchreierTrees, Auto, CheckAltSym: false, ReduceGens: false}.
func DefaultOptions() Options {
	return Options{Transversals: SchreierTrees, Construction: Auto}
}

// WithTransversals selects the Schreier structure variant.
func WithTransversals(t Transversals) Option {
	return func(o *Options) { o.Transversals = t }
}

// WithConstruction selects the construction strategy.
func WithConstruction(c Construction) Option {
	return func(o *Options) { o.Construction = c }
}

// WithCheckAltSym enables the symmetric/alternating fast path.
func WithCheckAltSym(check bool) Option {
	return func(o *Options) { o.CheckAltSym = check }
}

// WithKnownOrder supplies an expected group order for the randomized
// construction to stop early against.
func WithKnownOrder(order uint64) Option {
	return func(o *Options) {
		o.SchreierSimsRandomUseKnownOrder = true
		o.SchreierSimsRandomKnownOrder = order
	}
}

// WithReduceGens enables post-construction generator reduction.
func WithReduceGens(reduce bool) Option {
	return func(o *Options) { o.ReduceGens = reduce }
}

// WithRandomSeed seeds the internal randomizer used by CheckAltSym and
// SchreierSimsRandom.
func WithRandomSeed(seed int64) Option {
	return func(o *Options) { o.RandomSeed = seed }
}

// altSymDegreeThreshold is the degree CheckAltSym must exceed before it
// attempts the fast paths; up to it, brute Schreier-Sims is cheap enough that the
// randomizer's own setup cost is not worth paying.
const altSymDegreeThreshold = 8

// randomFailureBound (M) is the number of consecutive random elements that
// must strip to identity, without extending the chain, before randomized
// Schreier-Sims declares the chain complete. Chosen so the one-sided error
// probability is bounded by 2^-M for the "chain is complete" claim.
const randomFailureBound = 20
