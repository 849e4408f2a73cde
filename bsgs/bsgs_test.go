package bsgs_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cgtl/mpsym/bsgs"
	"github.com/cgtl/mpsym/perm"
)

func s3Generators(t *testing.T) perm.PermSet {
	t.Helper()
	var s perm.PermSet
	cyc, err := perm.NewCycle(3, []uint{1, 2, 3})
	require.NoError(t, err)
	tr, err := perm.NewTransposition(3, 1, 2)
	require.NoError(t, err)
	require.NoError(t, s.Insert(cyc))
	require.NoError(t, s.Insert(tr))
	return s
}

func a4Generators(t *testing.T) perm.PermSet {
	t.Helper()
	var s perm.PermSet
	c1, err := perm.NewCycle(4, []uint{1, 2, 3})
	require.NoError(t, err)
	c2, err := perm.NewCycle(4, []uint{2, 3, 4})
	require.NoError(t, err)
	require.NoError(t, s.Insert(c1))
	require.NoError(t, s.Insert(c2))
	return s
}

// bruteOrder enumerates <gens> by closure under multiplication, a slow but
// independent check for Order correctness on small degrees.
func bruteOrder(t *testing.T, gens perm.PermSet) int {
	t.Helper()
	degree := gens.Degree()
	seen := map[string]perm.Permutation{}
	id := perm.Identity(degree)
	seen[itoa(id.Image())] = id
	frontier := []perm.Permutation{id}

	for len(frontier) > 0 {
		var next []perm.Permutation
		for _, p := range frontier {
			for _, g := range gens.Members() {
				q, err := perm.Compose(p, g)
				require.NoError(t, err)
				key := itoa(q.Image())
				if _, ok := seen[key]; !ok {
					seen[key] = q
					next = append(next, q)
				}
			}
		}
		frontier = next
	}
	return len(seen)
}

func itoa(image []uint) string {
	out := make([]byte, 0, len(image)*3)
	for _, v := range image {
		out = append(out, byte('0'+v/100), byte('0'+(v/10)%10), byte('0'+v%10))
	}
	return string(out)
}

func TestBSGSTrivialGroup(t *testing.T) {
	var empty perm.PermSet
	b, err := bsgs.New(4, empty)
	require.NoError(t, err)
	require.Equal(t, 0, b.BaseSize())
	require.Equal(t, uint64(1), b.Order())
	require.True(t, b.StripsCompletely(perm.Identity(4)))
}

func TestBSGSShallowSchreierTreesUnsupported(t *testing.T) {
	_, err := bsgs.New(3, s3Generators(t), bsgs.WithTransversals(bsgs.ShallowSchreierTrees))
	require.ErrorIs(t, err, bsgs.ErrUnsupported)
}

func TestBSGSOrderMatchesBruteForceS3(t *testing.T) {
	gens := s3Generators(t)
	want := bruteOrder(t, gens)

	b, err := bsgs.New(3, gens)
	require.NoError(t, err)
	require.Equal(t, uint64(want), b.Order())
	require.Equal(t, 6, want)
}

func TestBSGSOrderMatchesBruteForceA4(t *testing.T) {
	gens := a4Generators(t)
	want := bruteOrder(t, gens)

	b, err := bsgs.New(4, gens)
	require.NoError(t, err)
	require.Equal(t, uint64(want), b.Order())
	require.Equal(t, 12, want)
}

func TestBSGSMembership(t *testing.T) {
	gens := s3Generators(t)
	b, err := bsgs.New(3, gens)
	require.NoError(t, err)

	for _, g := range gens.Members() {
		require.True(t, b.Contains(g))
	}

	// A degree-3 permutation built independently (not composed from the
	// generators by construction here, but every permutation of degree 3
	// is in Sym(3) = <gens>) must also strip completely.
	id, err := perm.NewTransposition(3, 2, 3)
	require.NoError(t, err)
	require.True(t, b.Contains(id))
}

func TestBSGSTransversalLaw(t *testing.T) {
	gens := s3Generators(t)
	b, err := bsgs.New(3, gens)
	require.NoError(t, err)

	for i := 0; i < b.BaseSize(); i++ {
		base := b.Base()[i]
		for _, p := range b.Orbit(i).Points() {
			tr, err := b.Transversal(i, p)
			require.NoError(t, err)
			img, err := tr.At(base)
			require.NoError(t, err)
			require.Equal(t, p, img)
		}
	}
}

func TestBSGSExplicitAndTreeAgreeOnOrder(t *testing.T) {
	gens := a4Generators(t)

	tree, err := bsgs.New(4, gens, bsgs.WithTransversals(bsgs.SchreierTrees))
	require.NoError(t, err)
	explicit, err := bsgs.New(4, gens, bsgs.WithTransversals(bsgs.Explicit))
	require.NoError(t, err)

	require.Equal(t, tree.Order(), explicit.Order())
}

func TestBSGSSymmetricFastPath(t *testing.T) {
	var gens perm.PermSet
	for i := uint(1); i < 10; i++ {
		tr, err := perm.NewTransposition(10, i, 10)
		require.NoError(t, err)
		require.NoError(t, gens.Insert(tr))
	}

	b, err := bsgs.New(10, gens, bsgs.WithCheckAltSym(true), bsgs.WithRandomSeed(1))
	require.NoError(t, err)
	require.True(t, b.IsSymmetric())

	want := uint64(1)
	for i := uint64(2); i <= 10; i++ {
		want *= i
	}
	require.Equal(t, want, b.Order())
}

func TestBSGSRandomConstructionWithKnownOrder(t *testing.T) {
	gens := s3Generators(t)
	b, err := bsgs.New(3, gens,
		bsgs.WithConstruction(bsgs.SchreierSimsRandom),
		bsgs.WithKnownOrder(6),
		bsgs.WithRandomSeed(5),
	)
	require.NoError(t, err)
	require.Equal(t, uint64(6), b.Order())
}

func TestBSGSSolveFallsBackToDeterministic(t *testing.T) {
	gens := s3Generators(t)
	b, err := bsgs.New(3, gens, bsgs.WithConstruction(bsgs.Solve))
	require.NoError(t, err)
	require.Equal(t, uint64(6), b.Order())
}

func TestBSGSReduceGensPreservesOrder(t *testing.T) {
	gens := a4Generators(t)
	b, err := bsgs.New(4, gens, bsgs.WithReduceGens(true))
	require.NoError(t, err)
	require.Equal(t, uint64(12), b.Order())
	strongGens := b.StrongGenerators()
	require.LessOrEqual(t, strongGens.Len(), gens.Len()+4)
}
