package taskorbit_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cgtl/mpsym/perm"
	"github.com/cgtl/mpsym/permgroup"
	"github.com/cgtl/mpsym/taskorbit"
)

func s3Group(t *testing.T) *permgroup.PermGroup {
	t.Helper()
	var gens perm.PermSet
	cyc, err := perm.NewCycle(3, []uint{1, 2, 3})
	require.NoError(t, err)
	tr, err := perm.NewTransposition(3, 1, 2)
	require.NoError(t, err)
	require.NoError(t, gens.Insert(cyc))
	require.NoError(t, gens.Insert(tr))
	g, err := permgroup.New(3, gens)
	require.NoError(t, err)
	return g
}

func TestIterateS3Minimization(t *testing.T) {
	g := s3Group(t)
	a := taskorbit.NewTaskAllocation([]uint{3, 1, 2}, 0)

	got, err := taskorbit.Minimize(a, g, taskorbit.Iterate, nil)
	require.NoError(t, err)
	require.Equal(t, []uint{1, 2, 3}, got.Values())
}

func TestOrbitBFSTransposition(t *testing.T) {
	var gens perm.PermSet
	tr, err := perm.NewTransposition(4, 1, 2)
	require.NoError(t, err)
	require.NoError(t, gens.Insert(tr))
	g, err := permgroup.New(4, gens)
	require.NoError(t, err)

	a := taskorbit.NewTaskAllocation([]uint{2, 1, 3, 4}, 0)
	got, err := taskorbit.Minimize(a, g, taskorbit.OrbitBFS, nil)
	require.NoError(t, err)
	require.Equal(t, []uint{1, 2, 3, 4}, got.Values())
}

func TestLocalSearchReachesFixedPoint(t *testing.T) {
	g := s3Group(t)
	a := taskorbit.NewTaskAllocation([]uint{3, 1, 2}, 0)

	got, err := taskorbit.Minimize(a, g, taskorbit.LocalSearch, nil)
	require.NoError(t, err)

	// LocalSearch is approximate but must at least be a fixed point: no
	// single generator application can improve it further.
	strongGens := g.BSGS().StrongGenerators()
	for _, gen := range strongGens.Members() {
		candidate, err := got.Permuted(gen)
		require.NoError(t, err)
		require.False(t, candidate.Less(got))
	}
}

func TestIterateOrbitBFSAgreeAndAreIdempotent(t *testing.T) {
	g := s3Group(t)
	a := taskorbit.NewTaskAllocation([]uint{3, 1, 2}, 0)

	viaIterate, err := taskorbit.Minimize(a, g, taskorbit.Iterate, nil)
	require.NoError(t, err)
	viaBFS, err := taskorbit.Minimize(a, g, taskorbit.OrbitBFS, nil)
	require.NoError(t, err)
	require.True(t, viaIterate.Equal(viaBFS))

	again, err := taskorbit.Minimize(viaIterate, g, taskorbit.Iterate, nil)
	require.NoError(t, err)
	require.True(t, again.Equal(viaIterate))
}

func TestIterateOrbitEquivalence(t *testing.T) {
	g := s3Group(t)
	a := taskorbit.NewTaskAllocation([]uint{3, 1, 2}, 0)
	want, err := taskorbit.Minimize(a, g, taskorbit.Iterate, nil)
	require.NoError(t, err)

	for sigma := range g.Elements() {
		shifted, err := a.Permuted(sigma)
		require.NoError(t, err)
		got, err := taskorbit.Minimize(shifted, g, taskorbit.Iterate, nil)
		require.NoError(t, err)
		require.True(t, got.Equal(want))
	}
}

func TestRegistryInsertSequence(t *testing.T) {
	r := taskorbit.NewRegistry()

	a := taskorbit.NewTaskAllocation([]uint{1, 2, 3}, 0)
	b := taskorbit.NewTaskAllocation([]uint{2, 1, 3}, 0)

	wasNew, id := r.Insert(a)
	require.True(t, wasNew)
	require.Equal(t, 0, id)

	wasNew, id = r.Insert(a)
	require.False(t, wasNew)
	require.Equal(t, 0, id)

	wasNew, id = r.Insert(b)
	require.True(t, wasNew)
	require.Equal(t, 1, id)

	require.Equal(t, 2, r.NumOrbits())
	require.True(t, r.IsRepr(a))
	require.False(t, r.IsRepr(taskorbit.NewTaskAllocation([]uint{3, 2, 1}, 0)))
}

func TestRegistryIterateLexicographicOrder(t *testing.T) {
	r := taskorbit.NewRegistry()
	_, _ = r.Insert(taskorbit.NewTaskAllocation([]uint{3, 2, 1}, 0))
	_, _ = r.Insert(taskorbit.NewTaskAllocation([]uint{1, 2, 3}, 0))
	_, _ = r.Insert(taskorbit.NewTaskAllocation([]uint{2, 1, 3}, 0))

	entries := r.Iterate()
	require.Len(t, entries, 3)
	require.Equal(t, []uint{1, 2, 3}, entries[0].Representative.Values())
	require.Equal(t, []uint{2, 1, 3}, entries[1].Representative.Values())
	require.Equal(t, []uint{3, 2, 1}, entries[2].Representative.Values())
}
