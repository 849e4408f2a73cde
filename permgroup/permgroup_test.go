package permgroup_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cgtl/mpsym/perm"
	"github.com/cgtl/mpsym/permgroup"
)

func s3(t *testing.T) perm.PermSet {
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

func TestPermGroupOrder(t *testing.T) {
	g, err := permgroup.New(3, s3(t))
	require.NoError(t, err)
	require.Equal(t, uint64(6), g.Order())
}

func TestPermGroupElementsCountAndDistinct(t *testing.T) {
	g, err := permgroup.New(3, s3(t))
	require.NoError(t, err)

	count := 0
	for p := range g.Elements() {
		count++
		ok, err := g.Contains(p)
		require.NoError(t, err)
		require.True(t, ok)
	}
	require.Equal(t, int(g.Order()), count)
}

func TestPermGroupElementsEarlyStop(t *testing.T) {
	g, err := permgroup.New(3, s3(t))
	require.NoError(t, err)

	count := 0
	for range g.Elements() {
		count++
		if count == 2 {
			break
		}
	}
	require.Equal(t, 2, count)
}

func TestPermGroupAllIsRepeatable(t *testing.T) {
	g, err := permgroup.New(3, s3(t))
	require.NoError(t, err)

	first := g.All()
	second := g.All()
	require.Equal(t, len(first), len(second))
	require.Equal(t, int(g.Order()), len(first))
}

func TestPermGroupContainsDegreeMismatch(t *testing.T) {
	g, err := permgroup.New(3, s3(t))
	require.NoError(t, err)

	_, err = g.Contains(perm.Identity(4))
	require.ErrorIs(t, err, permgroup.ErrDegreeMismatch)
}
