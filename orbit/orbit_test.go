package orbit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cgtl/mpsym/orbit"
	"github.com/cgtl/mpsym/perm"
	"github.com/cgtl/mpsym/schreier"
)

func TestGenerateOrbitOfS3(t *testing.T) {
	var labels perm.PermSet
	a, err := perm.NewCycle(3, []uint{1, 2, 3})
	require.NoError(t, err)
	b, err := perm.NewTransposition(3, 1, 2)
	require.NoError(t, err)
	require.NoError(t, labels.Insert(a))
	require.NoError(t, labels.Insert(b))
	require.NoError(t, labels.InsertInverses())

	tree := schreier.NewTree()
	orb := orbit.Generate(1, labels, tree)

	assert.ElementsMatch(t, []uint{1, 2, 3}, orb.Points())
	assert.Equal(t, 3, orb.Size())
	assert.Equal(t, uint(1), orb.Points()[0], "BFS order starts at root")
}

func TestGenerateOrbitClosure(t *testing.T) {
	var labels perm.PermSet
	swap, err := perm.NewTransposition(4, 1, 2)
	require.NoError(t, err)
	require.NoError(t, labels.Insert(swap))

	tree := schreier.NewTree()
	orb := orbit.Generate(1, labels, tree)

	assert.ElementsMatch(t, []uint{1, 2}, orb.Points())
	for _, p := range orb.Points() {
		img, err := swap.At(p)
		require.NoError(t, err)
		assert.True(t, orb.Contains(img), "orbit must be closed under the generating set")
	}
}

func TestGenerateDeterministicOrder(t *testing.T) {
	var labels perm.PermSet
	a, err := perm.NewCycle(4, []uint{1, 2, 3, 4})
	require.NoError(t, err)
	require.NoError(t, labels.Insert(a))

	tree1 := schreier.NewTree()
	orb1 := orbit.Generate(1, labels, tree1)

	tree2 := schreier.NewTree()
	orb2 := orbit.Generate(1, labels, tree2)

	assert.Equal(t, orb1.Points(), orb2.Points())
}
