package perm_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cgtl/mpsym/perm"
)

func TestNewValidatesBijection(t *testing.T) {
	_, err := perm.New(nil)
	require.ErrorIs(t, err, perm.ErrEmptyImage)

	_, err = perm.New([]uint{1, 1, 3})
	require.ErrorIs(t, err, perm.ErrNotAPermutation)

	_, err = perm.New([]uint{1, 4, 3})
	require.ErrorIs(t, err, perm.ErrNotAPermutation)

	p, err := perm.New([]uint{2, 3, 1})
	require.NoError(t, err)
	assert.Equal(t, uint(3), p.Degree())
}

func TestIdentity(t *testing.T) {
	id := perm.Identity(5)
	assert.True(t, id.IsIdentity())
	assert.Equal(t, 1, id.Sign())
	assert.Equal(t, "()", id.String())
}

func TestComposeAndInverse(t *testing.T) {
	// a = (1 2 3), b = (1 2)
	a, err := perm.NewCycle(3, []uint{1, 2, 3})
	require.NoError(t, err)
	b, err := perm.NewCycle(3, []uint{1, 2})
	require.NoError(t, err)

	c, err := perm.Compose(a, b)
	require.NoError(t, err)

	// c(x) = a(b(x)): b(1)=2,a(2)=3 -> c(1)=3; b(2)=1,a(1)=2 -> c(2)=2; b(3)=3,a(3)=1 -> c(3)=1
	v1, _ := c.At(1)
	v2, _ := c.At(2)
	v3, _ := c.At(3)
	assert.Equal(t, uint(3), v1)
	assert.Equal(t, uint(2), v2)
	assert.Equal(t, uint(1), v3)

	inv := a.Inverse()
	prod, err := perm.Compose(a, inv)
	require.NoError(t, err)
	assert.True(t, prod.IsIdentity())
}

func TestComposeDegreeMismatch(t *testing.T) {
	a := perm.Identity(3)
	b := perm.Identity(4)
	_, err := perm.Compose(a, b)
	require.True(t, errors.Is(err, perm.ErrDegreeMismatch))
}

func TestAtDomainError(t *testing.T) {
	p := perm.Identity(3)
	_, err := p.At(0)
	require.ErrorIs(t, err, perm.ErrDomainError)
	_, err = p.At(4)
	require.ErrorIs(t, err, perm.ErrDomainError)
}

func TestSignAndStabilizes(t *testing.T) {
	transposition, err := perm.NewTransposition(4, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, -1, transposition.Sign())
	assert.True(t, transposition.IsOdd())
	assert.True(t, transposition.Stabilizes([]uint{3, 4}))
	assert.False(t, transposition.Stabilizes([]uint{1}))

	threeCycle, err := perm.NewCycle(4, []uint{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 1, threeCycle.Sign())
}

func TestCyclesIncludesFixedPoints(t *testing.T) {
	p, err := perm.NewCycle(5, []uint{1, 2})
	require.NoError(t, err)
	cycles := p.Cycles()
	// (1 2), (3), (4), (5)
	assert.Len(t, cycles, 4)
}
