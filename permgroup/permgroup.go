package permgroup

import (
	"fmt"

	"github.com/cgtl/mpsym/bsgs"
	"github.com/cgtl/mpsym/perm"
)

// PermGroup is a permutation group presented by a base and strong
// generating set.
type PermGroup struct {
	chain *bsgs.BSGS
}

// New builds a PermGroup of the given degree from generators, forwarding
// opts to bsgs.New.
func New(degree uint, generators perm.PermSet, opts ...bsgs.Option) (*PermGroup, error) {
	chain, err := bsgs.New(degree, generators, opts...)
	if err != nil {
		return nil, err
	}
	return &PermGroup{chain: chain}, nil
}

// FromBSGS wraps an already-constructed BSGS as a PermGroup.
func FromBSGS(chain *bsgs.BSGS) *PermGroup { return &PermGroup{chain: chain} }

// Degree returns the size of the underlying point set.
func (g *PermGroup) Degree() uint { return g.chain.Degree() }

// Order returns the group's order.
func (g *PermGroup) Order() uint64 { return g.chain.Order() }

// BaseSize returns the stabilizer chain's base length.
func (g *PermGroup) BaseSize() int { return g.chain.BaseSize() }

// IsSymmetric reports whether the group was identified as Sym(Degree())
// during construction.
func (g *PermGroup) IsSymmetric() bool { return g.chain.IsSymmetric() }

// IsAlternating reports whether the group was identified as Alt(Degree())
// during construction.
func (g *PermGroup) IsAlternating() bool { return g.chain.IsAlternating() }

// Contains reports group membership. Returns ErrDegreeMismatch if p's
// degree differs from the group's.
func (g *PermGroup) Contains(p perm.Permutation) (bool, error) {
	if p.Degree() != g.chain.Degree() {
		return false, fmt.Errorf("%w: %d vs %d", ErrDegreeMismatch, p.Degree(), g.chain.Degree())
	}
	return g.chain.Contains(p), nil
}

// BSGS returns the underlying stabilizer chain, for callers that need
// level-by-level access (e.g. package taskorbit's ORBIT_BFS method).
func (g *PermGroup) BSGS() *bsgs.BSGS { return g.chain }
