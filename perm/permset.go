package perm

import (
	"fmt"

	"github.com/samber/lo"
)

// PermSet is an ordered, duplicate-free sequence of permutations sharing a
// common degree. Insertion order is preserved and is part of the observable
// contract: the orbit engine, BSGS stripping, and local-search minimization
// all iterate a PermSet's members in insertion order.
type PermSet struct {
	members []Permutation
}

// NewPermSet builds a PermSet from the given permutations, deduplicating as
// it inserts. Returns ErrDegreeMismatch if the permutations do not share a
// degree.
func NewPermSet(perms ...Permutation) (PermSet, error) {
	var s PermSet
	for _, p := range perms {
		if err := s.Insert(p); err != nil {
			return PermSet{}, err
		}
	}
	return s, nil
}

// Len returns the number of members.
func (s *PermSet) Len() int { return len(s.members) }

// Trivial reports whether the set is empty.
func (s *PermSet) Trivial() bool { return len(s.members) == 0 }

// Degree returns the common degree of the set's members, or 0 if empty.
func (s *PermSet) Degree() uint {
	if len(s.members) == 0 {
		return 0
	}
	return s.members[0].Degree()
}

// Members returns the set's permutations in insertion order. The returned
// slice must not be mutated by the caller.
func (s *PermSet) Members() []Permutation { return s.members }

// AssertDegree returns ErrDegreeMismatch if the set is non-empty and its
// degree differs from degree.
func (s *PermSet) AssertDegree(degree uint) error {
	if !s.Trivial() && s.Degree() != degree {
		return fmt.Errorf("%w: set has degree %d, expected %d", ErrDegreeMismatch, s.Degree(), degree)
	}
	return nil
}

// contains reports whether p is already a member, via value equality.
func (s *PermSet) contains(p Permutation) bool {
	return lo.ContainsBy(s.members, func(q Permutation) bool { return q.Equal(p) })
}

// Insert appends p if it is not already present and its degree matches the
// set's existing degree. Returns ErrDegreeMismatch on a degree conflict.
func (s *PermSet) Insert(p Permutation) error {
	if err := s.AssertDegree(p.Degree()); err != nil {
		return err
	}
	if s.contains(p) {
		return nil
	}
	s.members = append(s.members, p)
	return nil
}

// InsertInverses inserts the inverse of every current member (skipping
// members that are their own inverse, e.g. involutions, via the usual
// dedup), growing the set in place.
func (s *PermSet) InsertInverses() error {
	for _, p := range append([]Permutation(nil), s.members...) {
		if err := s.Insert(p.Inverse()); err != nil {
			return err
		}
	}
	return nil
}

// MakeUnique removes duplicate members, preserving the first occurrence of
// each. PermSet.Insert already prevents duplicates from entering the set,
// so this is a defensive no-op for sets built by direct field access (e.g.
// test fixtures); it exists to mirror BSGS's documented "strong_generators
// ... no duplicates after make_unique" invariant.
func (s *PermSet) MakeUnique() {
	s.members = lo.UniqBy(s.members, func(p Permutation) string { return p.String() + fmt.Sprint(p.Image()) })
}

// Subset returns a new PermSet containing members[from:to], preserving order.
func (s *PermSet) Subset(from, to int) PermSet {
	if from < 0 {
		from = 0
	}
	if to > len(s.members) {
		to = len(s.members)
	}
	if from >= to {
		return PermSet{}
	}
	out := make([]Permutation, to-from)
	copy(out, s.members[from:to])
	return PermSet{members: out}
}

// Filter returns a new PermSet containing the members for which keep
// returns true, preserving order.
func (s *PermSet) Filter(keep func(Permutation) bool) PermSet {
	return PermSet{members: lo.Filter(s.members, func(p Permutation, _ int) bool { return keep(p) })}
}

// StabilizingSubset returns the subset of members that stabilize every
// point in prefix, i.e. the generators usable at a BSGS level whose base
// prefix is prefix.
func (s *PermSet) StabilizingSubset(prefix []uint) PermSet {
	return s.Filter(func(p Permutation) bool { return p.Stabilizes(prefix) })
}
