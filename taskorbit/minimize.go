package taskorbit

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/emirpasic/gods/sets/hashset"

	"github.com/cgtl/mpsym/permgroup"
)

// Method selects a minimization algorithm.
type Method int

const (
	// Iterate enumerates every group element; exact, cost linear in
	// group order.
	Iterate Method = iota
	// LocalSearch hill-climbs via generators only; approximate, cheap.
	LocalSearch
	// OrbitBFS breadth-first searches the allocation's orbit under the
	// strong generating set; exact, cost proportional to orbit size.
	OrbitBFS
)

// Minimize canonicalizes a under group using method, optionally
// short-circuiting against registry (Iterate and OrbitBFS only).
func Minimize(a TaskAllocation, group *permgroup.PermGroup, method Method, registry *Registry) (TaskAllocation, error) {
	switch method {
	case LocalSearch:
		return localSearch(a, group)
	case OrbitBFS:
		return orbitBFS(a, group, registry)
	default:
		return iterate(a, group, registry)
	}
}

// iterate enumerates every element of group (via permgroup.Elements,
// itself a single-pass iterator) and keeps the lexicographic minimum of
// sigma*a, short-circuiting the instant a candidate is already a known
// representative in registry. This opportunistic return is not
// necessarily the lexicographic minimum: see doc.go.
func iterate(a TaskAllocation, group *permgroup.PermGroup, registry *Registry) (TaskAllocation, error) {
	best := a
	for sigma := range group.Elements() {
		candidate, err := a.Permuted(sigma)
		if err != nil {
			return TaskAllocation{}, err
		}
		if registry != nil && registry.IsRepr(candidate) {
			return candidate, nil
		}
		if candidate.Less(best) {
			best = candidate
		}
	}
	return best, nil
}

// localSearch repeatedly applies whichever strong generator strictly
// decreases the current candidate, in generator order, stopping at a
// fixed point reached in one full pass with no improving move.
func localSearch(a TaskAllocation, group *permgroup.PermGroup) (TaskAllocation, error) {
	strongGens := group.BSGS().StrongGenerators()
	gens := strongGens.Members()
	r := a
	for {
		improved := false
		for _, g := range gens {
			candidate, err := r.Permuted(g)
			if err != nil {
				return TaskAllocation{}, err
			}
			if candidate.Less(r) {
				r = candidate
				improved = true
			}
		}
		if !improved {
			return r, nil
		}
	}
}

// orbitBFS breadth-first searches a's orbit under group's strong
// generators, tracking the lexicographic minimum seen and short-circuiting
// against registry exactly as iterate does.
func orbitBFS(a TaskAllocation, group *permgroup.PermGroup, registry *Registry) (TaskAllocation, error) {
	strongGens := group.BSGS().StrongGenerators()
	gens := strongGens.Members()

	processed := hashset.New()
	queue := linkedlistqueue.New()
	processed.Add(a.key())
	queue.Enqueue(a)

	best := a
	for !queue.Empty() {
		v, _ := queue.Dequeue()
		x := v.(TaskAllocation)

		if x.Less(best) {
			best = x
		}
		if registry != nil && registry.IsRepr(x) {
			return x, nil
		}

		for _, g := range gens {
			next, err := x.Permuted(g)
			if err != nil {
				return TaskAllocation{}, err
			}
			if !processed.Contains(next.key()) {
				processed.Add(next.key())
				queue.Enqueue(next)
			}
		}
	}
	return best, nil
}
