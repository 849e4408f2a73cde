package orbit

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/emirpasic/gods/sets/hashset"

	"github.com/cgtl/mpsym/perm"
	"github.com/cgtl/mpsym/schreier"
)

// Orbit is the set of points reachable from a root under a generating set's
// action, presented in BFS discovery order.
type Orbit struct {
	points []uint
}

// Points returns the orbit's members in discovery order (root first).
func (o Orbit) Points() []uint { return o.points }

// Size returns the number of points in the orbit.
func (o Orbit) Size() int { return len(o.points) }

// Contains reports whether p is a member of the orbit.
func (o Orbit) Contains(p uint) bool {
	for _, q := range o.points {
		if q == p {
			return true
		}
	}
	return false
}

// FromPoints builds an Orbit directly from an already-known point set,
// preserving the given order. Used by BSGS when re-deriving an orbit from
// a Schreier structure's Nodes().
func FromPoints(points []uint) Orbit {
	out := make([]uint, len(points))
	copy(out, points)
	return Orbit{points: out}
}

// Generate computes the orbit of root under labels via breadth-first
// search, resetting out and populating it with the root, the labels, and
// one incoming edge per non-root orbit member, in BFS order.
//
// The BFS frontier is a FIFO queue and the visited set a hash set, both
// from emirpasic/gods, so the hot loop never hand-rolls a ring buffer; the
// resulting visiting order is exactly the spec's guarantee: deterministic
// given the iteration order of labels.Members().
func Generate(root uint, labels perm.PermSet, out schreier.Structure) Orbit {
	out.CreateRoot(root)
	out.CreateLabels(labels)

	visited := hashset.New()
	visited.Add(root)

	queue := linkedlistqueue.New()
	queue.Enqueue(root)

	order := []uint{root}
	members := labels.Members()

	for !queue.Empty() {
		v, _ := queue.Dequeue()
		p := v.(uint)

		for i, label := range members {
			q, err := label.At(p)
			if err != nil {
				continue
			}
			if visited.Contains(q) {
				continue
			}
			visited.Add(q)
			out.CreateEdge(p, q, i)
			queue.Enqueue(q)
			order = append(order, q)
		}
	}

	return Orbit{points: order}
}
