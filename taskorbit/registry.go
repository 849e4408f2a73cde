package taskorbit

import "github.com/emirpasic/gods/trees/redblacktree"

// Registry (TMORs: "tracked minimal orbit representatives") maps a
// canonicalized TaskAllocation to a dense orbit id, assigned in discovery
// order. Backed by an emirpasic/gods red-black tree keyed on
// TaskAllocation's own lexicographic order, so Iterate visits
// representatives in a stable, meaningful (lexicographic) order instead of
// Go's randomized map iteration.
type Registry struct {
	tree   *redblacktree.Tree
	nextID int
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		tree: redblacktree.NewWith(func(a, b interface{}) int {
			return a.(TaskAllocation).Compare(b.(TaskAllocation))
		}),
	}
}

// Insert records m as a representative if it is not already known,
// returning (true, newID) the first time, and (false, existingID) on every
// subsequent call with an equal allocation.
func (r *Registry) Insert(m TaskAllocation) (bool, int) {
	if v, found := r.tree.Get(m); found {
		return false, v.(int)
	}
	id := r.nextID
	r.tree.Put(m, id)
	r.nextID++
	return true, id
}

// IsRepr reports whether m is already a known representative.
func (r *Registry) IsRepr(m TaskAllocation) bool {
	_, found := r.tree.Get(m)
	return found
}

// NumOrbits returns the number of distinct representatives recorded.
func (r *Registry) NumOrbits() int { return r.tree.Size() }

// Iterate returns the recorded (representative, id) pairs in lexicographic
// order of the representative.
func (r *Registry) Iterate() []RegistryEntry {
	keys := r.tree.Keys()
	out := make([]RegistryEntry, len(keys))
	for i, k := range keys {
		v, _ := r.tree.Get(k)
		out[i] = RegistryEntry{Representative: k.(TaskAllocation), ID: v.(int)}
	}
	return out
}

// RegistryEntry is one (representative, id) pair from Registry.Iterate.
type RegistryEntry struct {
	Representative TaskAllocation
	ID             int
}
