package schreier

import "github.com/cgtl/mpsym/perm"

// Explicit is a Schreier structure storing the composed transversal
// permutation T(p) directly for every orbit node p, so Transversal is O(1)
// at the cost of one extra permutation of storage per node.
type Explicit struct {
	root   uint
	order  []uint
	trans  map[uint]perm.Permutation
	labels perm.PermSet
}

// NewExplicit returns an empty Explicit structure. Call CreateRoot before use.
func NewExplicit() *Explicit {
	return &Explicit{trans: make(map[uint]perm.Permutation)}
}

func (e *Explicit) CreateRoot(root uint) {
	e.root = root
	e.order = []uint{root}
	e.trans = make(map[uint]perm.Permutation)
}

func (e *Explicit) CreateLabels(labels perm.PermSet) {
	e.labels = labels
	degree := labels.Degree()
	if degree == 0 {
		degree = e.root
	}
	e.trans[e.root] = perm.Identity(degree)
}

// CreateEdge records that labels.Members()[index] applied to origin reaches
// destination, and stores T(destination) := label * T(origin).
func (e *Explicit) CreateEdge(origin, destination uint, index int) {
	if _, ok := e.trans[destination]; ok {
		return
	}
	label := e.labels.Members()[index]
	tOrigin := e.trans[origin]
	composed, err := perm.Compose(label, tOrigin)
	if err != nil {
		return
	}
	e.trans[destination] = composed
	e.order = append(e.order, destination)
}

func (e *Explicit) Root() uint { return e.root }

func (e *Explicit) Nodes() []uint {
	out := make([]uint, len(e.order))
	copy(out, e.order)
	return out
}

func (e *Explicit) Labels() perm.PermSet { return e.labels }

func (e *Explicit) Contains(node uint) bool {
	_, ok := e.trans[node]
	return ok
}

// Incoming reports whether some orbit node p has T(node) == edge * T(p),
// i.e. whether edge could have produced node's recorded transversal from
// some already-known transversal. Explicit does not retain the specific
// (origin, label) pair used at construction time, so this checks the
// general existence condition rather than the literal edge recorded.
func (e *Explicit) Incoming(node uint, edge perm.Permutation) bool {
	t, ok := e.trans[node]
	if !ok || node == e.root {
		return false
	}
	for _, p := range e.order {
		candidate, err := perm.Compose(edge, e.trans[p])
		if err == nil && candidate.Equal(t) {
			return true
		}
	}
	return false
}

func (e *Explicit) Transversal(origin uint) (perm.Permutation, error) {
	t, ok := e.trans[origin]
	if !ok {
		return perm.Permutation{}, ErrNotInOrbit
	}
	return t, nil
}
