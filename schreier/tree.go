package schreier

import "github.com/cgtl/mpsym/perm"

// treeEdge records the incoming edge for a non-root orbit node: the
// generator at labels[index] maps origin to this node.
type treeEdge struct {
	origin uint
	index  int
}

// Tree is a Schreier structure storing one (origin, label index) pair per
// non-root node; Transversal walks the chain back to the root, composing
// labels as it goes.
type Tree struct {
	root   uint
	order  []uint // nodes in discovery order, root first
	edges  map[uint]treeEdge
	labels perm.PermSet
}

// NewTree returns an empty Tree structure. Call CreateRoot before use.
func NewTree() *Tree {
	return &Tree{edges: make(map[uint]treeEdge)}
}

func (t *Tree) CreateRoot(root uint) {
	t.root = root
	t.order = []uint{root}
	t.edges = make(map[uint]treeEdge)
}

func (t *Tree) CreateLabels(labels perm.PermSet) { t.labels = labels }

func (t *Tree) CreateEdge(origin, destination uint, index int) {
	if _, ok := t.edges[destination]; ok || destination == t.root {
		return
	}
	t.edges[destination] = treeEdge{origin: origin, index: index}
	t.order = append(t.order, destination)
}

func (t *Tree) Root() uint { return t.root }

func (t *Tree) Nodes() []uint {
	out := make([]uint, len(t.order))
	copy(out, t.order)
	return out
}

func (t *Tree) Labels() perm.PermSet { return t.labels }

func (t *Tree) Contains(node uint) bool {
	if node == t.root {
		return true
	}
	_, ok := t.edges[node]
	return ok
}

func (t *Tree) Incoming(node uint, edge perm.Permutation) bool {
	e, ok := t.edges[node]
	if !ok {
		return false
	}
	members := t.labels.Members()
	if e.index < 0 || e.index >= len(members) {
		return false
	}
	return members[e.index].Equal(edge)
}

// Transversal walks origin back to the root, accumulating labels so that
// the returned permutation carries root to origin.
func (t *Tree) Transversal(origin uint) (perm.Permutation, error) {
	if !t.Contains(origin) {
		return perm.Permutation{}, ErrNotInOrbit
	}

	degree := t.labels.Degree()
	if degree == 0 {
		degree = origin
	}
	result := perm.Identity(degree)

	// Walk from origin back to the root, discovering labels in
	// outermost-first order (the edge into origin, then the edge into
	// that node's predecessor, and so on). Composition is associative, so
	// folding left-to-right in discovery order via compose(result, label)
	// builds exactly the product l_k*l_{k-1}*...*l_1 that the spec's
	// "product of labels along the unique path root->p" calls for.
	members := t.labels.Members()
	cur := origin
	for cur != t.root {
		e := t.edges[cur]
		label := members[e.index]
		var err error
		result, err = perm.Compose(result, label)
		if err != nil {
			return perm.Permutation{}, err
		}
		cur = e.origin
	}
	return result, nil
}
