package schreier

import "github.com/cgtl/mpsym/perm"

// Structure is the abstract capability shared by both concrete Schreier
// structure variants (Tree and Explicit). The orbit engine (package orbit)
// drives the write side (CreateRoot, CreateLabels, CreateEdge); BSGS and the
// task-orbit minimizer drive the read side.
type Structure interface {
	// CreateRoot resets the structure to a single node: root.
	CreateRoot(root uint)

	// CreateLabels sets the ordered generating set used to extend the
	// structure. Edge indices recorded by CreateEdge index into this set.
	CreateLabels(labels perm.PermSet)

	// CreateEdge records that label index applied to origin reaches
	// destination, i.e. labels.Members()[index].At(origin) == destination.
	CreateEdge(origin, destination uint, index int)

	// Root returns the structure's root point.
	Root() uint

	// Nodes returns the orbit, i.e. every point reached so far, in the
	// order they were first recorded (root first).
	Nodes() []uint

	// Labels returns the generating set passed to CreateLabels.
	Labels() perm.PermSet

	// Contains reports whether node has been recorded.
	Contains(node uint) bool

	// Incoming reports whether some recorded edge into node used a label
	// equal to edge.
	Incoming(node uint, edge perm.Permutation) bool

	// Transversal returns the permutation carrying Root() to origin, i.e.
	// the product of labels along the unique recorded path root -> origin.
	// Returns ErrNotInOrbit if origin has not been recorded.
	Transversal(origin uint) (perm.Permutation, error)
}
