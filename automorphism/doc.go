// Package automorphism wraps an external dense-graph-automorphism oracle:
// given an ArchitectureGraph (the colored, possibly directed graph
// describing which processing elements an architecture considers
// interchangeable), it builds the oracle's expected input, invokes it
// under a process-wide lock (the oracle interface is documented as
// carrying global mutable state in the system it was lifted from), and
// translates the raw 0-based generator callbacks into a perm.PermSet of
// degree NumReduced.
//
// The oracle itself is never vendored here: Oracle is the seam, and
// mockoracle (test-only) stands in for it in this repo's own tests. A real
// binding would implement Oracle against a real dense-graph-automorphism
// engine.
//
// Graph also carries two pure, side-effect-free views that never touch the
// oracle: ToGAP for interop with GAP, and RenderSVG for a human-readable
// rendering via goccy/go-graphviz.
package automorphism
