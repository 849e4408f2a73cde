// Package schreier implements the two concrete Schreier structure variants
// used to represent an orbit's transversal: an explicit table of coset
// representatives, and a Schreier tree of (origin, label) edges.
//
// What:
//
//   - Structure is the shared capability: CreateRoot, CreateLabels,
//     CreateEdge (the write side the orbit engine drives) and Root, Nodes,
//     Labels, Contains, Incoming, Transversal (the read side BSGS and the
//     minimizer query).
//   - Tree stores one (origin, label index) pair per node and recomputes
//     transversal(p) by walking back to the root, multiplying labels.
//   - Explicit stores the composed transversal permutation directly per
//     node, so transversal(p) is an O(1) lookup at the cost of O(|orbit|)
//     extra permutations of memory.
//
// Why two variants: the BSGS options surface (component E) lets a caller
// trade construction-time/memory for transversal-query latency; both
// variants satisfy the same law (transversal(p)(root) == p for every node
// p), so BSGS can use either interchangeably behind the Structure
// interface, matching the "polymorphism over Schreier structures" design
// note: a tagged variant chosen once at construction time, not a
// dynamic-dispatch hot path.
//
// Complexity:
//
//   - Tree.Transversal: O(depth of p in the tree).
//   - Explicit.Transversal: O(1).
//   - Tree.CreateEdge: O(1); Explicit.CreateEdge: O(degree) (one
//     permutation composition).
package schreier
