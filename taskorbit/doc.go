// Package taskorbit canonicalizes task-to-PE allocations under a
// permutation group's action: given an allocation and the symmetry group
// describing which processing elements are interchangeable, it finds the
// lexicographically minimal element of the allocation's orbit, so that
// orbit-equivalent allocations map to the same representative and can be
// deduplicated across a large search space.
//
// Three methods trade completeness for cost:
//
//   - Iterate enumerates every group element (permgroup.Elements) and
//     keeps the lexicographic minimum; exact, cost linear in group order.
//   - LocalSearch repeatedly applies whichever strong generator decreases
//     the current candidate, stopping at a fixed point; approximate but
//     cheap.
//   - OrbitBFS breadth-first searches the allocation's orbit under the
//     strong generating set, tracking the minimum seen; exact, cost
//     proportional to orbit size rather than group order.
//
// Registry (TMORs, "tracked minimal orbit representatives") deduplicates
// canonicalized allocations across repeated calls: Iterate and OrbitBFS
// both short-circuit the instant they encounter a value the registry
// already recognizes as a representative, trading strict minimality for
// speed on repeat lookups (documented in DESIGN.md as an intentional,
// source-preserved behavior, not a bug).
package taskorbit
