// Package bsgs constructs and queries a Base and Strong Generating Set
// (BSGS) for a permutation group: a short base of points plus a strong
// generating set from which group order, membership, and element
// enumeration follow via the stabilizer chain's per-level Schreier
// structures.
//
// What:
//
//   - New builds a BSGS from a generating PermSet, dispatching (in order)
//     to the trivial-group shortcut, the symmetric/alternating fast paths
//     (when degree > 8 and the caller opts in, backed by prandom's
//     probabilistic tests), deterministic Schreier-Sims, randomized
//     Schreier-Sims (when a known order hint is supplied), or the SOLVE
//     option (a documented alias for deterministic Schreier-Sims; see
//     SPEC_FULL.md §4.E for why a dedicated polycyclic implementation was
//     not attempted).
//   - Strip sifts a permutation through the stabilizer chain level by
//     level; StripsCompletely is group membership.
//   - Order is the product of each level's orbit size.
//   - ReduceGens greedily drops redundant strong generators, keeping only
//     those whose removal would shrink the computed order.
//
// Why: this is the hard core of the whole system (component E, ~30% of the
// budget): every other component either feeds into BSGS construction
// (orbit, schreier, prandom) or is built on top of its output
// (permgroup, taskorbit).
//
// Complexity:
//
//   - Deterministic Schreier-Sims: polynomial in degree and |base|, the
//     usual Schreier-Sims bound.
//   - Order / Strip: O(|base|) Schreier-structure lookups.
//
// Errors:
//
//   - ErrUnsupported for Options{Transversals: ShallowSchreierTrees}.
//   - ErrInvariantViolated if a completed construction's own strong
//     generators fail to strip to identity (an assertion-class, fatal
//     error per §7 of the spec).
package bsgs
