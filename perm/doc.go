// Package perm implements permutations on a fixed point set [1, d] and
// ordered, duplicate-free sets of permutations (PermSet).
//
// What:
//
//   - Permutation: an immutable bijection on [1, d], stored as a 1-based
//     image vector. Supports composition, inverse, action on a point,
//     parity (sign), and a stabilizes(range) predicate.
//   - PermSet: an ordered sequence of permutations sharing one degree,
//     with insertion-order-preserving dedup and bulk inverse insertion.
//
// Why:
//
//   - Every higher component (orbit, schreier, bsgs, permgroup, taskorbit)
//     is built entirely out of these two primitives; keeping them as a
//     small, allocation-light value type and a thin ordered-set wrapper
//     keeps the hot loops in bsgs and orbit allocation-free beyond what
//     composition itself requires.
//
// Complexity:
//
//   - Compose, Inverse, Sign: O(d).
//   - PermSet.Insert: O(n) against the existing set (linear scan; sets in
//     this package are small strong-generating sets, not large corpora).
//
// Errors:
//
//   - ErrDegreeMismatch combining permutations of different degree.
//   - ErrDomainError indexing a point outside [1, d].
package perm
