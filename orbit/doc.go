// Package orbit computes the orbit of a point under a PermSet's action via
// breadth-first search, recording a spanning structure (a schreier.Structure)
// as it goes.
//
// What:
//
//   - Generate(root, labels, out) performs the BFS described in the
//     component design: starting from root, it applies every labeled
//     generator to the current frontier, recording a (origin, label index)
//     edge into out the first time a point is reached.
//
// Why:
//
//   - BSGS levels and the randomizer's transitivity check (package
//     prandom) both need the same closure operation; centralizing it
//     here keeps the BFS order (and therefore
//     the resulting Schreier tree shape) identical across callers, which
//     the spec calls out as part of the observable contract.
//
// Complexity: Time O(|orbit| * |labels|), Space O(|orbit|).
//
// Determinism: BFS order follows the index order of labels; two calls with
// the same root and the same PermSet produce the same visiting order and
// the same edges.
package orbit
