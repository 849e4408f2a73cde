// Package mpsym computes and exploits the symmetries of parallel task
// allocations on a fixed architecture.
//
// Given a symmetry group describing how an architecture's processing
// elements can be interchanged, and a task-to-PE allocation, mpsym finds a
// canonical representative of the allocation's orbit under the group's
// action, so that symmetrically equivalent allocations collapse onto a
// single representative instead of being explored or stored separately.
//
// Subpackages:
//
//	perm          — Permutation and PermSet, the group-element algebra
//	orbit         — BFS orbit computation over a generating set
//	schreier      — Schreier structure variants (tree, explicit transversal)
//	prandom       — product-replacement randomizer: approximately uniform
//	                random group elements, plus probabilistic alt/sym tests
//	bsgs          — base and strong generating set construction, by
//	                deterministic or randomized Schreier-Sims
//	permgroup     — a thin façade over bsgs: order, membership, element
//	                enumeration
//	automorphism  — colored-graph builder and external automorphism-oracle
//	                wrapper, for deriving an architecture's symmetry group
//	                from its interconnect topology
//	taskorbit     — task-allocation canonicalization (Iterate, LocalSearch,
//	                OrbitBFS) and a deduplicating orbit-representative
//	                registry
//
// Runnable examples live in each package's example_test.go; the module
// has no separate examples directory or configuration-file loader.
//
// A concrete dense-graph-automorphism engine (the kind of external tool
// automorphism.Oracle wraps) is not part of this module; only the
// interface it must satisfy is specified here.
package mpsym
