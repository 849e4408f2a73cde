// Package permgroup is a thin façade over a constructed bsgs.BSGS: group
// order, membership, and element enumeration, without exposing the
// stabilizer chain's internals to callers that just want "the group".
//
// Element enumeration (Elements, All) relies on the standard bijection
// between group elements and tuples of coset representatives, one per base
// level: every g in G decomposes uniquely as
//
//	g = T_1(beta_1) . T_2(beta_2) . ... . T_k(beta_k)
//
// for beta_i ranging over level i's orbit, which is exactly what Strip
// peels off one level at a time in reverse. Elements drives this as a
// Go 1.23 iterator (iter.Seq) so a caller can stop early without the group
// ever being materialized (the task-orbit minimizer's ITERATE method uses
// it that way); All collects the same sequence into a slice for callers
// that need repeated passes.
package permgroup
