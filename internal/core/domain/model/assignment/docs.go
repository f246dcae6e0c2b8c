// Package assignment provides the Assignment aggregate: one dispatch cycle
// for one shop order, from broadcast through single-winner accept to
// verified completion.
//
// The single-acceptor invariant is enforced twice. This aggregate rejects a
// second accept in memory, and the assignment repository exposes accept and
// complete only as conditional storage updates, so two transactions racing on
// the same offer resolve to exactly one winner regardless of interleaving.
package assignment
