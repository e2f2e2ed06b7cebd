// Package clauseset implements the Otter-architecture clause set of
// spec.md 4.H: an active set, two passive min-heaps (age-based FIFO and
// heuristic weight) balanced by a fixed ratio, and a subsumption
// fingerprint index, following the teacher's heap-backed trail
// (xDarkicex-logic/sat/trail.go) and clause-database bookkeeping
// (xDarkicex-logic/sat/inprocessor.go).
package clauseset

import (
	"github.com/fologic/prover/internal/clause"
	"github.com/fologic/prover/internal/fingerprint"
)

// Indexed is a clause plus its saturation-view bookkeeping: a 128-bit
// fingerprint, a monotone id and age, and the two lifecycle flags. Id and
// age are both monotone globals assigned at insertion; Active and
// NoLongerPassive are monotone false->true and mutated only by the
// ClauseSet.
type Indexed struct {
	ID              uint64
	Age             uint64
	Clause          *clause.Clause
	Signature       fingerprint.Signature
	Active          bool
	NoLongerPassive bool

	complexity float64
}
