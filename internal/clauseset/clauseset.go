package clauseset

import (
	"container/heap"
	"sort"

	"github.com/fologic/prover/internal/clause"
	"github.com/fologic/prover/internal/fingerprint"
)

const defaultRatio = 4

// ClauseSet is the Otter-architecture saturation state of spec.md 4.H: an
// active set, two passive priority queues, a subsumption fingerprint
// index, a selection ratio, and a selection counter.
type ClauseSet struct {
	active map[uint64]*Indexed
	byID   map[uint64]*Indexed

	ageQ       ageQueue
	heuristicQ heuristicQueue
	index      *fingerprint.Index
	ratio      int
	counter    uint64
	nextID     uint64
	nextAge    uint64
}

// New builds an empty ClauseSet. ratio is R in spec.md 4.H (0 selects the
// default of 4); fingerprintK/fingerprintSeed parameterize the
// subsumption index's mask generator (0 selects its defaults).
func New(ratio int, fingerprintK int, fingerprintSeed uint64) *ClauseSet {
	if ratio <= 0 {
		ratio = defaultRatio
	}
	cs := &ClauseSet{
		active: make(map[uint64]*Indexed),
		byID:   make(map[uint64]*Indexed),
		index:  fingerprint.NewIndex(fingerprintK, fingerprintSeed),
		ratio:  ratio,
	}
	heap.Init(&cs.ageQ)
	heap.Init(&cs.heuristicQ)
	return cs
}

// Insert assigns c a fresh id and age, fingerprints and indexes it, and
// pushes it into both passive queues.
func (cs *ClauseSet) Insert(c *clause.Clause) *Indexed {
	ind := &Indexed{
		ID:         cs.nextID,
		Age:        cs.nextAge,
		Clause:     c,
		complexity: complexity(c),
	}
	cs.nextID++
	cs.nextAge++

	ind.Signature = cs.index.Insert(ind.ID, c)
	cs.byID[ind.ID] = ind

	heap.Push(&cs.ageQ, ind)
	heap.Push(&cs.heuristicQ, ind)
	return ind
}

// Activate moves c into the active set and marks it no longer passive.
// Idempotent.
func (cs *ClauseSet) Activate(ind *Indexed) {
	ind.NoLongerPassive = true
	ind.Active = true
	cs.active[ind.ID] = ind
}

// Remove takes c out of the active set, marks it no longer passive, and
// drops it from the subsumption index.
func (cs *ClauseSet) Remove(ind *Indexed) {
	delete(cs.active, ind.ID)
	ind.NoLongerPassive = true
	cs.index.Remove(ind.ID)
}

// ActiveClauses returns the current active set as a slice (order
// unspecified).
func (cs *ClauseSet) ActiveClauses() []*Indexed {
	out := make([]*Indexed, 0, len(cs.active))
	for _, ind := range cs.active {
		out = append(out, ind)
	}
	return out
}

// ActiveSize reports the number of clauses currently active.
func (cs *ClauseSet) ActiveSize() int {
	return len(cs.active)
}

// activeIDsSorted returns the ids of the currently active clauses in
// ascending order. Go's map iteration order is randomized per process, so
// anything on the inference path that needs to enumerate the active set
// must go through this instead of ranging over cs.active directly — else
// the resolvents generated (and the ids/ages assigned to them) vary from
// run to run, which would break spec.md 8's determinism property.
func (cs *ClauseSet) activeIDsSorted() []uint64 {
	ids := make([]uint64, 0, len(cs.active))
	for id := range cs.active {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// FindCandidates returns the ids of indexed clauses that might subsume c,
// per the fingerprint index's bucketed possibility test.
func (cs *ClauseSet) FindCandidates(c *clause.Clause) []uint64 {
	return cs.index.FindCandidates(c)
}
