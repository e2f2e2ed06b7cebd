package fingerprint

import (
	"math/bits"

	"github.com/fologic/prover/internal/clause"
)

// numBuckets is the 32 possible lowest-set-bit positions of Funcs plus one
// bucket (index 32) for a zero Funcs field (a clause with no function or
// constant symbols in its arguments).
const numBuckets = 33

type entry struct {
	id  uint64
	sig Signature
}

// Index buckets indexed clauses by the position of the lowest set bit of
// their Funcs field, following the teacher's tiered clause-database idiom
// (xDarkicex-logic/sat/types.go's ClauseDatabase, there bucketed by LBD
// tier rather than by lowest set bit). Lookup only scans the bucket
// matching the query clause's own lowest bit, trading completeness of the
// candidate scan for a bounded bucket size.
type Index struct {
	masks   *Masks
	buckets [numBuckets][]entry
	byID    map[uint64]Signature
}

// NewIndex builds an empty index using masks built from k bits per mask
// and the given base seed (zero selects the defaults: k=4, seed=42).
func NewIndex(k int, baseSeed uint64) *Index {
	return &Index{
		masks: NewMasks(k, baseSeed),
		byID:  make(map[uint64]Signature),
	}
}

func bucketOf(funcs uint32) int {
	if funcs == 0 {
		return numBuckets - 1
	}
	return bits.TrailingZeros32(funcs)
}

// Insert computes c's signature, stores it under id, and returns the
// signature so callers can cache it alongside the clause.
func (idx *Index) Insert(id uint64, c *clause.Clause) Signature {
	sig := idx.masks.Of(c)
	b := bucketOf(sig.Funcs)
	idx.buckets[b] = append(idx.buckets[b], entry{id: id, sig: sig})
	idx.byID[id] = sig
	return sig
}

// Remove drops id from the index. Reports whether id was present.
func (idx *Index) Remove(id uint64) bool {
	sig, ok := idx.byID[id]
	if !ok {
		return false
	}
	b := bucketOf(sig.Funcs)
	bucket := idx.buckets[b]
	for i, e := range bucket {
		if e.id == id {
			bucket[i] = bucket[len(bucket)-1]
			idx.buckets[b] = bucket[:len(bucket)-1]
			break
		}
	}
	delete(idx.byID, id)
	return true
}

// FindCandidates returns the ids of indexed clauses whose signature passes
// MaybeSubsumes against c's signature, i.e. clauses that could possibly
// subsume c. Only the bucket matching c's own lowest Funcs bit is
// scanned.
func (idx *Index) FindCandidates(c *clause.Clause) []uint64 {
	sig := idx.masks.Of(c)
	return idx.findCandidates(sig)
}

func (idx *Index) findCandidates(sig Signature) []uint64 {
	b := bucketOf(sig.Funcs)
	bucket := idx.buckets[b]
	out := make([]uint64, 0, len(bucket))
	for _, e := range bucket {
		if MaybeSubsumes(e.sig, sig) {
			out = append(out, e.id)
		}
	}
	return out
}

// Signature returns the cached signature for id, if present.
func (idx *Index) Signature(id uint64) (Signature, bool) {
	sig, ok := idx.byID[id]
	return sig, ok
}

// Len reports the number of indexed clauses.
func (idx *Index) Len() int {
	return len(idx.byID)
}
