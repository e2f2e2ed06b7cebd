package clauseset

import (
	"github.com/fologic/prover/internal/clause"
	"github.com/fologic/prover/internal/inference"
)

// ResolventStep pairs a generated resolvent with the inference that
// produced it, for callers that want to record the substitution and
// parent ids (see internal/prover's optional trace). OtherID is the id of
// the active clause c was resolved against (Resolution.Left/Right only
// carry clause pointers, not ids).
type ResolventStep struct {
	Result     *Indexed
	OtherID    uint64
	Resolution inference.Resolution
}

// FactorStep pairs a generated factor with the inference that produced
// it.
type FactorStep struct {
	Result *Indexed
	Factor inference.Factor
}

// GenerateResolventSteps computes, for every other clause c' currently
// active, the resolutions between c and c' subject to the set-of-support
// restriction (at least one of the pair must have sos=true), applies
// each, drops tautologies, indexes the survivors, and returns them paired
// with the inference that produced them.
func (cs *ClauseSet) GenerateResolventSteps(c *Indexed) []ResolventStep {
	var out []ResolventStep
	for _, id := range cs.activeIDsSorted() {
		if id == c.ID {
			continue
		}
		other := cs.active[id]
		if !c.Clause.SOS && !other.Clause.SOS {
			continue
		}
		for _, r := range inference.Resolutions(c.Clause, other.Clause) {
			resolvent := inference.ApplyResolution(r)
			if clause.IsTautology(resolvent.Literals) {
				continue
			}
			out = append(out, ResolventStep{Result: cs.Insert(resolvent), OtherID: id, Resolution: r})
		}
	}
	return out
}

// GenerateResolvents is GenerateResolventSteps without the inference
// detail, for callers that only need the resulting clauses.
func (cs *ClauseSet) GenerateResolvents(c *Indexed) []*Indexed {
	steps := cs.GenerateResolventSteps(c)
	out := make([]*Indexed, len(steps))
	for i, s := range steps {
		out[i] = s.Result
	}
	return out
}

// GenerateFactorSteps enumerates the factors of c, applies each, drops
// tautologies, indexes the survivors, and returns them paired with the
// inference that produced them.
func (cs *ClauseSet) GenerateFactorSteps(c *Indexed) []FactorStep {
	var out []FactorStep
	for _, f := range inference.Factors(c.Clause) {
		factor := inference.ApplyFactor(f)
		if clause.IsTautology(factor.Literals) {
			continue
		}
		out = append(out, FactorStep{Result: cs.Insert(factor), Factor: f})
	}
	return out
}

// GenerateFactors is GenerateFactorSteps without the inference detail.
func (cs *ClauseSet) GenerateFactors(c *Indexed) []*Indexed {
	steps := cs.GenerateFactorSteps(c)
	out := make([]*Indexed, len(steps))
	for i, s := range steps {
		out[i] = s.Result
	}
	return out
}
