// Package inference implements the two saturation inference rules of
// spec.md 4.F: binary resolution between a pair of clauses, and factoring
// within a single clause. Both enumerate candidate literal combinations,
// attempt atom unification via internal/subst, and package each success as
// an inference struct the caller applies to build the resolvent/factor
// clause.
package inference

import (
	"github.com/fologic/prover/internal/clause"
	"github.com/fologic/prover/internal/subst"
)

// Resolution is one candidate binary resolution between literal leftIdx of
// Left and literal rightIdx of Right (opposite polarity, same relation,
// atoms unifiable via Sub).
type Resolution struct {
	Left     *clause.Clause
	LeftIdx  int
	Right    *clause.Clause
	RightIdx int
	Sub      subst.Subst
}

// Resolutions enumerates every literal pair (i in c1, j in c2) with
// identical relation index and opposite polarity whose atoms unify.
func Resolutions(c1, c2 *clause.Clause) []Resolution {
	var out []Resolution
	for i, li := range c1.Literals {
		for j, lj := range c2.Literals {
			if li.Negated == lj.Negated {
				continue
			}
			if li.Atom.RelIndex != lj.Atom.RelIndex {
				continue
			}
			sub, ok := subst.UnifyAtoms(li.Atom, lj.Atom)
			if !ok {
				continue
			}
			out = append(out, Resolution{Left: c1, LeftIdx: i, Right: c2, RightIdx: j, Sub: sub})
		}
	}
	return out
}

// ApplyResolution builds the resolvent: every literal of Left except
// LeftIdx, and every literal of Right except RightIdx, with Sub applied,
// duplicates removed. The resolvent's SOS flag is the OR of its parents'.
func ApplyResolution(r Resolution) *clause.Clause {
	lits := make([]clause.Literal, 0, len(r.Left.Literals)+len(r.Right.Literals)-2)
	for i, lit := range r.Left.Literals {
		if i == r.LeftIdx {
			continue
		}
		lits = append(lits, applyToLiteral(r.Sub, lit))
	}
	for j, lit := range r.Right.Literals {
		if j == r.RightIdx {
			continue
		}
		lits = append(lits, applyToLiteral(r.Sub, lit))
	}
	lits = clause.RemoveDuplicates(lits)
	return clause.New(r.Left.SOS || r.Right.SOS, lits...)
}

// Factor is one candidate factoring step within a single clause: literals
// idx1 and idx2 share polarity and relation, and their atoms unify.
type Factor struct {
	Parent *clause.Clause
	Idx1   int
	Idx2   int
	Sub    subst.Subst
}

// Factors enumerates every pair (i < j) of same-polarity, same-relation
// literals of c whose atoms unify.
func Factors(c *clause.Clause) []Factor {
	var out []Factor
	for i := 0; i < len(c.Literals); i++ {
		for j := i + 1; j < len(c.Literals); j++ {
			li, lj := c.Literals[i], c.Literals[j]
			if li.Negated != lj.Negated {
				continue
			}
			if li.Atom.RelIndex != lj.Atom.RelIndex {
				continue
			}
			sub, ok := subst.UnifyAtoms(li.Atom, lj.Atom)
			if !ok {
				continue
			}
			out = append(out, Factor{Parent: c, Idx1: i, Idx2: j, Sub: sub})
		}
	}
	return out
}

// ApplyFactor drops literal Idx2 from Parent, applies Sub to the rest, and
// removes duplicates. The factor inherits Parent's SOS flag.
func ApplyFactor(f Factor) *clause.Clause {
	lits := make([]clause.Literal, 0, len(f.Parent.Literals)-1)
	for i, lit := range f.Parent.Literals {
		if i == f.Idx2 {
			continue
		}
		lits = append(lits, applyToLiteral(f.Sub, lit))
	}
	lits = clause.RemoveDuplicates(lits)
	return clause.New(f.Parent.SOS, lits...)
}

func applyToLiteral(sub subst.Subst, lit clause.Literal) clause.Literal {
	return clause.Literal{Atom: subst.ApplyFormula(sub, lit.Atom), Negated: lit.Negated}
}
