package fingerprint

import (
	"github.com/fologic/prover/internal/clause"
	"github.com/fologic/prover/internal/term"
)

// Misc bits, per spec.md 4.G. Bit 0 is reserved for a future equality
// extension and is never set by Signature today.
const (
	MiscHasEquality uint32 = 1 << 0
	MiscHasGround   uint32 = 1 << 1
	MiscDepthGE3    uint32 = 1 << 2
)

// Signature is the 128-bit subsumption-possibility fingerprint: four
// independent 32-bit fields rather than a single 128-bit integer, so each
// field can be widened or narrowed independently without touching the
// others.
type Signature struct {
	PosPreds uint32
	NegPreds uint32
	Funcs    uint32
	Misc     uint32
}

// Of builds the fingerprint of c under m. Every literal ORs its relation's
// positive- or negative-polarity mask into PosPreds/NegPreds, and every
// function or constant symbol occurring in its arguments ORs its mask into
// Funcs. Misc records whether any literal with at least one argument has
// only ground arguments (a 0-ary literal does not set it) and whether any
// argument term reaches depth 3 or more.
func (m *Masks) Of(c *clause.Clause) Signature {
	var sig Signature
	for _, lit := range c.Literals {
		if lit.Negated {
			sig.NegPreds |= m.NegPredMask(lit.Atom.RelIndex)
		} else {
			sig.PosPreds |= m.PosPredMask(lit.Atom.RelIndex)
		}

		ground := true
		for _, arg := range lit.Atom.Args {
			m.collectFuncs(arg, &sig)
			if !isGround(arg) {
				ground = false
			}
			if depth(arg) >= 3 {
				sig.Misc |= MiscDepthGE3
			}
		}
		if ground && len(lit.Atom.Args) > 0 {
			sig.Misc |= MiscHasGround
		}
	}
	return sig
}

func (m *Masks) collectFuncs(t *term.Term, sig *Signature) {
	switch t.Kind {
	case term.Const:
		sig.Funcs |= m.ConstMask(t.Index)
	case term.FunApp:
		sig.Funcs |= m.FuncMask(t.Index)
		for _, a := range t.Args {
			m.collectFuncs(a, sig)
		}
	}
}

func isGround(t *term.Term) bool {
	return len(term.TermFreeVars(t, nil)) == 0
}

// depth is the term's structural depth: a variable or constant is depth 1,
// and a function application is one more than its deepest argument. A
// zero-arity function (a Skolem constant modeled as FunApp) is depth 1,
// like a constant.
func depth(t *term.Term) int {
	if t.Kind != term.FunApp || len(t.Args) == 0 {
		return 1
	}
	max := 0
	for _, a := range t.Args {
		if d := depth(a); d > max {
			max = d
		}
	}
	return 1 + max
}

// MaybeSubsumes is the cheap over-approximate test of spec.md 4.G: a can
// only subsume b (in the full syntactic sense) if every bit a sets is also
// set in b, across all four fields. A false result rules out subsumption
// outright; a true result means subsumption is merely possible and must
// be confirmed by the real check.
func MaybeSubsumes(a, b Signature) bool {
	return a.PosPreds&^b.PosPreds == 0 &&
		a.NegPreds&^b.NegPreds == 0 &&
		a.Funcs&^b.Funcs == 0 &&
		a.Misc&^b.Misc == 0
}
