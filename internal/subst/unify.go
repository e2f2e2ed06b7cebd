package subst

import "github.com/fologic/prover/internal/term"

// Pair is one equation in a unification problem: S =?= T.
type Pair struct {
	S *term.Term
	T *term.Term
}

// Unify runs the queue-based Martelli-Montanari algorithm to a fixed
// point, repeating delete/swap/eliminate/occurs-check/decompose/conflict
// until the queue is empty or a failure rule fires. It returns the
// most-general unifier (possibly empty) or ok=false. The naive queue-based
// algorithm is used rather than the near-linear union-find variant, per
// spec.md 4.C/9: worst case is quadratic, exponential on pathological
// inputs, but unifier contents are deterministic given pair order.
func Unify(pairs []Pair) (Subst, bool) {
	queue := make([]Pair, len(pairs))
	copy(queue, pairs)
	result := make(Subst)

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		s, t := p.S, p.T

		// Delete
		if term.TermEqual(s, t) {
			continue
		}

		// Swap: orient (non-var, var) into (var, non-var)
		if s.Kind != term.Var && t.Kind == term.Var {
			s, t = t, s
		}

		if s.Kind == term.Var {
			// Check (occurs)
			if occursIn(s.Index, t) {
				return nil, false
			}

			// Eliminate: substitute t for s throughout the remaining pairs,
			// and compose into the bindings accumulated so far.
			binding := Subst{s.Index: t}
			for i := range queue {
				queue[i].S = ApplyTerm(binding, queue[i].S)
				queue[i].T = ApplyTerm(binding, queue[i].T)
			}
			for k, v := range result {
				result[k] = ApplyTerm(binding, v)
			}
			result[s.Index] = t
			continue
		}

		// Both sides are non-variable.
		if s.Kind != t.Kind {
			return nil, false // Conflict: e.g. Const vs FunApp
		}

		switch s.Kind {
		case term.Const:
			if s.Index != t.Index {
				return nil, false // Conflict: distinct constants
			}
		case term.FunApp:
			if s.Index != t.Index || len(s.Args) != len(t.Args) {
				return nil, false // Conflict: different function symbol or arity
			}
			// Decompose: replace with argument pairs, processed before the
			// rest of the queue so eliminate substitutions apply to them too.
			decomposed := make([]Pair, len(s.Args))
			for i := range s.Args {
				decomposed[i] = Pair{S: s.Args[i], T: t.Args[i]}
			}
			queue = append(decomposed, queue...)
		default:
			return nil, false
		}
	}

	return result, true
}

func occursIn(varIndex int, t *term.Term) bool {
	if t.Kind == term.Var && t.Index == varIndex {
		return false // t is the variable itself; not an occurs-check failure
	}
	found := false
	term.VisitTerm(t, func(node *term.Term) {
		if node.Kind == term.Var && node.Index == varIndex {
			found = true
		}
	})
	return found
}

// UnifyAtoms unifies two atomic formulas argument-wise after checking that
// their relation indices agree; it rejects the pair outright (ok=false)
// when relation indices differ.
func UnifyAtoms(a, b *term.Formula) (Subst, bool) {
	if a.Kind != term.Atom || b.Kind != term.Atom {
		return nil, false
	}
	if a.RelIndex != b.RelIndex || len(a.Args) != len(b.Args) {
		return nil, false
	}
	pairs := make([]Pair, len(a.Args))
	for i := range a.Args {
		pairs[i] = Pair{S: a.Args[i], T: b.Args[i]}
	}
	return Unify(pairs)
}
