// Package subst implements capture-avoiding substitution application and
// Martelli-Montanari syntactic unification over the term.Term/term.Formula
// representation (spec.md 4.C).
package subst

import "github.com/fologic/prover/internal/term"

// Subst is a finite mapping from variable index to replacement term.
type Subst map[int]*term.Term

// Clone returns a shallow copy of sub.
func (sub Subst) Clone() Subst {
	out := make(Subst, len(sub))
	for k, v := range sub {
		out[k] = v
	}
	return out
}

// ApplyTerm replaces every free variable of t with its image under sub.
// Bound variables are never substituted, but Term has no binders of its
// own: every Var occurrence in a Term is free with respect to the Term
// itself (quantifier scoping only exists at the Formula level).
func ApplyTerm(sub Subst, t *term.Term) *term.Term {
	return applyTermScoped(sub, t, nil)
}

func applyTermScoped(sub Subst, t *term.Term, bound []int) *term.Term {
	if t == nil {
		return nil
	}
	switch t.Kind {
	case term.Var:
		if containsInt(bound, t.Index) {
			return t
		}
		if repl, ok := sub[t.Index]; ok {
			return repl
		}
		return t
	case term.Const:
		return t
	case term.FunApp:
		args := make([]*term.Term, len(t.Args))
		changed := false
		for i, a := range t.Args {
			args[i] = applyTermScoped(sub, a, bound)
			if args[i] != a {
				changed = true
			}
		}
		if !changed {
			return t
		}
		return term.NewFunApp(t.Index, args...)
	default:
		return t
	}
}

// ApplyFormula applies sub to f. A scope set of currently-bound variable
// indices is threaded through quantifier bodies so that a substitution
// entry for an index bound at the current scope is shadowed rather than
// applied (spec.md 4.C).
func ApplyFormula(sub Subst, f *term.Formula) *term.Formula {
	return applyFormulaScoped(sub, f, nil)
}

func applyFormulaScoped(sub Subst, f *term.Formula, bound []int) *term.Formula {
	if f == nil {
		return nil
	}
	switch f.Kind {
	case term.Atom:
		args := make([]*term.Term, len(f.Args))
		for i, a := range f.Args {
			args[i] = applyTermScoped(sub, a, bound)
		}
		return term.NewAtom(f.RelIndex, args...)
	case term.Not:
		return term.NewNot(applyFormulaScoped(sub, f.Left, bound))
	case term.And:
		return term.NewAnd(applyFormulaScoped(sub, f.Left, bound), applyFormulaScoped(sub, f.Right, bound))
	case term.Or:
		return term.NewOr(applyFormulaScoped(sub, f.Left, bound), applyFormulaScoped(sub, f.Right, bound))
	case term.Implies:
		return term.NewImplies(applyFormulaScoped(sub, f.Left, bound), applyFormulaScoped(sub, f.Right, bound))
	case term.ForAll:
		newBound := append(append([]int{}, bound...), f.Vars...)
		return term.NewForAll(f.Vars, applyFormulaScoped(sub, f.Body, newBound))
	case term.Exists:
		newBound := append(append([]int{}, bound...), f.Vars...)
		return term.NewExists(f.Vars, applyFormulaScoped(sub, f.Body, newBound))
	default:
		return f
	}
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}
