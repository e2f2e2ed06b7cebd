package cnf

import "github.com/fologic/prover/internal/term"

// prenex lifts quantifiers outward through & and |, e.g.
// A & forall x.B => forall x.(A & B) and the symmetric cases (stage 5).
// Because stage 4 has already freshened re-bound variables, no capture
// occurs. The recursive descent below reaches the same fixed point as
// iterating the rewrite rules to exhaustion.
func prenex(f *term.Formula) *term.Formula {
	if f == nil {
		return nil
	}
	switch f.Kind {
	case term.Atom, term.Not:
		return f
	case term.And, term.Or:
		l := prenex(f.Left)
		r := prenex(f.Right)
		return liftQuantifiers(f.Kind, l, r)
	case term.ForAll:
		return term.NewForAll(f.Vars, prenex(f.Body))
	case term.Exists:
		return term.NewExists(f.Vars, prenex(f.Body))
	default:
		return f
	}
}

func isQuantifier(k term.FormulaKind) bool {
	return k == term.ForAll || k == term.Exists
}

func buildBinary(kind term.FormulaKind, l, r *term.Formula) *term.Formula {
	if kind == term.And {
		return term.NewAnd(l, r)
	}
	return term.NewOr(l, r)
}

func buildQuantifier(kind term.FormulaKind, vars []int, body *term.Formula) *term.Formula {
	if kind == term.ForAll {
		return term.NewForAll(vars, body)
	}
	return term.NewExists(vars, body)
}

// liftQuantifiers assumes l and r are themselves already in prenex form
// (all of l's/r's own quantifiers sit at their respective fronts) and
// lifts every quantifier of l, then every quantifier of r, above a binary
// node of the given kind.
func liftQuantifiers(kind term.FormulaKind, l, r *term.Formula) *term.Formula {
	if isQuantifier(l.Kind) {
		return buildQuantifier(l.Kind, l.Vars, liftQuantifiers(kind, l.Body, r))
	}
	if isQuantifier(r.Kind) {
		return buildQuantifier(r.Kind, r.Vars, liftQuantifiers(kind, l, r.Body))
	}
	return buildBinary(kind, l, r)
}
