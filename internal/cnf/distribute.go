package cnf

import "github.com/fologic/prover/internal/term"

// distribute pushes | over & to a fixed point (stage 7):
// A | (B & C) => (A | B) & (A | C), and the symmetric left case.
func distribute(f *term.Formula) *term.Formula {
	if f == nil {
		return nil
	}
	switch f.Kind {
	case term.Atom, term.Not:
		return f
	case term.And:
		return term.NewAnd(distribute(f.Left), distribute(f.Right))
	case term.Or:
		return distributeOr(distribute(f.Left), distribute(f.Right))
	default:
		return f
	}
}

func distributeOr(l, r *term.Formula) *term.Formula {
	if l.Kind == term.And {
		return term.NewAnd(distributeOr(l.Left, r), distributeOr(l.Right, r))
	}
	if r.Kind == term.And {
		return term.NewAnd(distributeOr(l, r.Left), distributeOr(l, r.Right))
	}
	return term.NewOr(l, r)
}
