package cnf

import "github.com/fologic/prover/internal/term"

// eliminateImplications rewrites every A -> B into !A | B (stage 1).
func eliminateImplications(f *term.Formula) *term.Formula {
	if f == nil {
		return nil
	}
	switch f.Kind {
	case term.Atom:
		return f
	case term.Not:
		return term.NewNot(eliminateImplications(f.Left))
	case term.And:
		return term.NewAnd(eliminateImplications(f.Left), eliminateImplications(f.Right))
	case term.Or:
		return term.NewOr(eliminateImplications(f.Left), eliminateImplications(f.Right))
	case term.Implies:
		return term.NewOr(term.NewNot(eliminateImplications(f.Left)), eliminateImplications(f.Right))
	case term.ForAll:
		return term.NewForAll(f.Vars, eliminateImplications(f.Body))
	case term.Exists:
		return term.NewExists(f.Vars, eliminateImplications(f.Body))
	default:
		return f
	}
}
