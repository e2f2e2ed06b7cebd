package cnf

import "github.com/fologic/prover/internal/term"

// toNNF pushes negation inward via De Morgan's laws and quantifier duality,
// eliminating double negation as it goes (stages 2 and 3). A single
// recursive descent reaches the same fixed point as iterating the
// rewrite rules to exhaustion, because each recursive call strictly
// decreases the negation depth of its subtree.
func toNNF(f *term.Formula) *term.Formula {
	if f == nil {
		return nil
	}
	switch f.Kind {
	case term.Atom:
		return f
	case term.And:
		return term.NewAnd(toNNF(f.Left), toNNF(f.Right))
	case term.Or:
		return term.NewOr(toNNF(f.Left), toNNF(f.Right))
	case term.ForAll:
		return term.NewForAll(f.Vars, toNNF(f.Body))
	case term.Exists:
		return term.NewExists(f.Vars, toNNF(f.Body))
	case term.Not:
		return pushNegation(f.Left)
	default:
		return f
	}
}

// pushNegation handles !g for every shape g can take, recursing into toNNF
// for the rewritten subtrees.
func pushNegation(g *term.Formula) *term.Formula {
	if g == nil {
		return nil
	}
	switch g.Kind {
	case term.Atom:
		return term.NewNot(g)
	case term.Not:
		// Double-negation elimination: !!A => A.
		return toNNF(g.Left)
	case term.And:
		// !(A & B) => !A | !B
		return term.NewOr(pushNegation(g.Left), pushNegation(g.Right))
	case term.Or:
		// !(A | B) => !A & !B
		return term.NewAnd(pushNegation(g.Left), pushNegation(g.Right))
	case term.ForAll:
		// !forall x. A => exists x. !A
		return term.NewExists(g.Vars, pushNegation(g.Body))
	case term.Exists:
		// !exists x. A => forall x. !A
		return term.NewForAll(g.Vars, pushNegation(g.Body))
	default:
		return term.NewNot(g)
	}
}
