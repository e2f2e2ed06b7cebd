package cnf

import (
	"github.com/fologic/prover/internal/clause"
	"github.com/fologic/prover/internal/perr"
	"github.com/fologic/prover/internal/term"
)

// ExtractClauses splits a CNF matrix on top-level & then each conjunct on
// top-level |, producing one clause per conjunct. Tautologies are dropped
// and in-clause duplicate literals are removed. A node outside
// {Atom, Not(Atom), And, Or} at this point signals NotInCNF (a bug in the
// CNF pipeline or in the caller).
func ExtractClauses(matrix *term.Formula, sos bool) ([]*clause.Clause, error) {
	conjuncts := splitAnd(matrix)
	clauses := make([]*clause.Clause, 0, len(conjuncts))

	for _, conj := range conjuncts {
		lits, err := splitOrToLiterals(conj)
		if err != nil {
			return nil, err
		}
		lits = clause.RemoveDuplicates(lits)
		if clause.IsTautology(lits) {
			continue
		}
		clauses = append(clauses, clause.New(sos, lits...))
	}
	return clauses, nil
}

func splitAnd(f *term.Formula) []*term.Formula {
	if f.Kind == term.And {
		return append(splitAnd(f.Left), splitAnd(f.Right)...)
	}
	return []*term.Formula{f}
}

func splitOrToLiterals(f *term.Formula) ([]clause.Literal, error) {
	switch f.Kind {
	case term.Atom:
		return []clause.Literal{{Atom: f, Negated: false}}, nil
	case term.Not:
		if f.Left == nil || f.Left.Kind != term.Atom {
			return nil, perr.New(perr.NotInCNF, "cnf", "ExtractClauses", "negation of a non-atom in the matrix")
		}
		return []clause.Literal{{Atom: f.Left, Negated: true}}, nil
	case term.Or:
		left, err := splitOrToLiterals(f.Left)
		if err != nil {
			return nil, err
		}
		right, err := splitOrToLiterals(f.Right)
		if err != nil {
			return nil, err
		}
		return append(left, right...), nil
	default:
		return nil, perr.New(perr.NotInCNF, "cnf", "ExtractClauses", "node outside {Atom, Not(Atom), And, Or}")
	}
}
