package cnf

import (
	"fmt"

	"github.com/fologic/prover/internal/subst"
	"github.com/fologic/prover/internal/symtab"
	"github.com/fologic/prover/internal/term"
)

// skolemIdentity is a distinct type for Skolem function/constant
// identities, analogous to freshVarIdentity.
type skolemIdentity int

// skolemize scans the quantifier prefix top-down, tracking the list U of
// universally-bound variables in scope. Each existential binder
// introduces one fresh function symbol of arity len(U) per bound variable;
// the bound variable is replaced by Fi(U) in the body and the existential
// binder is removed (stage 6). A zero-length U yields a Skolem constant,
// represented as a zero-arity function symbol.
func (p *Pipeline) skolemize(f *term.Formula) *term.Formula {
	return p.skolemizeRec(f, nil)
}

func (p *Pipeline) skolemizeRec(f *term.Formula, universals []int) *term.Formula {
	if f == nil {
		return nil
	}
	switch f.Kind {
	case term.ForAll:
		nextU := append(append([]int{}, universals...), f.Vars...)
		return term.NewForAll(f.Vars, p.skolemizeRec(f.Body, nextU))
	case term.Exists:
		sub := make(subst.Subst, len(f.Vars))
		for _, y := range f.Vars {
			entry := p.newSkolemSymbol(len(universals))
			args := make([]*term.Term, len(universals))
			for i, u := range universals {
				args[i] = term.NewVar(u)
			}
			sub[y] = term.NewFunApp(entry.Index, args...)
		}
		body := p.skolemizeRec(f.Body, universals)
		return subst.ApplyFormula(sub, body)
	default:
		// Reached the quantifier-free matrix; no further quantifiers remain
		// once the prefix has been scanned (stage 5 guarantees all
		// quantifiers are at the front).
		return f
	}
}

func (p *Pipeline) newSkolemSymbol(arity int) *symtab.Entry {
	p.skolemCounter++
	name := fmt.Sprintf("sk%d", p.skolemCounter)
	entry, _ := p.st.Intern(symtab.Function, skolemIdentity(p.skolemCounter), name, arity)
	return entry
}

// dropLeadingForAlls removes the outermost universal binders left after
// Skolemisation: free variables in the resulting quantifier-free matrix
// are implicitly universally quantified.
func dropLeadingForAlls(f *term.Formula) *term.Formula {
	for f != nil && f.Kind == term.ForAll {
		f = f.Body
	}
	return f
}
