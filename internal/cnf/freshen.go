package cnf

import (
	"fmt"

	"github.com/fologic/prover/internal/symtab"
	"github.com/fologic/prover/internal/term"
)

// freshVarIdentity is a distinct type used only for symbol identities
// synthesised by the CNF pipeline, so it can never collide with a
// caller-supplied identity (Go interface equality compares dynamic type
// as well as value).
type freshVarIdentity int

// freshener implements stage 4 (quantifier freshening): a depth-first
// traversal with a `seen` set of already-bound variable indices and a
// `mapping` stack of active renamings, installed on entering a quantifier
// and rolled back on exit.
type freshener struct {
	st      *symtab.Table
	seen    map[int]bool
	mapping map[int]int
	counter *int
}

func (fr *freshener) formula(f *term.Formula) *term.Formula {
	if f == nil {
		return nil
	}
	switch f.Kind {
	case term.Atom:
		args := make([]*term.Term, len(f.Args))
		for i, a := range f.Args {
			args[i] = fr.term(a)
		}
		return term.NewAtom(f.RelIndex, args...)
	case term.Not:
		return term.NewNot(fr.formula(f.Left))
	case term.And:
		return term.NewAnd(fr.formula(f.Left), fr.formula(f.Right))
	case term.Or:
		return term.NewOr(fr.formula(f.Left), fr.formula(f.Right))
	case term.Implies:
		return term.NewImplies(fr.formula(f.Left), fr.formula(f.Right))
	case term.ForAll, term.Exists:
		return fr.quantifier(f)
	default:
		return f
	}
}

func (fr *freshener) quantifier(f *term.Formula) *term.Formula {
	type saved struct {
		idx  int
		had  bool
		prev int
	}
	newVars := make([]int, len(f.Vars))
	saves := make([]saved, 0, len(f.Vars))

	for i, v := range f.Vars {
		prev, had := fr.mapping[v]
		saves = append(saves, saved{idx: v, had: had, prev: prev})

		if fr.seen[v] {
			newIdx := fr.freshVar(v)
			fr.mapping[v] = newIdx
			newVars[i] = newIdx
		} else {
			fr.seen[v] = true
			delete(fr.mapping, v)
			newVars[i] = v
		}
	}

	body := fr.formula(f.Body)

	for _, s := range saves {
		if s.had {
			fr.mapping[s.idx] = s.prev
		} else {
			delete(fr.mapping, s.idx)
		}
	}

	if f.Kind == term.ForAll {
		return term.NewForAll(newVars, body)
	}
	return term.NewExists(newVars, body)
}

func (fr *freshener) term(t *term.Term) *term.Term {
	if t == nil {
		return nil
	}
	switch t.Kind {
	case term.Var:
		if newIdx, ok := fr.mapping[t.Index]; ok {
			return term.NewVar(newIdx)
		}
		return t
	case term.Const:
		return t
	case term.FunApp:
		args := make([]*term.Term, len(t.Args))
		for i, a := range t.Args {
			args[i] = fr.term(a)
		}
		return term.NewFunApp(t.Index, args...)
	default:
		return t
	}
}

func (fr *freshener) freshVar(original int) int {
	*fr.counter++
	baseName := "v"
	if entry, err := fr.st.ResolveIndex(symtab.Variable, original); err == nil {
		baseName = entry.Name
	}
	name := fmt.Sprintf("%s#%d", baseName, *fr.counter)
	entry, _ := fr.st.Intern(symtab.Variable, freshVarIdentity(*fr.counter), name, 0)
	return entry.Index
}

// freshen runs stage 4 over f, using and advancing p's fresh-variable
// counter so identities stay unique across repeated ToCNF calls on the
// same symbol table.
func (p *Pipeline) freshen(f *term.Formula) *term.Formula {
	fr := &freshener{
		st:      p.st,
		seen:    make(map[int]bool),
		mapping: make(map[int]int),
		counter: &p.freshVarCounter,
	}
	return fr.formula(f)
}
