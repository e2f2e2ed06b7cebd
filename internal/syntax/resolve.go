package syntax

import (
	"regexp"

	"github.com/fologic/prover/internal/symtab"
	"github.com/fologic/prover/internal/term"
)

// defaultVarPattern is spec.md 6's default-variable rule: identifiers
// matching /^[uvwxyz](\d*)$/ default to variables when unbound in
// context.
var defaultVarPattern = regexp.MustCompile(`^[uvwxyz](\d*)$`)

// syntaxVarIdentity distinguishes parser-synthesized variable identities
// from any caller-supplied identity of another concrete type, following
// the same pattern as internal/cnf's freshVarIdentity/skolemIdentity.
type syntaxVarIdentity int

var nextSyntaxVarID int

func freshSyntaxVarIdentity() syntaxVarIdentity {
	nextSyntaxVarID++
	return syntaxVarIdentity(nextSyntaxVarID)
}

// resolver turns a parsed grammar tree into a term.Formula, interning
// names into a symbol table. Lexical scope (explicit quantifier
// bindings) is a stack of name->index maps; bare free variables matching
// defaultVarPattern are resolved once per Parse call and cached in free
// so repeated occurrences share one variable index within that formula,
// while two separate Parse calls never share one, even for the same
// spelling.
type resolver struct {
	st    *symtab.Table
	scope []map[string]int
	free  map[string]int
}

func newResolver(st *symtab.Table) *resolver {
	return &resolver{st: st, free: make(map[string]int)}
}

func (r *resolver) lookup(name string) (int, bool) {
	for i := len(r.scope) - 1; i >= 0; i-- {
		if idx, ok := r.scope[i][name]; ok {
			return idx, true
		}
	}
	return 0, false
}

func (r *resolver) bindVariable(name string) (int, error) {
	entry, err := r.st.Intern(symtab.Variable, freshSyntaxVarIdentity(), name, 0)
	if err != nil {
		return 0, err
	}
	return entry.Index, nil
}

func (r *resolver) formula(f *Formula) (*term.Formula, error) {
	if f.Quantified != nil {
		return r.quantified(f.Quantified)
	}
	return r.implication(f.Plain)
}

func (r *resolver) quantified(q *Quantified) (*term.Formula, error) {
	scope := make(map[string]int, len(q.Vars))
	indices := make([]int, len(q.Vars))
	for i, name := range q.Vars {
		idx, err := r.bindVariable(name)
		if err != nil {
			return nil, err
		}
		scope[name] = idx
		indices[i] = idx
	}

	r.scope = append(r.scope, scope)
	body, err := r.formula(q.Body)
	r.scope = r.scope[:len(r.scope)-1]
	if err != nil {
		return nil, err
	}

	if q.Kind == "forall" || q.Kind == "∀" {
		return term.NewForAll(indices, body), nil
	}
	return term.NewExists(indices, body), nil
}

func (r *resolver) implication(i *Implication) (*term.Formula, error) {
	left, err := r.disjunction(i.Left)
	if err != nil {
		return nil, err
	}
	if i.Right == nil {
		return left, nil
	}
	right, err := r.implication(i.Right)
	if err != nil {
		return nil, err
	}
	return term.NewImplies(left, right), nil
}

func (r *resolver) disjunction(d *Disjunction) (*term.Formula, error) {
	result, err := r.conjunction(d.Left)
	if err != nil {
		return nil, err
	}
	for _, c := range d.Ops {
		next, err := r.conjunction(c)
		if err != nil {
			return nil, err
		}
		result = term.NewOr(result, next)
	}
	return result, nil
}

func (r *resolver) conjunction(c *Conjunction) (*term.Formula, error) {
	result, err := r.negation(c.Left)
	if err != nil {
		return nil, err
	}
	for _, n := range c.Ops {
		next, err := r.negation(n)
		if err != nil {
			return nil, err
		}
		result = term.NewAnd(result, next)
	}
	return result, nil
}

func (r *resolver) negation(n *Negation) (*term.Formula, error) {
	if n.Bang {
		inner, err := r.negation(n.Inner)
		if err != nil {
			return nil, err
		}
		return term.NewNot(inner), nil
	}
	return r.atomic(n.Atom)
}

func (r *resolver) atomic(a *Atomic) (*term.Formula, error) {
	if a.Paren != nil {
		return r.formula(a.Paren)
	}
	return r.predicate(a.Pred)
}

func (r *resolver) predicate(p *Predicate) (*term.Formula, error) {
	args := make([]*term.Term, len(p.Args))
	for i, arg := range p.Args {
		t, err := r.term(arg)
		if err != nil {
			return nil, err
		}
		args[i] = t
	}
	entry, err := r.st.Intern(symtab.Relation, p.Name, p.Name, len(args))
	if err != nil {
		return nil, err
	}
	return term.NewAtom(entry.Index, args...), nil
}

// term resolves one Term node. An argument list always means a function
// application. A bare name resolves, in order: against lexical scope
// (an explicit quantifier binding), against defaultVarPattern (an
// implicitly-universal default variable, cached per Parse call), and
// finally as a constant.
func (r *resolver) term(t *Term) (*term.Term, error) {
	if len(t.Args) > 0 {
		args := make([]*term.Term, len(t.Args))
		for i, arg := range t.Args {
			sub, err := r.term(arg)
			if err != nil {
				return nil, err
			}
			args[i] = sub
		}
		entry, err := r.st.Intern(symtab.Function, t.Name, t.Name, len(args))
		if err != nil {
			return nil, err
		}
		return term.NewFunApp(entry.Index, args...), nil
	}

	if idx, ok := r.lookup(t.Name); ok {
		return term.NewVar(idx), nil
	}

	if defaultVarPattern.MatchString(t.Name) {
		idx, ok := r.free[t.Name]
		if !ok {
			var err error
			idx, err = r.bindVariable(t.Name)
			if err != nil {
				return nil, err
			}
			r.free[t.Name] = idx
		}
		return term.NewVar(idx), nil
	}

	entry, err := r.st.Intern(symtab.Constant, t.Name, t.Name, 0)
	if err != nil {
		return nil, err
	}
	return term.NewConst(entry.Index), nil
}
