// Package term implements the tagged term and formula syntax trees of
// spec.md 3: a sum-of-variants representation with structural traversal,
// free-variable computation, and structural equality. A single struct per
// sum type (TermKind/FormulaKind discriminant + a switch at each visitor)
// is used throughout, following the teacher's ASTNode convention
// (xDarkicex-logic/classical/logic.go) rather than an interface-per-variant
// hierarchy.
package term

// TermKind is the closed set of term variants: Var(idx), Const(idx),
// FunApp(idx, args).
type TermKind int

const (
	Var TermKind = iota
	Const
	FunApp
)

func (k TermKind) String() string {
	switch k {
	case Var:
		return "Var"
	case Const:
		return "Const"
	case FunApp:
		return "FunApp"
	default:
		return "UnknownTermKind"
	}
}

// Term is a sum of {Var(idx), Const(idx), FunApp(idx, args)}.
type Term struct {
	Kind  TermKind
	Index int // variable index, constant index, or function symbol index
	Args  []*Term
}

// NewVar builds a variable term.
func NewVar(index int) *Term { return &Term{Kind: Var, Index: index} }

// NewConst builds a constant term.
func NewConst(index int) *Term { return &Term{Kind: Const, Index: index} }

// NewFunApp builds a function-application term.
func NewFunApp(index int, args ...*Term) *Term {
	return &Term{Kind: FunApp, Index: index, Args: args}
}

// FormulaKind is the closed set of formula variants.
type FormulaKind int

const (
	Atom FormulaKind = iota
	Not
	And
	Or
	Implies
	ForAll
	Exists
)

func (k FormulaKind) String() string {
	switch k {
	case Atom:
		return "Atom"
	case Not:
		return "Not"
	case And:
		return "And"
	case Or:
		return "Or"
	case Implies:
		return "Implies"
	case ForAll:
		return "ForAll"
	case Exists:
		return "Exists"
	default:
		return "UnknownFormulaKind"
	}
}

// Formula is a sum of {Atom(idx,args), Not(f), And(l,r), Or(l,r),
// Implies(l,r), ForAll(vars,body), Exists(vars,body)}.
type Formula struct {
	Kind FormulaKind

	// Atom
	RelIndex int
	Args     []*Term

	// Not, And, Or, Implies
	Left  *Formula
	Right *Formula

	// ForAll, Exists
	Vars []int
	Body *Formula
}

// NewAtom builds an atomic formula over a relation symbol and arguments.
func NewAtom(relIndex int, args ...*Term) *Formula {
	return &Formula{Kind: Atom, RelIndex: relIndex, Args: args}
}

// NewNot builds a negation.
func NewNot(f *Formula) *Formula { return &Formula{Kind: Not, Left: f} }

// NewAnd builds a conjunction.
func NewAnd(l, r *Formula) *Formula { return &Formula{Kind: And, Left: l, Right: r} }

// NewOr builds a disjunction.
func NewOr(l, r *Formula) *Formula { return &Formula{Kind: Or, Left: l, Right: r} }

// NewImplies builds an implication l -> r.
func NewImplies(l, r *Formula) *Formula { return &Formula{Kind: Implies, Left: l, Right: r} }

// NewForAll builds a universal quantification over vars.
func NewForAll(vars []int, body *Formula) *Formula {
	return &Formula{Kind: ForAll, Vars: vars, Body: body}
}

// NewExists builds an existential quantification over vars.
func NewExists(vars []int, body *Formula) *Formula {
	return &Formula{Kind: Exists, Vars: vars, Body: body}
}

// TermEqual is structural equality over terms.
func TermEqual(a, b *Term) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind != b.Kind || a.Index != b.Index {
		return false
	}
	if len(a.Args) != len(b.Args) {
		return false
	}
	for i := range a.Args {
		if !TermEqual(a.Args[i], b.Args[i]) {
			return false
		}
	}
	return true
}

// Equal is structural equality over formulas. Variable binders compare
// their variable index lists position-wise; no alpha equivalence is
// performed here (the CNF pipeline has already renamed apart).
func Equal(a, b *Formula) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case Atom:
		if a.RelIndex != b.RelIndex || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !TermEqual(a.Args[i], b.Args[i]) {
				return false
			}
		}
		return true
	case Not:
		return Equal(a.Left, b.Left)
	case And, Or, Implies:
		return Equal(a.Left, b.Left) && Equal(a.Right, b.Right)
	case ForAll, Exists:
		if len(a.Vars) != len(b.Vars) {
			return false
		}
		for i := range a.Vars {
			if a.Vars[i] != b.Vars[i] {
				return false
			}
		}
		return Equal(a.Body, b.Body)
	default:
		return false
	}
}

// TermFreeVars appends the ordered (with duplicates) list of variable
// indices occurring in term to out.
func TermFreeVars(t *Term, out []int) []int {
	if t == nil {
		return out
	}
	switch t.Kind {
	case Var:
		return append(out, t.Index)
	case Const:
		return out
	case FunApp:
		for _, a := range t.Args {
			out = TermFreeVars(a, out)
		}
		return out
	default:
		return out
	}
}

// FreeVars produces the ordered list of variable indices occurring free in
// f; duplicates are allowed. Callers that require uniqueness build a set
// from the result.
func FreeVars(f *Formula) []int {
	return freeVars(f, nil, nil)
}

// freeVars threads a bound-set through the traversal so quantified
// variables are excluded from the result.
func freeVars(f *Formula, bound []int, out []int) []int {
	if f == nil {
		return out
	}
	switch f.Kind {
	case Atom:
		for _, arg := range f.Args {
			for _, v := range TermFreeVars(arg, nil) {
				if !containsInt(bound, v) {
					out = append(out, v)
				}
			}
		}
		return out
	case Not:
		return freeVars(f.Left, bound, out)
	case And, Or, Implies:
		out = freeVars(f.Left, bound, out)
		out = freeVars(f.Right, bound, out)
		return out
	case ForAll, Exists:
		newBound := append(append([]int{}, bound...), f.Vars...)
		return freeVars(f.Body, newBound, out)
	default:
		return out
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

// Visit calls fn for f and, recursively, every formula node reachable from
// it (pre-order).
func Visit(f *Formula, fn func(*Formula)) {
	if f == nil {
		return
	}
	fn(f)
	switch f.Kind {
	case Not:
		Visit(f.Left, fn)
	case And, Or, Implies:
		Visit(f.Left, fn)
		Visit(f.Right, fn)
	case ForAll, Exists:
		Visit(f.Body, fn)
	}
}

// VisitTerm calls fn for t and, recursively, every subterm (pre-order).
func VisitTerm(t *Term, fn func(*Term)) {
	if t == nil {
		return
	}
	fn(t)
	for _, a := range t.Args {
		VisitTerm(a, fn)
	}
}
