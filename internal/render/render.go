// Package render implements the rendering API of spec.md §6:
// renderTerm/renderFormula/renderClause, each producing Unicode operator
// forms and consuming only a symbol entry's display name (never its
// identity or index). Colour is layered on top for terminal output, the
// way signadot-tony-format's encode.Colors keys a palette by syntactic
// role (go-tony/encode/encode_colors.go) and kanso-lang-kanso's own
// printer.go builds output with recursive per-node String methods.
package render

import (
	"strings"

	"github.com/fatih/color"

	"github.com/fologic/prover/internal/clause"
	"github.com/fologic/prover/internal/perr"
	"github.com/fologic/prover/internal/symtab"
	"github.com/fologic/prover/internal/term"
)

// Role is the syntactic category a rendered token plays, used to key the
// colour palette.
type Role int

const (
	RoleVariable Role = iota
	RoleConstant
	RoleFunction
	RoleRelation
	RoleOperator
	RoleNegated
)

// Palette maps a Role to a colour function. NewPalette colours each Role;
// NewPlainPalette applies no colour and backs RenderTerm/RenderFormula/
// RenderClause.
type Palette struct {
	funcs map[Role]func(format string, a ...interface{}) string
}

func colorDefault(format string, a ...interface{}) string {
	if len(a) == 0 {
		return format
	}
	return format
}

// NewPalette builds the default ANSI palette, one colour per Role.
func NewPalette() *Palette {
	p := &Palette{funcs: map[Role]func(string, ...interface{}) string{
		RoleVariable: color.New(color.FgCyan).SprintfFunc(),
		RoleConstant: color.New(color.FgGreen).SprintfFunc(),
		RoleFunction: color.New(color.FgYellow).SprintfFunc(),
		RoleRelation: color.New(color.FgBlue).SprintfFunc(),
		RoleOperator: color.New(color.FgMagenta).SprintfFunc(),
		RoleNegated:  color.New(color.FgRed).SprintfFunc(),
	}}
	return p
}

// NewPlainPalette builds a no-colour palette, for non-terminal output
// (files, piped CLI output, tests).
func NewPlainPalette() *Palette {
	p := &Palette{funcs: make(map[Role]func(string, ...interface{}) string)}
	for _, r := range []Role{RoleVariable, RoleConstant, RoleFunction, RoleRelation, RoleOperator, RoleNegated} {
		p.funcs[r] = colorDefault
	}
	return p
}

func (p *Palette) paint(r Role, s string) string {
	f, ok := p.funcs[r]
	if !ok {
		return s
	}
	return f(s)
}

// Term renders t in the concrete syntax of spec.md §6, resolving symbol
// names from st.
func (p *Palette) Term(t *term.Term, st *symtab.Table) (string, error) {
	if t == nil {
		return "", nil
	}
	switch t.Kind {
	case term.Var:
		entry, err := st.ResolveIndex(symtab.Variable, t.Index)
		if err != nil {
			return "", err
		}
		return p.paint(RoleVariable, symtab.Describe(entry)), nil
	case term.Const:
		entry, err := st.ResolveIndex(symtab.Constant, t.Index)
		if err != nil {
			return "", err
		}
		return p.paint(RoleConstant, symtab.Describe(entry)), nil
	case term.FunApp:
		entry, err := st.ResolveIndex(symtab.Function, t.Index)
		if err != nil {
			return "", err
		}
		if err := symtab.CheckArity(entry, len(t.Args), "render.Term"); err != nil {
			return "", err
		}
		args := make([]string, len(t.Args))
		for i, a := range t.Args {
			s, err := p.Term(a, st)
			if err != nil {
				return "", err
			}
			args[i] = s
		}
		name := p.paint(RoleFunction, symtab.Describe(entry))
		return name + "(" + strings.Join(args, ", ") + ")", nil
	default:
		return "", perr.New(perr.NotInCNF, "render", "Term", "unknown term kind")
	}
}

// Formula renders f in the concrete syntax of spec.md §6: ¬, ∧, ∨, →,
// ∀, ∃. Sub-formulas are not parenthesised beyond what is needed to
// disambiguate the precedence order ¬ > ∧ > ∨ > → > quantifiers (see
// internal/syntax's grammar for the same ordering).
func (p *Palette) Formula(f *term.Formula, st *symtab.Table) (string, error) {
	s, _, err := p.formula(f, st, 0)
	return s, err
}

// precedence ranks tighter-binding operators higher so the recursive
// renderer knows when a child needs parentheses.
func precedence(k term.FormulaKind) int {
	switch k {
	case term.Atom:
		return 5
	case term.Not:
		return 4
	case term.And:
		return 3
	case term.Or:
		return 2
	case term.Implies:
		return 1
	case term.ForAll, term.Exists:
		return 0
	default:
		return 0
	}
}

func (p *Palette) formula(f *term.Formula, st *symtab.Table, parentPrec int) (string, int, error) {
	if f == nil {
		return "", 0, nil
	}
	prec := precedence(f.Kind)

	switch f.Kind {
	case term.Atom:
		entry, err := st.ResolveIndex(symtab.Relation, f.RelIndex)
		if err != nil {
			return "", prec, err
		}
		if err := symtab.CheckArity(entry, len(f.Args), "render.Formula"); err != nil {
			return "", prec, err
		}
		args := make([]string, len(f.Args))
		for i, a := range f.Args {
			s, err := p.Term(a, st)
			if err != nil {
				return "", prec, err
			}
			args[i] = s
		}
		name := p.paint(RoleRelation, symtab.Describe(entry))
		if len(args) == 0 {
			return name, prec, nil
		}
		return name + "(" + strings.Join(args, ", ") + ")", prec, nil

	case term.Not:
		inner, innerPrec, err := p.formula(f.Left, st, prec)
		if err != nil {
			return "", prec, err
		}
		if innerPrec < prec {
			inner = "(" + inner + ")"
		}
		return p.paint(RoleOperator, "¬") + inner, prec, nil

	case term.And, term.Or, term.Implies:
		op, rightAssoc := binOpSymbol(f.Kind)
		left, leftPrec, err := p.formula(f.Left, st, prec)
		if err != nil {
			return "", prec, err
		}
		right, rightPrec, err := p.formula(f.Right, st, prec)
		if err != nil {
			return "", prec, err
		}
		if leftPrec < prec || (leftPrec == prec && rightAssoc) {
			left = "(" + left + ")"
		}
		if rightPrec < prec {
			right = "(" + right + ")"
		}
		return left + " " + p.paint(RoleOperator, op) + " " + right, prec, nil

	case term.ForAll, term.Exists:
		symbol := "∀"
		if f.Kind == term.Exists {
			symbol = "∃"
		}
		names := make([]string, len(f.Vars))
		for i, idx := range f.Vars {
			entry, err := st.ResolveIndex(symtab.Variable, idx)
			if err != nil {
				return "", prec, err
			}
			names[i] = symtab.Describe(entry)
		}
		body, _, err := p.formula(f.Body, st, prec)
		if err != nil {
			return "", prec, err
		}
		head := p.paint(RoleOperator, symbol) + " " + strings.Join(names, " ") + "."
		return head + " " + body, prec, nil

	default:
		return "", prec, perr.New(perr.NotInCNF, "render", "Formula", "unknown formula kind")
	}
}

func binOpSymbol(k term.FormulaKind) (symbol string, rightAssociativeParenNeeded bool) {
	switch k {
	case term.And:
		return "∧", false
	case term.Or:
		return "∨", false
	case term.Implies:
		// Implication right-associates, so a left child at the same
		// precedence (itself an implication) needs parens to avoid
		// silently reassociating; a right child at the same precedence
		// does not.
		return "→", true
	default:
		return "?", false
	}
}

// Clause renders c as a disjunction of (possibly negated) atoms, or "⊥"
// for the empty clause — the refutation signal of spec.md §4.I.
func (p *Palette) Clause(c *clause.Clause, st *symtab.Table) (string, error) {
	if c.IsEmpty() {
		return "⊥", nil
	}
	parts := make([]string, len(c.Literals))
	for i, lit := range c.Literals {
		s, _, err := p.formula(lit.Atom, st, 0)
		if err != nil {
			return "", err
		}
		if lit.Negated {
			s = p.paint(RoleNegated, "¬") + s
		}
		parts[i] = s
	}
	return strings.Join(parts, " ∨ "), nil
}
