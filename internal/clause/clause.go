// Package clause implements the literal and clause model of spec.md 3/4.E:
// a disjunction of signed atoms with a set-of-support flag, duplicate
// literal removal, and the tautology test. Field names mirror the
// teacher's sat.Literal/sat.Clause (xDarkicex-logic/sat/types.go),
// generalized from boolean variables to first-order atoms.
package clause

import (
	"strings"

	"github.com/fologic/prover/internal/term"
)

// Literal pairs an atom with a polarity.
type Literal struct {
	Atom    *term.Formula // Kind == term.Atom
	Negated bool
}

// Negate returns the negation of l.
func (l Literal) Negate() Literal {
	return Literal{Atom: l.Atom, Negated: !l.Negated}
}

// AtomsEqual is structural equality between two atom formulas.
func AtomsEqual(a, b *term.Formula) bool {
	return term.Equal(a, b)
}

// TermsEqual is structural equality between two terms.
func TermsEqual(a, b *term.Term) bool {
	return term.TermEqual(a, b)
}

// LiteralsEqual reports whether two literals have the same atom and
// polarity.
func LiteralsEqual(a, b Literal) bool {
	return a.Negated == b.Negated && AtomsEqual(a.Atom, b.Atom)
}

// Clause is an ordered disjunction of literals, plus a set-of-support flag.
type Clause struct {
	Literals []Literal
	SOS      bool
}

// New builds a clause from the given literals, deduplicating and checking
// for tautology is the caller's responsibility (spec.md 3: these
// invariants hold only after insertion into the saturation set).
func New(sos bool, literals ...Literal) *Clause {
	return &Clause{Literals: literals, SOS: sos}
}

// IsEmpty reports whether c has no literals (the refutation signal).
func (c *Clause) IsEmpty() bool {
	return len(c.Literals) == 0
}

// RemoveDuplicates does an O(n^2) scan preserving the first occurrence of
// each distinct literal (same atom and same polarity); an atom that appears
// with both polarities keeps one literal of each.
func RemoveDuplicates(literals []Literal) []Literal {
	out := make([]Literal, 0, len(literals))
	for _, lit := range literals {
		dup := false
		for _, seen := range out {
			if LiteralsEqual(lit, seen) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, lit)
		}
	}
	return out
}

// IsTautology detects a pair (i, j) with structurally equal atoms and
// opposite polarity.
func IsTautology(literals []Literal) bool {
	for i := range literals {
		for j := i + 1; j < len(literals); j++ {
			if literals[i].Negated != literals[j].Negated && AtomsEqual(literals[i].Atom, literals[j].Atom) {
				return true
			}
		}
	}
	return false
}

// String renders a human-readable (ASCII, symbol-index-based) form of the
// clause, useful for debug logging before a symbol table is available for
// full rendering (see internal/render for the name-aware renderer).
func (c *Clause) String() string {
	if len(c.Literals) == 0 {
		return "[]" // empty clause
	}
	parts := make([]string, len(c.Literals))
	for i, lit := range c.Literals {
		sign := ""
		if lit.Negated {
			sign = "!"
		}
		parts[i] = sign + "R" + itoa(lit.Atom.RelIndex)
	}
	return strings.Join(parts, " | ")
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
