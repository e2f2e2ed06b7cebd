package render

import (
	"github.com/fologic/prover/internal/clause"
	"github.com/fologic/prover/internal/symtab"
	"github.com/fologic/prover/internal/term"
)

// plain is the package-level no-colour palette backing the free
// functions below, for callers that don't need an explicit Palette
// (spec.md §6's renderTerm/renderFormula/renderClause).
var plain = NewPlainPalette()

// RenderTerm renders t with no colour.
func RenderTerm(t *term.Term, st *symtab.Table) (string, error) {
	return plain.Term(t, st)
}

// RenderFormula renders f with no colour.
func RenderFormula(f *term.Formula, st *symtab.Table) (string, error) {
	return plain.Formula(f, st)
}

// RenderClause renders c with no colour.
func RenderClause(c *clause.Clause, st *symtab.Table) (string, error) {
	return plain.Clause(c, st)
}
