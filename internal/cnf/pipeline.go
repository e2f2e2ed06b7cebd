// Package cnf implements the seven-stage normalisation pipeline of
// spec.md 4.D: implication elimination, negation descent, double-negation
// elimination, quantifier freshening, prenex lifting, Skolemisation, and
// distribution, followed by clause extraction.
package cnf

import (
	"github.com/fologic/prover/internal/symtab"
	"github.com/fologic/prover/internal/term"
)

// Pipeline holds the per-session counters needed to keep fresh variable
// and Skolem function identities unique across repeated ToCNF calls
// against the same symbol table.
type Pipeline struct {
	st              *symtab.Table
	freshVarCounter int
	skolemCounter   int
}

// NewPipeline builds a CNF pipeline bound to st. New variable and function
// symbols introduced during normalisation (stages 4 and 6) are interned
// into st.
func NewPipeline(st *symtab.Table) *Pipeline {
	return &Pipeline{st: st}
}

// ToCNF runs all seven stages over f and returns the resulting
// quantifier-free matrix (with outermost universal binders dropped, their
// variables implicitly universal). It is a pure transformation over f: no
// prover saturation state is touched, though new symbols may be interned
// into the pipeline's symbol table.
func (p *Pipeline) ToCNF(f *term.Formula) *term.Formula {
	f = eliminateImplications(f)
	f = toNNF(f)
	f = p.freshen(f)
	f = prenex(f)
	f = p.skolemize(f)
	f = dropLeadingForAlls(f)
	f = distribute(f)
	return f
}
