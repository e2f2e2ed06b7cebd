package cnf_test

import (
	"testing"

	"github.com/fologic/prover/internal/cnf"
	"github.com/fologic/prover/internal/symtab"
	"github.com/fologic/prover/internal/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTable interns one relation symbol per name (arity given), returning
// a lookup by name.
func buildTable(t *testing.T, relations map[string]int) (*symtab.Table, map[string]*symtab.Entry) {
	st := symtab.New()
	entries := make(map[string]*symtab.Entry)
	for name, arity := range relations {
		e, err := st.Intern(symtab.Relation, name, name, arity)
		require.NoError(t, err)
		entries[name] = e
	}
	return st, entries
}

func TestToCNFSimplePropositional(t *testing.T) {
	// P -> Q  ==  !P | Q
	st, rel := buildTable(t, map[string]int{"P": 0, "Q": 0})
	p := term.NewAtom(rel["P"].Index)
	q := term.NewAtom(rel["Q"].Index)
	f := term.NewImplies(p, q)

	pipeline := cnf.NewPipeline(st)
	matrix := pipeline.ToCNF(f)

	clauses, err := cnf.ExtractClauses(matrix, false)
	require.NoError(t, err)
	require.Len(t, clauses, 1)
	assert.Len(t, clauses[0].Literals, 2)
}

func TestToCNFUniversalInstantiationShape(t *testing.T) {
	// forall x. P(x)  =>  clause { P(x) } with x implicitly universal.
	st := symtab.New()
	pRel, err := st.Intern(symtab.Relation, "P", "P", 1)
	require.NoError(t, err)
	xVar, err := st.Intern(symtab.Variable, "x", "x", 0)
	require.NoError(t, err)

	f := term.NewForAll([]int{xVar.Index}, term.NewAtom(pRel.Index, term.NewVar(xVar.Index)))

	pipeline := cnf.NewPipeline(st)
	matrix := pipeline.ToCNF(f)
	clauses, err := cnf.ExtractClauses(matrix, false)
	require.NoError(t, err)
	require.Len(t, clauses, 1)
	require.Len(t, clauses[0].Literals, 1)
	assert.False(t, clauses[0].Literals[0].Negated)
}

func TestToCNFSkolemizesExistential(t *testing.T) {
	// forall x. exists y. P(x, y) -> P(x, f(U)) with U = {x}.
	st := symtab.New()
	pRel, _ := st.Intern(symtab.Relation, "P", "P", 2)
	xVar, _ := st.Intern(symtab.Variable, "x", "x", 0)
	yVar, _ := st.Intern(symtab.Variable, "y", "y", 0)

	body := term.NewAtom(pRel.Index, term.NewVar(xVar.Index), term.NewVar(yVar.Index))
	f := term.NewForAll([]int{xVar.Index}, term.NewExists([]int{yVar.Index}, body))

	pipeline := cnf.NewPipeline(st)
	matrix := pipeline.ToCNF(f)
	clauses, err := cnf.ExtractClauses(matrix, false)
	require.NoError(t, err)
	require.Len(t, clauses, 1)
	lit := clauses[0].Literals[0]
	require.Len(t, lit.Atom.Args, 2)
	// second argument should now be a Skolem function application over x
	assert.Equal(t, term.FunApp, lit.Atom.Args[1].Kind)
	require.Len(t, lit.Atom.Args[1].Args, 1)
	assert.Equal(t, xVar.Index, lit.Atom.Args[1].Args[0].Index)
}

func TestToCNFDistributesOrOverAnd(t *testing.T) {
	// P | (Q & R)  =>  (P|Q) & (P|R)
	st, rel := buildTable(t, map[string]int{"P": 0, "Q": 0, "R": 0})
	p := term.NewAtom(rel["P"].Index)
	q := term.NewAtom(rel["Q"].Index)
	r := term.NewAtom(rel["R"].Index)
	f := term.NewOr(p, term.NewAnd(q, r))

	pipeline := cnf.NewPipeline(st)
	matrix := pipeline.ToCNF(f)
	clauses, err := cnf.ExtractClauses(matrix, false)
	require.NoError(t, err)
	assert.Len(t, clauses, 2)
	for _, c := range clauses {
		assert.Len(t, c.Literals, 2)
	}
}

func TestExtractClausesDropsTautologies(t *testing.T) {
	st, rel := buildTable(t, map[string]int{"P": 0})
	p := term.NewAtom(rel["P"].Index)
	matrix := term.NewOr(p, term.NewNot(p))

	clauses, err := cnf.ExtractClauses(matrix, false)
	require.NoError(t, err)
	assert.Len(t, clauses, 0)
	_ = st
}

func TestExtractClausesFailsOnDisallowedNode(t *testing.T) {
	st, rel := buildTable(t, map[string]int{"P": 0})
	p := term.NewAtom(rel["P"].Index)
	xVar, _ := st.Intern(symtab.Variable, "x", "x", 0)
	notInCNF := term.NewForAll([]int{xVar.Index}, p) // quantifier still present

	_, err := cnf.ExtractClauses(notInCNF, false)
	require.Error(t, err)
}

func TestContradictoryLiteralsExtractToUnitClauses(t *testing.T) {
	st, rel := buildTable(t, map[string]int{"P": 0})
	p := term.NewAtom(rel["P"].Index)
	pipeline := cnf.NewPipeline(st)

	c1, err := cnf.ExtractClauses(pipeline.ToCNF(p), false)
	require.NoError(t, err)
	c2, err := cnf.ExtractClauses(pipeline.ToCNF(term.NewNot(p)), true)
	require.NoError(t, err)

	require.Len(t, c1, 1)
	require.Len(t, c2, 1)
	assert.Len(t, c1[0].Literals, 1)
	assert.Len(t, c2[0].Literals, 1)
}
