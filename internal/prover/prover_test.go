package prover_test

import (
	"testing"

	"github.com/fologic/prover/internal/prover"
	"github.com/fologic/prover/internal/symtab"
	"github.com/fologic/prover/internal/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func relation(t *testing.T, st *symtab.Table, name string, arity int) int {
	e, err := st.Intern(symtab.Relation, name, name, arity)
	require.NoError(t, err)
	return e.Index
}

func variable(t *testing.T, st *symtab.Table, name string) int {
	e, err := st.Intern(symtab.Variable, name, name, 0)
	require.NoError(t, err)
	return e.Index
}

func constant(t *testing.T, st *symtab.Table, name string) int {
	e, err := st.Intern(symtab.Constant, name, name, 0)
	require.NoError(t, err)
	return e.Index
}

// 1. Reflexivity of ->: proves([], "P -> P") -> true.
func TestProvesReflexivityOfImplication(t *testing.T) {
	st := symtab.New()
	p := relation(t, st, "P", 0)
	goal := term.NewImplies(term.NewAtom(p), term.NewAtom(p))
	assert.True(t, prover.Proves(nil, goal, st))
}

// 2. Contrapositive: proves([], "(P -> Q) -> (!Q -> !P)") -> true.
func TestProvesContrapositive(t *testing.T) {
	st := symtab.New()
	p := relation(t, st, "P", 0)
	q := relation(t, st, "Q", 0)
	goal := term.NewImplies(
		term.NewImplies(term.NewAtom(p), term.NewAtom(q)),
		term.NewImplies(term.NewNot(term.NewAtom(q)), term.NewNot(term.NewAtom(p))),
	)
	assert.True(t, prover.Proves(nil, goal, st))
}

// 3. Modus ponens: proves(["P", "P -> Q"], "Q") -> true.
func TestProvesModusPonens(t *testing.T) {
	st := symtab.New()
	p := relation(t, st, "P", 0)
	q := relation(t, st, "Q", 0)
	theory := []*term.Formula{
		term.NewAtom(p),
		term.NewImplies(term.NewAtom(p), term.NewAtom(q)),
	}
	goal := term.NewAtom(q)
	assert.True(t, prover.Proves(theory, goal, st))
}

// 4. Universal instantiation: proves(["forall x. P(x)"], "P(a)") -> true.
func TestProvesUniversalInstantiation(t *testing.T) {
	st := symtab.New()
	p := relation(t, st, "P", 1)
	x := variable(t, st, "x")
	a := constant(t, st, "a")

	theory := []*term.Formula{
		term.NewForAll([]int{x}, term.NewAtom(p, term.NewVar(x))),
	}
	goal := term.NewAtom(p, term.NewConst(a))
	assert.True(t, prover.Proves(theory, goal, st))
}

// 5. Non-theorem under budget: proves(["P"], "Q", {maxActiveClauses:30}) -> false.
func TestProvesNonTheoremUnderBudget(t *testing.T) {
	st := symtab.New()
	p := relation(t, st, "P", 0)
	q := relation(t, st, "Q", 0)
	theory := []*term.Formula{term.NewAtom(p)}
	goal := term.NewAtom(q)
	assert.False(t, prover.Proves(theory, goal, st, prover.WithMaxActiveClauses(30)))
}

// 6. Factoring required:
// proves(["P(x) | P(y)"], "!(!P(a) | !P(b))", {maxActiveClauses:30}) -> true.
func TestProvesFactoringRequired(t *testing.T) {
	st := symtab.New()
	p := relation(t, st, "P", 1)
	x := variable(t, st, "x")
	y := variable(t, st, "y")
	a := constant(t, st, "a")
	b := constant(t, st, "b")

	theory := []*term.Formula{
		term.NewOr(term.NewAtom(p, term.NewVar(x)), term.NewAtom(p, term.NewVar(y))),
	}
	goal := term.NewNot(term.NewOr(
		term.NewNot(term.NewAtom(p, term.NewConst(a))),
		term.NewNot(term.NewAtom(p, term.NewConst(b))),
	))
	assert.True(t, prover.Proves(theory, goal, st, prover.WithMaxActiveClauses(30)))
}

// 7. Contradictory theory: proves(["P(a)", "!P(a)"], "Q(b)") -> true.
func TestProvesContradictoryTheory(t *testing.T) {
	st := symtab.New()
	p := relation(t, st, "P", 1)
	q := relation(t, st, "Q", 1)
	a := constant(t, st, "a")
	b := constant(t, st, "b")

	theory := []*term.Formula{
		term.NewAtom(p, term.NewConst(a)),
		term.NewNot(term.NewAtom(p, term.NewConst(a))),
	}
	goal := term.NewAtom(q, term.NewConst(b))
	assert.True(t, prover.Proves(theory, goal, st))
}

// ProveDetailed reports the refutation reason and a non-zero iteration
// count on a successful proof, and records a trace when requested.
func TestProveDetailedReportsReasonAndTrace(t *testing.T) {
	st := symtab.New()
	p := relation(t, st, "P", 0)
	q := relation(t, st, "Q", 0)
	theory := []*term.Formula{
		term.NewAtom(p),
		term.NewImplies(term.NewAtom(p), term.NewAtom(q)),
	}
	goal := term.NewAtom(q)

	result := prover.ProveDetailed(theory, goal, st, prover.WithTrace())
	require.True(t, result.Proved)
	assert.Equal(t, prover.ReasonRefutation, result.Reason)
	assert.Positive(t, result.Iterations)
	assert.NotEmpty(t, result.Trace)
}

// ProveDetailed reports ReasonBudgetExhausted, not ReasonSaturated, when
// the active-clause budget is the actual reason the loop stopped.
func TestProveDetailedReportsBudgetExhausted(t *testing.T) {
	st := symtab.New()
	p := relation(t, st, "P", 0)
	q := relation(t, st, "Q", 0)
	theory := []*term.Formula{term.NewAtom(p)}
	goal := term.NewAtom(q)

	result := prover.ProveDetailed(theory, goal, st, prover.WithMaxActiveClauses(1))
	assert.False(t, result.Proved)
	assert.Equal(t, prover.ReasonBudgetExhausted, result.Reason)
}
