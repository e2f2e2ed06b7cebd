package term_test

import (
	"testing"

	"github.com/fologic/prover/internal/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTermEqual(t *testing.T) {
	a := term.NewFunApp(0, term.NewVar(1), term.NewConst(2))
	b := term.NewFunApp(0, term.NewVar(1), term.NewConst(2))
	c := term.NewFunApp(0, term.NewVar(1), term.NewConst(3))

	assert.True(t, term.TermEqual(a, b))
	assert.False(t, term.TermEqual(a, c))
	assert.False(t, term.TermEqual(a, nil))
}

func TestFormulaEqual(t *testing.T) {
	f1 := term.NewAtom(0, term.NewVar(1))
	f2 := term.NewAtom(0, term.NewVar(1))
	f3 := term.NewAtom(1, term.NewVar(1))

	assert.True(t, term.Equal(f1, f2))
	assert.False(t, term.Equal(f1, f3))

	q1 := term.NewForAll([]int{1}, f1)
	q2 := term.NewForAll([]int{1}, f2)
	q3 := term.NewForAll([]int{2}, f2)
	assert.True(t, term.Equal(q1, q2))
	assert.False(t, term.Equal(q1, q3))
}

func TestFreeVars(t *testing.T) {
	// P(x) & exists y. Q(x, y)
	px := term.NewAtom(0, term.NewVar(1))
	qxy := term.NewAtom(1, term.NewVar(1), term.NewVar(2))
	exists := term.NewExists([]int{2}, qxy)
	f := term.NewAnd(px, exists)

	fv := term.FreeVars(f)
	require.Len(t, fv, 2)
	assert.Contains(t, fv, 1)
	assert.NotContains(t, fv, 2)
}

func TestFreeVarsAllowsDuplicates(t *testing.T) {
	f := term.NewAnd(
		term.NewAtom(0, term.NewVar(1)),
		term.NewAtom(0, term.NewVar(1)),
	)
	fv := term.FreeVars(f)
	assert.Equal(t, []int{1, 1}, fv)
}

func TestVisit(t *testing.T) {
	f := term.NewAnd(term.NewAtom(0, term.NewVar(1)), term.NewAtom(1, term.NewVar(2)))
	count := 0
	term.Visit(f, func(*term.Formula) { count++ })
	assert.Equal(t, 3, count) // And, Atom, Atom
}
