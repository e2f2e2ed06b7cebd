package subst_test

import (
	"testing"

	"github.com/fologic/prover/internal/subst"
	"github.com/fologic/prover/internal/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnifyVarWithConst(t *testing.T) {
	x := term.NewVar(0)
	a := term.NewConst(1)

	sigma, ok := subst.Unify([]subst.Pair{{S: x, T: a}})
	require.True(t, ok)
	assert.True(t, term.TermEqual(sigma[0], a))
}

func TestUnifyDecomposesFunApp(t *testing.T) {
	// f(x, b) =?= f(a, b)
	x := term.NewVar(0)
	a := term.NewConst(1)
	b := term.NewConst(2)
	left := term.NewFunApp(9, x, b)
	right := term.NewFunApp(9, a, b)

	sigma, ok := subst.Unify([]subst.Pair{{S: left, T: right}})
	require.True(t, ok)
	assert.True(t, term.TermEqual(sigma[0], a))
}

func TestUnifyFailsOnConflictingConstants(t *testing.T) {
	a := term.NewConst(1)
	b := term.NewConst(2)
	_, ok := subst.Unify([]subst.Pair{{S: a, T: b}})
	assert.False(t, ok)
}

func TestUnifyFailsOnDifferentFunctionSymbols(t *testing.T) {
	left := term.NewFunApp(1, term.NewVar(0))
	right := term.NewFunApp(2, term.NewVar(0))
	_, ok := subst.Unify([]subst.Pair{{S: left, T: right}})
	assert.False(t, ok)
}

func TestUnifyFailsOnArityMismatch(t *testing.T) {
	left := term.NewFunApp(1, term.NewVar(0))
	right := term.NewFunApp(1, term.NewVar(0), term.NewVar(1))
	_, ok := subst.Unify([]subst.Pair{{S: left, T: right}})
	assert.False(t, ok)
}

func TestUnifyOccursCheckFails(t *testing.T) {
	// x =?= f(x)
	x := term.NewVar(0)
	f := term.NewFunApp(1, x)
	_, ok := subst.Unify([]subst.Pair{{S: x, T: f}})
	assert.False(t, ok)
}

func TestUnifySoundness(t *testing.T) {
	// f(x, g(y)) =?= f(a, g(b))
	x, y := term.NewVar(0), term.NewVar(1)
	a, b := term.NewConst(2), term.NewConst(3)
	left := term.NewFunApp(9, x, term.NewFunApp(10, y))
	right := term.NewFunApp(9, a, term.NewFunApp(10, b))

	sigma, ok := subst.Unify([]subst.Pair{{S: left, T: right}})
	require.True(t, ok)

	appliedLeft := subst.ApplyTerm(sigma, left)
	appliedRight := subst.ApplyTerm(sigma, right)
	assert.True(t, term.TermEqual(appliedLeft, appliedRight))
}

func TestUnifyAtomsRejectsDifferentRelations(t *testing.T) {
	a := term.NewAtom(0, term.NewVar(0))
	b := term.NewAtom(1, term.NewVar(0))
	_, ok := subst.UnifyAtoms(a, b)
	assert.False(t, ok)
}

func TestUnifyAtomsUnifiesArgsPairwise(t *testing.T) {
	a := term.NewAtom(0, term.NewVar(0), term.NewConst(5))
	b := term.NewAtom(0, term.NewConst(4), term.NewConst(5))
	sigma, ok := subst.UnifyAtoms(a, b)
	require.True(t, ok)
	assert.True(t, term.TermEqual(sigma[0], term.NewConst(4)))
}

func TestUnifyDeterministic(t *testing.T) {
	x, y := term.NewVar(0), term.NewVar(1)
	pairs := []subst.Pair{
		{S: x, T: term.NewConst(1)},
		{S: y, T: term.NewFunApp(2, x)},
	}
	sigma1, ok1 := subst.Unify(pairs)
	sigma2, ok2 := subst.Unify(pairs)
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, len(sigma1), len(sigma2))
	for k, v := range sigma1 {
		assert.True(t, term.TermEqual(v, sigma2[k]))
	}
}
