package inference_test

import (
	"testing"

	"github.com/fologic/prover/internal/clause"
	"github.com/fologic/prover/internal/inference"
	"github.com/fologic/prover/internal/term"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lit(rel int, negated bool, args ...*term.Term) clause.Literal {
	return clause.Literal{Atom: term.NewAtom(rel, args...), Negated: negated}
}

// P(x) | Q(x)   and   !P(a) | R(a)  ->  resolve on P(x)/!P(a) with x := a,
// giving Q(a) | R(a).
func TestResolutionsAndApply(t *testing.T) {
	const ( //nolint relation indices used as test fixtures
		P = iota
		Q
		R
	)
	x := term.NewVar(0)
	a := term.NewConst(0)

	c1 := clause.New(false, lit(P, false, x), lit(Q, false, x))
	c2 := clause.New(false, lit(P, true, a), lit(R, false, a))

	resolutions := inference.Resolutions(c1, c2)
	require.Len(t, resolutions, 1)

	resolvent := inference.ApplyResolution(resolutions[0])
	require.Len(t, resolvent.Literals, 2)
	for _, l := range resolvent.Literals {
		assert.False(t, l.Negated)
		assert.Contains(t, []int{Q, R}, l.Atom.RelIndex)
		require.Len(t, l.Atom.Args, 1)
		assert.Equal(t, term.Const, l.Atom.Args[0].Kind)
		assert.Equal(t, a.Index, l.Atom.Args[0].Index)
	}
}

func TestResolutionsSkipsSamePolarityAndDifferentRelation(t *testing.T) {
	x := term.NewVar(0)
	c1 := clause.New(false, lit(0, false, x))
	c2 := clause.New(false, lit(0, false, x)) // same polarity: no resolution
	assert.Empty(t, inference.Resolutions(c1, c2))

	c3 := clause.New(false, lit(1, true, x)) // different relation: no resolution
	assert.Empty(t, inference.Resolutions(c1, c3))
}

func TestResolutionsSkipsNonUnifiableAtoms(t *testing.T) {
	a := term.NewConst(0)
	b := term.NewConst(1)
	c1 := clause.New(false, lit(0, false, a))
	c2 := clause.New(false, lit(0, true, b))
	assert.Empty(t, inference.Resolutions(c1, c2))
}

func TestResolventSOSIsDisjunctionOfParents(t *testing.T) {
	a := term.NewConst(0)
	c1 := clause.New(true, lit(0, false, a))
	c2 := clause.New(false, lit(0, true, a))
	resolutions := inference.Resolutions(c1, c2)
	require.Len(t, resolutions, 1)
	resolvent := inference.ApplyResolution(resolutions[0])
	assert.True(t, resolvent.SOS)
}

// P(x) | P(y) factors (the unifier binds x to y) into P(y).
func TestFactorsAndApply(t *testing.T) {
	x := term.NewVar(0)
	y := term.NewVar(1)
	c := clause.New(false, lit(0, false, x), lit(0, false, y))

	factors := inference.Factors(c)
	require.Len(t, factors, 1)

	result := inference.ApplyFactor(factors[0])
	require.Len(t, result.Literals, 1)
	assert.False(t, result.Literals[0].Negated)
}

func TestFactorsSkipsDifferentPolarity(t *testing.T) {
	x := term.NewVar(0)
	y := term.NewVar(1)
	c := clause.New(false, lit(0, false, x), lit(0, true, y))
	assert.Empty(t, inference.Factors(c))
}

func TestFactorsSkipsNonUnifiable(t *testing.T) {
	a := term.NewConst(0)
	b := term.NewConst(1)
	c := clause.New(false, lit(0, false, a), lit(0, false, b))
	assert.Empty(t, inference.Factors(c))
}
