package clauseset

import (
	"github.com/fologic/prover/internal/clause"
	"github.com/fologic/prover/internal/term"
)

// complexity computes the heuristic weight of spec.md 4.H: atomCount*10 +
// avgDepth*10 + totalTermSize*5, lower is better. avgDepth and
// totalTermSize range over every argument term of every literal; depth of
// a leaf (Var/Const) is 1, and size is the node count.
func complexity(c *clause.Clause) float64 {
	atomCount := len(c.Literals)
	totalDepth := 0
	totalSize := 0
	termCount := 0

	for _, lit := range c.Literals {
		for _, arg := range lit.Atom.Args {
			totalDepth += termDepth(arg)
			totalSize += termSize(arg)
			termCount++
		}
	}

	avgDepth := 0.0
	if termCount > 0 {
		avgDepth = float64(totalDepth) / float64(termCount)
	}

	return float64(atomCount)*10 + avgDepth*10 + float64(totalSize)*5
}

func termDepth(t *term.Term) int {
	if t.Kind != term.FunApp || len(t.Args) == 0 {
		return 1
	}
	max := 0
	for _, a := range t.Args {
		if d := termDepth(a); d > max {
			max = d
		}
	}
	return 1 + max
}

func termSize(t *term.Term) int {
	size := 1
	for _, a := range t.Args {
		size += termSize(a)
	}
	return size
}
