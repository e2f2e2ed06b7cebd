package command

import (
	"fmt"

	"github.com/hashicorp/cli"

	"github.com/fologic/prover/internal/cnf"
	"github.com/fologic/prover/internal/render"
	"github.com/fologic/prover/internal/symtab"
	"github.com/fologic/prover/internal/syntax"
)

// CNFCommand parses its formula argument, runs it through the CNF
// normalisation pipeline, and prints one rendered clause per line.
type CNFCommand struct {
	Ui cli.Ui
}

var _ cli.Command = &CNFCommand{}

func (c *CNFCommand) Help() string {
	return "Usage: fologic cnf <formula>\n\n  Normalises a formula to CNF and prints one clause per line."
}

func (c *CNFCommand) Synopsis() string {
	return "Normalise a formula to CNF"
}

func (c *CNFCommand) Run(args []string) int {
	if len(args) != 1 {
		c.Ui.Error("cnf requires exactly one formula argument")
		return 1
	}

	st := symtab.New()
	f, err := syntax.Parse(args[0], st)
	if err != nil {
		c.Ui.Error(fmt.Sprintf("parse error: %s", err))
		return 1
	}

	pipeline := cnf.NewPipeline(st)
	matrix := pipeline.ToCNF(f)
	clauses, err := cnf.ExtractClauses(matrix, false)
	if err != nil {
		c.Ui.Error(fmt.Sprintf("cnf error: %s", err))
		return 1
	}

	for _, cl := range clauses {
		rendered, err := render.RenderClause(cl, st)
		if err != nil {
			c.Ui.Error(fmt.Sprintf("render error: %s", err))
			return 1
		}
		c.Ui.Output(rendered)
	}
	return 0
}
