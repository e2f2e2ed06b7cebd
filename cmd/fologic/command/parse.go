// Package command implements the fologic CLI's subcommands as
// hashicorp/cli Commands, following the command shape seen in
// hashicorp-nomad's command/agent/command_test.go: a struct embedding a
// cli.Ui, Help/Synopsis/Run methods, `var _ cli.Command = &Command{}`.
package command

import (
	"fmt"

	"github.com/hashicorp/cli"

	"github.com/fologic/prover/internal/render"
	"github.com/fologic/prover/internal/symtab"
	"github.com/fologic/prover/internal/syntax"
)

// ParseCommand parses its single formula argument and prints its
// rendered form, exercising internal/syntax and internal/render without
// running the prover.
type ParseCommand struct {
	Ui cli.Ui
}

var _ cli.Command = &ParseCommand{}

func (c *ParseCommand) Help() string {
	return "Usage: fologic parse <formula>\n\n  Parses a formula in the concrete syntax and prints its rendered form."
}

func (c *ParseCommand) Synopsis() string {
	return "Parse a formula and print its rendered form"
}

func (c *ParseCommand) Run(args []string) int {
	if len(args) != 1 {
		c.Ui.Error("parse requires exactly one formula argument")
		return 1
	}

	st := symtab.New()
	f, err := syntax.Parse(args[0], st)
	if err != nil {
		c.Ui.Error(fmt.Sprintf("parse error: %s", err))
		return 1
	}

	rendered, err := render.RenderFormula(f, st)
	if err != nil {
		c.Ui.Error(fmt.Sprintf("render error: %s", err))
		return 1
	}

	c.Ui.Output(rendered)
	return 0
}
