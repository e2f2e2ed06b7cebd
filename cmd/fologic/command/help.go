package command

import (
	"os"

	"github.com/hashicorp/cli"
)

// HelpCommand prints subcommand usage, or, given "examples", the worked
// example theory index (SPEC_FULL §C.4).
type HelpCommand struct {
	Ui cli.Ui
}

var _ cli.Command = &HelpCommand{}

const usage = `Usage: fologic <command> [args]

Commands:
    parse <formula>               parse a formula and print its rendered form
    cnf <formula>                  normalise a formula to CNF
    prove <theory-file> <goal>     prove a goal from a theory file
    help [examples]                this message, or the worked example index
`

func (c *HelpCommand) Help() string {
	return usage
}

func (c *HelpCommand) Synopsis() string {
	return "Show usage or the worked example index"
}

func (c *HelpCommand) Run(args []string) int {
	if len(args) == 1 && args[0] == "examples" {
		data, err := os.ReadFile("examples/INDEX.md")
		if err != nil {
			c.Ui.Error("could not read examples/INDEX.md: " + err.Error())
			return 1
		}
		c.Ui.Output(string(data))
		return 0
	}
	c.Ui.Output(usage)
	return 0
}
