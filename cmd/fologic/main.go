// Command fologic is the CLI of spec.md §6: subcommands parse, cnf,
// prove, and help, dispatched through a hashicorp/cli cli.CLI over a
// Commands map of cli.CommandFactory, following the library's documented
// public API (hashicorp-nomad's command/agent/command_test.go is the only
// reference to the library's call shape in the retrieved pack).
package main

import (
	"os"

	"github.com/hashicorp/cli"

	"github.com/fologic/prover/cmd/fologic/command"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ui := &cli.BasicUi{
		Writer:      os.Stdout,
		ErrorWriter: os.Stderr,
		Reader:      os.Stdin,
	}

	c := cli.NewCLI("fologic", "0.1.0")
	c.Args = args
	c.Commands = map[string]cli.CommandFactory{
		"parse": func() (cli.Command, error) {
			return &command.ParseCommand{Ui: ui}, nil
		},
		"cnf": func() (cli.Command, error) {
			return &command.CNFCommand{Ui: ui}, nil
		},
		"prove": func() (cli.Command, error) {
			return &command.ProveCommand{Ui: ui}, nil
		},
		"help": func() (cli.Command, error) {
			return &command.HelpCommand{Ui: ui}, nil
		},
	}

	status, err := c.Run()
	if err != nil {
		ui.Error(err.Error())
		return 1
	}
	return status
}
