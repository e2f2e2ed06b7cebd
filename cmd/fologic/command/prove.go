package command

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/cli"

	"github.com/fologic/prover/internal/prover"
	"github.com/fologic/prover/internal/symtab"
	"github.com/fologic/prover/internal/syntax"
	"github.com/fologic/prover/internal/term"
)

// ProveCommand runs the given-clause saturation loop over a theory file
// (one axiom per line, blank lines and lines starting with "#" ignored)
// against a single goal formula, reporting ProveDetailed's Reason and
// iteration count (SPEC_FULL §C.3).
type ProveCommand struct {
	Ui cli.Ui
}

var _ cli.Command = &ProveCommand{}

func (c *ProveCommand) Help() string {
	return "Usage: fologic prove <theory-file> <goal>\n\n" +
		"  Proves <goal> from the axioms in <theory-file> (one formula per\n" +
		"  line; blank lines and lines starting with # are ignored)."
}

func (c *ProveCommand) Synopsis() string {
	return "Prove a goal from a theory file"
}

func (c *ProveCommand) Run(args []string) int {
	if len(args) != 2 {
		c.Ui.Error("prove requires a theory file and a goal formula")
		return 1
	}

	st := symtab.New()
	theory, err := readTheory(args[0], st)
	if err != nil {
		c.Ui.Error(fmt.Sprintf("theory error: %s", err))
		return 1
	}

	goal, err := syntax.Parse(args[1], st)
	if err != nil {
		c.Ui.Error(fmt.Sprintf("goal parse error: %s", err))
		return 1
	}

	result := prover.ProveDetailed(theory, goal, st)
	c.Ui.Output(fmt.Sprintf("%t (%s, %d iterations)", result.Proved, result.Reason, result.Iterations))
	if result.Proved {
		return 0
	}
	return 1
}

func readTheory(path string, st *symtab.Table) ([]*term.Formula, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var theory []*term.Formula
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		f, err := syntax.Parse(line, st)
		if err != nil {
			return nil, err
		}
		theory = append(theory, f)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return theory, nil
}
