package command_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fologic/prover/cmd/fologic/command"
)

func TestParseCommandSuccess(t *testing.T) {
	ui := cli.NewMockUi()
	c := &command.ParseCommand{Ui: ui}
	code := c.Run([]string{"P(a) & Q(a)"})
	assert.Equal(t, 0, code)
	assert.Contains(t, ui.OutputWriter.String(), "∧")
}

func TestParseCommandBadArgCount(t *testing.T) {
	ui := cli.NewMockUi()
	c := &command.ParseCommand{Ui: ui}
	code := c.Run([]string{})
	assert.Equal(t, 1, code)
}

func TestParseCommandSyntaxError(t *testing.T) {
	ui := cli.NewMockUi()
	c := &command.ParseCommand{Ui: ui}
	code := c.Run([]string{"P(a"})
	assert.Equal(t, 1, code)
	assert.NotEmpty(t, ui.ErrorWriter.String())
}

func TestCNFCommandSuccess(t *testing.T) {
	ui := cli.NewMockUi()
	c := &command.CNFCommand{Ui: ui}
	code := c.Run([]string{"P(a) -> Q(a)"})
	assert.Equal(t, 0, code)
	assert.Contains(t, ui.OutputWriter.String(), "∨")
}

func TestProveCommandModusPonens(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theory.txt")
	require.NoError(t, os.WriteFile(path, []byte("P\nP -> Q\n"), 0o644))

	ui := cli.NewMockUi()
	c := &command.ProveCommand{Ui: ui}
	code := c.Run([]string{path, "Q"})
	assert.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(ui.OutputWriter.String(), "true"))
}

func TestProveCommandNonTheorem(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "theory.txt")
	require.NoError(t, os.WriteFile(path, []byte("P\n"), 0o644))

	ui := cli.NewMockUi()
	c := &command.ProveCommand{Ui: ui}
	code := c.Run([]string{path, "Q"})
	assert.Equal(t, 1, code)
	assert.True(t, strings.HasPrefix(ui.OutputWriter.String(), "false"))
}

func TestHelpCommandDefault(t *testing.T) {
	ui := cli.NewMockUi()
	c := &command.HelpCommand{Ui: ui}
	code := c.Run(nil)
	assert.Equal(t, 0, code)
	assert.Contains(t, ui.OutputWriter.String(), "Usage:")
}
