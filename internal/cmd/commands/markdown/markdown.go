// Package markdown implements the `ekan markdown` command group.
package markdown

import (
	"github.com/mitchellh/cli"

	"github.com/Fanaperana/ekan/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage markdown entries within a page"
}

func (c *Command) Help() string {
	return `Usage: ekan markdown <subcommand> [options]

  This command groups subcommands for managing markdown entries.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
