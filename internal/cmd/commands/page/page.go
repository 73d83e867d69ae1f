// Package page implements the `ekan page` command group.
package page

import (
	"github.com/mitchellh/cli"

	"github.com/Fanaperana/ekan/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage pages within a workspace"
}

func (c *Command) Help() string {
	return `Usage: ekan page <subcommand> [options]

  This command groups subcommands for managing pages.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
