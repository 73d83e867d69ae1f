// Package workspace implements the `ekan workspace` command group.
package workspace

import (
	"github.com/mitchellh/cli"

	"github.com/Fanaperana/ekan/internal/cmd/base"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Manage workspaces"
}

func (c *Command) Help() string {
	return `Usage: ekan workspace <subcommand> [options]

  This command groups subcommands for managing workspaces.`
}

func (c *Command) Run(args []string) int {
	return cli.RunResultHelp
}
