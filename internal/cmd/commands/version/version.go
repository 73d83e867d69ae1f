// Package version implements the `ekan version` command.
package version

import (
	"github.com/Fanaperana/ekan/internal/cmd/base"
	"github.com/Fanaperana/ekan/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the ekan version"
}

func (c *Command) Help() string {
	return `Usage: ekan version

  Prints the ekan version.`
}

func (c *Command) Run(args []string) int {
	c.UI.Output("ekan " + version.Version)
	return 0
}
