package workspace

import (
	"flag"
	"fmt"

	"github.com/Fanaperana/ekan/internal/cmd/base"
	"github.com/Fanaperana/ekan/pkg/models"
)

type CreateCommand struct {
	*base.Command

	flagConfig string
	flagName   string
}

func (c *CreateCommand) Synopsis() string {
	return "Create a new workspace"
}

func (c *CreateCommand) Help() string {
	return `Usage: ekan workspace create -name=<name>

  Creates a new empty workspace.` +
		c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("create", flag.ContinueOnError))

	f.StringVar(&c.flagConfig, "config", "", "Path to config file")
	f.StringVar(&c.flagName, "name", "", "(Required) Workspace name")

	return f
}

func (c *CreateCommand) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	db, _, err := c.Database(c.flagConfig)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error initializing database: %v", err))
		return 1
	}

	ws := models.Workspace{Name: c.flagName}
	if err := ws.Create(db); err != nil {
		c.UI.Error(fmt.Sprintf("error creating workspace: %v", err))
		return 1
	}

	c.UI.Output(fmt.Sprintf("Created workspace %d: %s", ws.ID, ws.Name))
	return 0
}
