package workspace

import (
	"flag"
	"fmt"

	"github.com/Fanaperana/ekan/internal/cmd/base"
	"github.com/Fanaperana/ekan/pkg/models"
)

type ListCommand struct {
	*base.Command

	flagConfig string
}

func (c *ListCommand) Synopsis() string {
	return "List all workspaces"
}

func (c *ListCommand) Help() string {
	return `Usage: ekan workspace list

  Lists all workspaces in creation order.` +
		c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("list", flag.ContinueOnError))

	f.StringVar(&c.flagConfig, "config", "", "Path to config file")

	return f
}

func (c *ListCommand) Run(args []string) int {
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

	workspaces, err := models.GetWorkspaces(db)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error listing workspaces: %v", err))
		return 1
	}

	if len(workspaces) == 0 {
		c.UI.Output("No workspaces found.")
		return 0
	}

	for _, ws := range workspaces {
		c.UI.Output(fmt.Sprintf("%d\t%s", ws.ID, ws.Name))
	}
	return 0
}
