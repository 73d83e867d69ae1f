package page

import (
	"flag"
	"fmt"

	"github.com/Fanaperana/ekan/internal/cmd/base"
	"github.com/Fanaperana/ekan/pkg/models"
)

type ListCommand struct {
	*base.Command

	flagConfig    string
	flagWorkspace uint
}

func (c *ListCommand) Synopsis() string {
	return "List the pages of a workspace in order"
}

func (c *ListCommand) Help() string {
	return `Usage: ekan page list -workspace=<id>

  Lists the pages of a workspace in position order.` +
		c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("list", flag.ContinueOnError))

	f.StringVar(&c.flagConfig, "config", "", "Path to config file")
	f.UintVar(&c.flagWorkspace, "workspace", 0, "(Required) Workspace ID")

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

	pages, err := models.GetPagesForWorkspace(db, c.flagWorkspace)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error listing pages: %v", err))
		return 1
	}

	if len(pages) == 0 {
		c.UI.Output("No pages found.")
		return 0
	}

	for _, p := range pages {
		c.UI.Output(fmt.Sprintf("%d\t%d\t%s", p.ID, p.Position, p.Title))
	}
	return 0
}
