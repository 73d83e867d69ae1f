package page

import (
	"flag"
	"fmt"

	"github.com/Fanaperana/ekan/internal/cmd/base"
	"github.com/Fanaperana/ekan/pkg/models"
)

type CreateCommand struct {
	*base.Command

	flagConfig    string
	flagTitle     string
	flagWorkspace uint
}

func (c *CreateCommand) Synopsis() string {
	return "Create a new page at the end of a workspace"
}

func (c *CreateCommand) Help() string {
	return `Usage: ekan page create -workspace=<id> -title=<title>

  Creates a new page appended to the end of the workspace's page sequence.` +
		c.Flags().Help()
}

func (c *CreateCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("create", flag.ContinueOnError))

	f.StringVar(&c.flagConfig, "config", "", "Path to config file")
	f.StringVar(&c.flagTitle, "title", "", "(Required) Page title")
	f.UintVar(&c.flagWorkspace, "workspace", 0, "(Required) Workspace ID")

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

	p := models.Page{
		Title:       c.flagTitle,
		WorkspaceID: c.flagWorkspace,
	}
	if err := p.Create(db); err != nil {
		c.UI.Error(fmt.Sprintf("error creating page: %v", err))
		return 1
	}

	c.UI.Output(fmt.Sprintf("Created page %d at position %d: %s", p.ID, p.Position, p.Title))
	return 0
}
