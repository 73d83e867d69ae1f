package markdown

import (
	"flag"
	"fmt"

	"github.com/Fanaperana/ekan/internal/cmd/base"
	"github.com/Fanaperana/ekan/pkg/models"
)

type ListCommand struct {
	*base.Command

	flagConfig string
	flagPage   uint
}

func (c *ListCommand) Synopsis() string {
	return "List the markdown entries of a page in order"
}

func (c *ListCommand) Help() string {
	return `Usage: ekan markdown list -page=<id>

  Lists the markdown entries of a page in position order.` +
		c.Flags().Help()
}

func (c *ListCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("list", flag.ContinueOnError))

	f.StringVar(&c.flagConfig, "config", "", "Path to config file")
	f.UintVar(&c.flagPage, "page", 0, "(Required) Page ID")

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

	markdowns, err := models.GetMarkdownsForPage(db, c.flagPage)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error listing markdowns: %v", err))
		return 1
	}

	if len(markdowns) == 0 {
		c.UI.Output("No markdown entries found.")
		return 0
	}

	for _, m := range markdowns {
		c.UI.Output(fmt.Sprintf("--- %d (position %d)", m.ID, m.Position))
		c.UI.Output(m.Content)
	}
	return 0
}
