package markdown

import (
	"flag"
	"fmt"

	"github.com/Fanaperana/ekan/internal/cmd/base"
	"github.com/Fanaperana/ekan/pkg/models"
)

type AddCommand struct {
	*base.Command

	flagConfig  string
	flagContent string
	flagPage    uint
}

func (c *AddCommand) Synopsis() string {
	return "Append a markdown entry to a page"
}

func (c *AddCommand) Help() string {
	return `Usage: ekan markdown add -page=<id> -content=<markdown>

  Appends a markdown entry to the end of the page's sequence.` +
		c.Flags().Help()
}

func (c *AddCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("add", flag.ContinueOnError))

	f.StringVar(&c.flagConfig, "config", "", "Path to config file")
	f.StringVar(&c.flagContent, "content", "", "(Required) Markdown content")
	f.UintVar(&c.flagPage, "page", 0, "(Required) Page ID")

	return f
}

func (c *AddCommand) Run(args []string) int {
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

	m := models.Markdown{
		Content: c.flagContent,
		PageID:  c.flagPage,
	}
	if err := m.Create(db); err != nil {
		c.UI.Error(fmt.Sprintf("error adding markdown: %v", err))
		return 1
	}

	c.UI.Output(fmt.Sprintf("Added markdown %d at position %d", m.ID, m.Position))
	return 0
}
