package page

import (
	"errors"
	"flag"
	"fmt"

	"github.com/Fanaperana/ekan/internal/cmd/base"
	"github.com/Fanaperana/ekan/pkg/models"
)

// Direction selects which sibling NavCommand resolves.
type Direction int

const (
	DirectionNext Direction = iota
	DirectionPrevious
)

func (d Direction) String() string {
	if d == DirectionPrevious {
		return "previous"
	}
	return "next"
}

// NavCommand implements both `page next` and `page previous`.
type NavCommand struct {
	*base.Command

	Direction Direction

	flagConfig string
	flagID     uint
}

func (c *NavCommand) Synopsis() string {
	return fmt.Sprintf("Show the %s page in the workspace's order", c.Direction)
}

func (c *NavCommand) Help() string {
	return fmt.Sprintf(`Usage: ekan page %s -id=<id>

  Resolves the sibling page immediately %s the given page in its workspace's
  position order. Prints nothing but a notice when the page is at the
  boundary of the sequence.`, c.Direction, beforeAfter(c.Direction)) +
		c.Flags().Help()
}

func beforeAfter(d Direction) string {
	if d == DirectionPrevious {
		return "before"
	}
	return "after"
}

func (c *NavCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet(c.Direction.String(), flag.ContinueOnError))

	f.StringVar(&c.flagConfig, "config", "", "Path to config file")
	f.UintVar(&c.flagID, "id", 0, "(Required) Page ID to navigate from")

	return f
}

func (c *NavCommand) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if c.flagID == 0 {
		c.UI.Error("id flag is required")
		return 1
	}

	db, _, err := c.Database(c.flagConfig)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error initializing database: %v", err))
		return 1
	}

	navigate := models.NextPage
	if c.Direction == DirectionPrevious {
		navigate = models.PreviousPage
	}

	sibling, err := navigate(db, c.flagID)
	if err != nil {
		// A missing page reads the same as "no sibling" for the user.
		if errors.Is(err, models.ErrNotFound) {
			c.UI.Output(fmt.Sprintf("No %s page.", c.Direction))
			return 0
		}
		c.UI.Error(fmt.Sprintf("error navigating: %v", err))
		return 1
	}

	if sibling == nil {
		c.UI.Output(fmt.Sprintf("No %s page.", c.Direction))
		return 0
	}

	c.UI.Output(fmt.Sprintf("%d\t%d\t%s", sibling.ID, sibling.Position, sibling.Title))
	return 0
}
