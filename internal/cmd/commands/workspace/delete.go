package workspace

import (
	"flag"
	"fmt"
	"strings"

	"github.com/Fanaperana/ekan/internal/cmd/base"
	"github.com/Fanaperana/ekan/pkg/models"
)

type DeleteCommand struct {
	*base.Command

	flagConfig string
	flagID     uint
	flagForce  bool
}

func (c *DeleteCommand) Synopsis() string {
	return "Delete a workspace and all its contents"
}

func (c *DeleteCommand) Help() string {
	return `Usage: ekan workspace delete -id=<id>

  Deletes a workspace together with all of its pages and markdown entries.
  Asks for confirmation unless -force is given.` +
		c.Flags().Help()
}

func (c *DeleteCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("delete", flag.ContinueOnError))

	f.StringVar(&c.flagConfig, "config", "", "Path to config file")
	f.UintVar(&c.flagID, "id", 0, "(Required) Workspace ID")
	f.BoolVar(&c.flagForce, "force", false, "Skip the confirmation prompt")

	return f
}

func (c *DeleteCommand) Run(args []string) int {
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

	var ws models.Workspace
	if err := ws.Get(db, c.flagID); err != nil {
		c.UI.Error(fmt.Sprintf("error looking up workspace: %v", err))
		return 1
	}

	if !c.flagForce {
		answer, err := c.UI.Ask(fmt.Sprintf(
			"Delete workspace %q and all its pages? Only 'yes' will be accepted:", ws.Name))
		if err != nil {
			c.UI.Error(fmt.Sprintf("error reading answer: %v", err))
			return 1
		}
		if strings.ToLower(strings.TrimSpace(answer)) != "yes" {
			c.UI.Output("Aborted.")
			return 0
		}
	}

	if err := ws.Delete(db); err != nil {
		c.UI.Error(fmt.Sprintf("error deleting workspace: %v", err))
		return 1
	}

	c.UI.Output(fmt.Sprintf("Deleted workspace %d: %s", ws.ID, ws.Name))
	return 0
}
