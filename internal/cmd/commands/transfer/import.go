package transfer

import (
	"flag"
	"fmt"

	"github.com/spf13/afero"

	"github.com/Fanaperana/ekan/internal/cmd/base"
	"github.com/Fanaperana/ekan/pkg/workspace"
)

type ImportCommand struct {
	*base.Command

	flagConfig string
	flagFile   string
}

func (c *ImportCommand) Synopsis() string {
	return "Import a workspace from a portable JSON document"
}

func (c *ImportCommand) Help() string {
	return `Usage: ekan import -file=<file>

  Imports a workspace export file as a new workspace. All identifiers are
  newly assigned; the import either succeeds completely or not at all.` +
		c.Flags().Help()
}

func (c *ImportCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("import", flag.ContinueOnError))

	f.StringVar(&c.flagConfig, "config", "", "Path to config file")
	f.StringVar(&c.flagFile, "file", "", "(Required) Export file to import")

	return f
}

func (c *ImportCommand) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if c.flagFile == "" {
		c.UI.Error("file flag is required")
		return 1
	}

	doc, err := workspace.ReadFile(afero.NewOsFs(), c.flagFile)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error reading export file: %v", err))
		return 1
	}

	db, _, err := c.Database(c.flagConfig)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error initializing database: %v", err))
		return 1
	}

	id, err := workspace.ImportWorkspace(db, doc)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error importing workspace: %v", err))
		return 1
	}

	c.UI.Output(fmt.Sprintf("Imported workspace %q as workspace %d (%d pages)",
		doc.Workspace.Name, id, len(doc.Pages)))
	return 0
}
