// Package transfer implements the `ekan export` and `ekan import` commands,
// the file-facing side of workspace export/import. The core never touches
// paths; these commands own file selection and the raw byte read/write.
package transfer

import (
	"flag"
	"fmt"

	"github.com/spf13/afero"

	"github.com/Fanaperana/ekan/internal/cmd/base"
	"github.com/Fanaperana/ekan/pkg/workspace"
)

type ExportCommand struct {
	*base.Command

	flagConfig    string
	flagWorkspace uint
	flagOut       string
}

func (c *ExportCommand) Synopsis() string {
	return "Export a workspace to a portable JSON document"
}

func (c *ExportCommand) Help() string {
	return `Usage: ekan export -workspace=<id> [-out=<file>]

  Exports a workspace with all of its pages and markdown entries to a JSON
  file. When -out is omitted a collision-free file name is generated from
  the workspace name.` +
		c.Flags().Help()
}

func (c *ExportCommand) Flags() *base.FlagSet {
	f := base.NewFlagSet(flag.NewFlagSet("export", flag.ContinueOnError))

	f.StringVar(&c.flagConfig, "config", "", "Path to config file")
	f.UintVar(&c.flagWorkspace, "workspace", 0, "(Required) Workspace ID")
	f.StringVar(&c.flagOut, "out", "", "Output file path (default: generated from workspace name)")

	return f
}

func (c *ExportCommand) Run(args []string) int {
	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		c.UI.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}

	if c.flagWorkspace == 0 {
		c.UI.Error("workspace flag is required")
		return 1
	}

	db, _, err := c.Database(c.flagConfig)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error initializing database: %v", err))
		return 1
	}

	doc, err := workspace.ExportWorkspace(db, c.flagWorkspace)
	if err != nil {
		c.UI.Error(fmt.Sprintf("error exporting workspace: %v", err))
		return 1
	}

	out := c.flagOut
	if out == "" {
		out = workspace.ExportFilename(doc.Workspace.Name)
	}

	if err := workspace.WriteFile(afero.NewOsFs(), out, doc); err != nil {
		c.UI.Error(fmt.Sprintf("error writing export: %v", err))
		return 1
	}

	c.UI.Output(fmt.Sprintf("Exported workspace %d (%d pages) to %s",
		doc.Workspace.ID, len(doc.Pages), out))
	return 0
}
