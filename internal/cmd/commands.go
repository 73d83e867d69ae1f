package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"

	"github.com/Fanaperana/ekan/internal/cmd/base"
	markdowncmd "github.com/Fanaperana/ekan/internal/cmd/commands/markdown"
	pagecmd "github.com/Fanaperana/ekan/internal/cmd/commands/page"
	"github.com/Fanaperana/ekan/internal/cmd/commands/transfer"
	versioncmd "github.com/Fanaperana/ekan/internal/cmd/commands/version"
	workspacecmd "github.com/Fanaperana/ekan/internal/cmd/commands/workspace"
)

// Commands is the map of all registered CLI commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	baseCommand := &base.Command{
		Log: log,
		UI:  ui,
	}

	Commands = map[string]cli.CommandFactory{
		"workspace": func() (cli.Command, error) {
			return &workspacecmd.Command{Command: baseCommand}, nil
		},
		"workspace create": func() (cli.Command, error) {
			return &workspacecmd.CreateCommand{Command: baseCommand}, nil
		},
		"workspace list": func() (cli.Command, error) {
			return &workspacecmd.ListCommand{Command: baseCommand}, nil
		},
		"workspace delete": func() (cli.Command, error) {
			return &workspacecmd.DeleteCommand{Command: baseCommand}, nil
		},
		"page": func() (cli.Command, error) {
			return &pagecmd.Command{Command: baseCommand}, nil
		},
		"page create": func() (cli.Command, error) {
			return &pagecmd.CreateCommand{Command: baseCommand}, nil
		},
		"page list": func() (cli.Command, error) {
			return &pagecmd.ListCommand{Command: baseCommand}, nil
		},
		"page delete": func() (cli.Command, error) {
			return &pagecmd.DeleteCommand{Command: baseCommand}, nil
		},
		"page next": func() (cli.Command, error) {
			return &pagecmd.NavCommand{Command: baseCommand, Direction: pagecmd.DirectionNext}, nil
		},
		"page previous": func() (cli.Command, error) {
			return &pagecmd.NavCommand{Command: baseCommand, Direction: pagecmd.DirectionPrevious}, nil
		},
		"markdown": func() (cli.Command, error) {
			return &markdowncmd.Command{Command: baseCommand}, nil
		},
		"markdown add": func() (cli.Command, error) {
			return &markdowncmd.AddCommand{Command: baseCommand}, nil
		},
		"markdown list": func() (cli.Command, error) {
			return &markdowncmd.ListCommand{Command: baseCommand}, nil
		},
		"export": func() (cli.Command, error) {
			return &transfer.ExportCommand{Command: baseCommand}, nil
		},
		"import": func() (cli.Command, error) {
			return &transfer.ImportCommand{Command: baseCommand}, nil
		},
		"version": func() (cli.Command, error) {
			return &versioncmd.Command{Command: baseCommand}, nil
		},
	}
}
