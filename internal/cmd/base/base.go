// Package base holds state shared by all CLI commands: the logger, the UI,
// and access to the configured database connection.
package base

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"gorm.io/gorm"

	"github.com/Fanaperana/ekan/internal/config"
	"github.com/Fanaperana/ekan/pkg/database"
)

// Command is embedded by every CLI command.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui
}

// Database loads configuration from the optional config file path and
// returns the process-wide database connection.
func (c *Command) Database(configPath string) (*gorm.DB, *config.Config, error) {
	cfg, err := config.NewConfig(configPath)
	if err != nil {
		return nil, nil, err
	}

	if cfg.LogLevel != "" {
		c.Log.SetLevel(hclog.LevelFromString(cfg.LogLevel))
	}

	db, err := database.Default(database.Config{Path: cfg.DatabasePath}, c.Log)
	if err != nil {
		return nil, nil, err
	}

	return db, cfg, nil
}

// FlagSet wraps flag.FlagSet so commands can render their options into help
// text.
type FlagSet struct {
	*flag.FlagSet
}

// NewFlagSet wraps the given flag set.
func NewFlagSet(f *flag.FlagSet) *FlagSet {
	return &FlagSet{FlagSet: f}
}

// Help returns the flag defaults formatted as a help text section.
func (f *FlagSet) Help() string {
	var buf bytes.Buffer
	f.SetOutput(&buf)
	f.PrintDefaults()
	f.SetOutput(os.Stderr)
	if buf.Len() == 0 {
		return ""
	}
	return fmt.Sprintf("\n\nOptions:\n\n%s", buf.String())
}
