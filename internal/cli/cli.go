// Package cli implements the judgefmt command-line interface.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/judgefmt/pkg/bracket"
	"github.com/matzehuels/judgefmt/pkg/buildinfo"
	"github.com/matzehuels/judgefmt/pkg/errors"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "judgefmt"

	// configFile is the config file name inside the config directory.
	configFile = "config.toml"
)

// UsageLine is printed after argument errors.
const UsageLine = "usage: judgefmt --name name -l0 p1 ... pk ... -ln p1 ... pk"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Out    io.Writer // diagram output
}

// New creates a new CLI instance writing diagrams to out and logs to logw.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		Out:    out,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// The root command itself draws a diagram.
func (c *CLI) RootCommand() *cobra.Command {
	opts := drawOpts{
		gap:    bracket.DefaultGapFactor,
		format: formatText,
	}

	root := &cobra.Command{
		Use:   "judgefmt --name NAME -l0 LABEL... [-lN LABEL...]",
		Short: "judgefmt renders labeled bracket diagrams",
		Long: `judgefmt draws a named root joined by bracket lines to one or more levels
of labels. Every level is centered and evenly spaced within one shared width.

Levels are given as -l<index> followed by the labels of that level, or read
from a TOML, YAML or JSON file with --file.`,
		Example: `  judgefmt --name J -l0 root -l1 a bb
  judgefmt --name Cup --gap 2 -l0 final -l1 semi-a semi-b
  judgefmt --file cup.toml --format json`,
		Version:       buildinfo.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDraw(cmd, args, &opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid flag")
	})

	f := root.Flags()
	f.StringVarP(&opts.name, "name", "n", "", "root name printed on the middle row")
	f.StringVarP(&opts.file, "file", "f", "", "read levels from a .toml, .yaml or .json diagram file")
	f.IntVar(&opts.gap, "gap", opts.gap, "minimum spaces between labels on the same level")
	f.StringVar(&opts.format, "format", opts.format, "output format: text (default), json")
	f.BoolVar(&opts.color, "color", false, "style the root name and bracket lines on terminals")
	f.BoolVar(&opts.allowEmpty, "allow-empty", false, "accept levels without labels")
	f.StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/judgefmt/config.toml)")

	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Paths
// =============================================================================

// configDir returns the config directory using XDG standard (~/.config/judgefmt/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}
