// Package cmd implements the transitionctl commands.
//
// The root command loads transit.yaml (or the file named by --config),
// builds the logger, and hands both to subcommands: decide, resist,
// replay, render and, on Linux, input.
package cmd

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/go-drift/transit/pkg/config"
	"github.com/go-drift/transit/pkg/logging"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// app is the state shared by subcommands once the root has run.
type app struct {
	configPath string
	configDir  string
	logLevel   string
	logFormat  string

	cfg    *config.Resolved
	logger *slog.Logger
}

// subcommands register themselves here from init.
var subcommands []func(*app) *cobra.Command

// NewRootCommand builds a fresh command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "transitionctl",
		Short: "Inspect and replay interactive view transitions",
		Long: `transitionctl drives the transition engine outside of a host UI.

It evaluates the commit rule, replays recorded gesture traces against a
presentation coordinator, renders the resulting frames to PNG, and on Linux
feeds a real touch device into a live coordinator.

Settings come from transit.yaml or transit.toml in the working directory,
or from the file named by --config.`,
		Version:       fmt.Sprintf("%s (built %s)", Version, BuildTime),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd.ErrOrStderr())
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "configuration file (yaml or toml)")
	flags.StringVar(&a.configDir, "dir", ".", "directory searched for transit.yaml or transit.toml")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: text or json")

	for _, build := range subcommands {
		root.AddCommand(build(a))
	}
	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	root := NewRootCommand()
	err := root.Execute()
	if err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
	}
	return err
}

func (a *app) load(stderr io.Writer) error {
	var (
		f   *config.File
		err error
	)
	if a.configPath != "" {
		f, err = config.Load(a.configPath)
	} else {
		f, err = config.LoadOptional(a.configDir)
	}
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		f.Logging.Level = a.logLevel
	}
	if a.logFormat != "" {
		f.Logging.Format = a.logFormat
	}
	a.cfg, err = f.Resolve()
	if err != nil {
		return err
	}
	level := &slog.LevelVar{}
	level.Set(a.cfg.Level)
	a.logger = logging.New(logging.Options{
		Writer: stderr,
		Format: a.cfg.Format,
		Level:  level,
	})
	return nil
}
