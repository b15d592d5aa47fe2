// Package cli provides the Cobra command structure for mdstylecheck.
package cli

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yaklabco/mdstylecheck/internal/configloader"
	"github.com/yaklabco/mdstylecheck/internal/logging"
)

// ErrInvalidUsage marks argument and flag errors.
var ErrInvalidUsage = errors.New("invalid usage")

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root mdstylecheck command with all subcommands.
// Given a single file argument the root command behaves like "check".
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug, noConfig, noEnv bool
	var configPath string
	var color string
	flags := &checkFlags{}

	rootCmd := &cobra.Command{
		Use:   "mdstylecheck [file]",
		Short: "Check Markdown files for trailing whitespace and list marker spacing",
		Long: `mdstylecheck is a small line-oriented style checker for Markdown.

It reports trailing whitespace and list markers ("1." or "-") that are not
followed by exactly one space. Each line is checked on its own; no Markdown
parsing takes place.

Running "mdstylecheck FILE" is the same as "mdstylecheck check FILE".

` + environmentHelp(),
		Args: exactArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if debug {
				logging.FromContext(cmd.Context()).SetLevel(log.DebugLevel)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0], flags)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")
	rootCmd.PersistentFlags().BoolVar(&noConfig, "no-config", false,
		"skip user and project config files (--config is still read)")
	rootCmd.PersistentFlags().BoolVar(&noEnv, "no-env", false, "ignore MDSTYLECHECK_* environment variables")

	addCheckFlags(rootCmd, flags)

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
	})

	// Add subcommands.
	rootCmd.AddCommand(newCheckCommand())
	rootCmd.AddCommand(newRulesCommand())
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}

// exactArgs is cobra.ExactArgs with errors marked as usage errors.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidUsage, err)
		}
		return nil
	}
}

// environmentHelp lists the supported environment variables for the root
// command's long help.
func environmentHelp() string {
	vars := configloader.ListEnvVars()

	var builder strings.Builder
	builder.WriteString("Environment:")
	for _, name := range slices.Sorted(maps.Keys(vars)) {
		fmt.Fprintf(&builder, "\n  %-28s %s", name, vars[name])
	}
	return builder.String()
}
