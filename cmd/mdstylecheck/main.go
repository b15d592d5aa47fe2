// Package main is the entry point for the mdstylecheck CLI.
package main

import (
	"context"
	"errors"
	"os"

	"github.com/yaklabco/mdstylecheck/internal/cli"
	"github.com/yaklabco/mdstylecheck/internal/logging"

	// Import rules package to register built-in rules via init().
	_ "github.com/yaklabco/mdstylecheck/pkg/lint/rules"
)

// Build-time variables set via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	logger := logging.Default()
	ctx := logging.WithLogger(context.Background(), logger)

	rootCmd := cli.NewRootCommand(info)

	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, cli.ErrIssuesFound) {
		// ErrIssuesFound only selects the exit code.
		logger.Error("command failed", logging.FieldError, err)
	}

	return cli.ExitCodeForError(err)
}
