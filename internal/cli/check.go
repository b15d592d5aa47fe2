package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdstylecheck/internal/configloader"
	"github.com/yaklabco/mdstylecheck/internal/logging"
	"github.com/yaklabco/mdstylecheck/pkg/config"
	"github.com/yaklabco/mdstylecheck/pkg/document"
	"github.com/yaklabco/mdstylecheck/pkg/lint"
	_ "github.com/yaklabco/mdstylecheck/pkg/lint/rules" // Register built-in rules
	"github.com/yaklabco/mdstylecheck/pkg/reporter"
)

// ErrIssuesFound is returned when diagnostics were reported and
// fail_on_issues is set. It only selects the exit code.
var ErrIssuesFound = errors.New("style issues found")

type checkFlags struct {
	format       string
	failOnIssues bool
	showRuleIDs  bool
	compact      bool
}

func newCheckCommand() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Check a Markdown file",
		Long:  checkLongDescription,
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0], flags)
		},
	}

	addCheckFlags(cmd, flags)

	return cmd
}

const checkLongDescription = `Check a single Markdown file line by line.

Reports trailing whitespace, ordered list markers ("1.") and unordered list
markers ("-") that are not followed by exactly one space.

Output lists each finding as "Line N: message" under a "Found Errors:"
header, or "No obvious errors found." when the file is clean. Findings do
not change the exit code unless --fail-on-issues is given.

Examples:
  mdstylecheck check README.md                  # Check one file
  mdstylecheck README.md                        # Same as above
  mdstylecheck check README.md --format json    # Output as JSON for CI
  mdstylecheck check README.md --fail-on-issues # Exit 1 when issues are found`

func addCheckFlags(cmd *cobra.Command, flags *checkFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().BoolVar(&flags.failOnIssues, "fail-on-issues", false, "exit with code 1 when issues are found")
	cmd.Flags().BoolVar(&flags.showRuleIDs, "show-rule-ids", false, "append rule IDs to text output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact JSON output")
}

// cliConfig builds a config holding only the flags the user set explicitly.
func cliConfig(cmd *cobra.Command, flags *checkFlags) (*config.Config, error) {
	cfg := &config.Config{}

	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	if cmd.Flags().Changed("fail-on-issues") {
		failOnIssues := flags.failOnIssues
		cfg.FailOnIssues = &failOnIssues
	}
	if cmd.Flags().Changed("color") {
		colorMode, err := cmd.Flags().GetString("color")
		if err != nil {
			return nil, fmt.Errorf("get color flag: %w", err)
		}
		cfg.Color = config.ColorMode(colorMode)
	}

	return cfg, nil
}

func runCheck(cmd *cobra.Command, path string, flags *checkFlags) error {
	start := time.Now()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	cliCfg, err := cliConfig(cmd, flags)
	if err != nil {
		return err
	}

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return fmt.Errorf("get config flag: %w", err)
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	noConfig, err := cmd.Flags().GetBool("no-config")
	if err != nil {
		return fmt.Errorf("get no-config flag: %w", err)
	}
	noEnv, err := cmd.Flags().GetBool("no-env")
	if err != nil {
		return fmt.Errorf("get no-env flag: %w", err)
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:          workDir,
		ExplicitPath:        configPath,
		IgnoreUserConfig:    noConfig,
		IgnoreProjectConfig: noConfig,
		IgnoreEnv:           noEnv,
		CLIConfig:           cliCfg,
	})
	if err != nil {
		return errors.Join(errors.New("failed to load configuration"), err)
	}

	cfg := loadResult.Config

	debug, err := cmd.Flags().GetBool("debug")
	if err != nil {
		return fmt.Errorf("get debug flag: %w", err)
	}
	if !debug {
		logger.SetLevel(logging.ParseLevel(cfg.LogLevel))
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldSources, loadResult.LoadedFrom)
	}
	logger.Debug("configuration loaded",
		logging.FieldFormat, cfg.Format,
		logging.FieldColor, cfg.Color,
		logging.FieldWorkingDir, workDir,
	)

	doc, err := document.Load(ctx, path)
	if err != nil {
		return err
	}

	logger.Debug("document loaded",
		logging.FieldPath, path,
		logging.FieldLines, doc.LineCount(),
		logging.FieldBytes, doc.Info.Size,
	)

	checker := lint.NewChecker(lint.DefaultRegistry)
	diagnostics, err := checker.CheckContext(ctx, doc.Lines)
	if err != nil {
		return fmt.Errorf("check %s: %w", path, err)
	}

	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       string(cfg.Color),
		ShowRuleIDs: flags.showRuleIDs,
		Compact:     flags.compact,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	count, err := rep.Report(ctx, &reporter.Result{Path: path, Diagnostics: diagnostics})
	if err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	logger.Debug("check complete",
		logging.FieldPath, path,
		logging.FieldRules, lint.DefaultRegistry.Len(),
		logging.FieldDiagnostics, count,
		logging.FieldDuration, time.Since(start),
	)

	if count > 0 && cfg.ShouldFailOnIssues() {
		return ErrIssuesFound
	}

	return nil
}
