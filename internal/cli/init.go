package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/mdstylecheck/internal/logging"
	"github.com/yaklabco/mdstylecheck/pkg/config"
)

// configFilePermissions is the file mode for configuration files (world-readable).
const configFilePermissions = 0o644

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	format string
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default mdstylecheck configuration file",
		Long: `Create a .mdstylecheck.yml file in the current directory holding the
default output settings. The file is found automatically by later runs from
this directory or any directory below it.

Examples:
  mdstylecheck init                     Create .mdstylecheck.yml
  mdstylecheck init --format toml       Create .mdstylecheck.toml instead
  mdstylecheck init --output custom.yml Write to a custom file path`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite existing configuration file")
	cmd.Flags().StringVar(&flags.format, "format", "yaml", "file format: yaml or toml")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "",
		"output file path (default: .mdstylecheck.yml or .mdstylecheck.toml)")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	logger := logging.NewInteractive(cmd.ErrOrStderr())

	outputPath := flags.output
	var content []byte
	var err error

	defaults := config.NewConfig()
	switch config.FileFormat(flags.format) {
	case config.FileFormatYAML:
		if outputPath == "" {
			outputPath = ".mdstylecheck.yml"
		}
		content, err = defaults.ToYAML()
	case config.FileFormatTOML:
		if outputPath == "" {
			outputPath = ".mdstylecheck.toml"
		}
		content, err = defaults.ToTOML()
	default:
		return fmt.Errorf("%w: invalid format %q: must be yaml or toml", ErrInvalidUsage, flags.format)
	}
	if err != nil {
		return fmt.Errorf("generate config: %w", err)
	}

	absPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if _, err := os.Stat(absPath); err == nil {
		if !flags.force {
			return fmt.Errorf("%w: file %q already exists; use --force to overwrite", ErrInvalidUsage, outputPath)
		}
		logger.Warn("overwriting existing file", logging.FieldPath, outputPath)
	}

	if err := os.WriteFile(absPath, content, configFilePermissions); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	logger.Info("created configuration file", logging.FieldPath, outputPath)
	logger.Info("run 'mdstylecheck rules' to see the rules it applies to")

	return nil
}
