package cli

import (
	"errors"

	"github.com/yaklabco/mdstylecheck/internal/configloader"
	"github.com/yaklabco/mdstylecheck/pkg/document"
)

// Exit codes for mdstylecheck.
const (
	// ExitSuccess indicates successful execution. Diagnostics alone do not
	// change this unless fail_on_issues is set.
	ExitSuccess = 0

	// ExitIssues indicates diagnostics were found with fail_on_issues set.
	ExitIssues = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file or environment errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates the input file could not be opened, read or decoded.
	ExitIOError = 74
)

// ExitCodeForError maps an error returned by the root command to an exit code.
func ExitCodeForError(err error) int {
	var accessErr *document.FileAccessError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrIssuesFound):
		return ExitIssues
	case errors.Is(err, ErrInvalidUsage):
		return ExitInvalidUsage
	case errors.Is(err, configloader.ErrInvalidConfig):
		return ExitConfigError
	case errors.As(err, &accessErr):
		return ExitIOError
	default:
		return ExitInternalError
	}
}
