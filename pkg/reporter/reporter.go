// Package reporter renders check results as text or JSON.
package reporter

import (
	"context"
	"fmt"

	"github.com/yaklabco/mdstylecheck/pkg/lint"
)

// Result is the outcome of checking one document.
type Result struct {
	// Path is the file that was checked, as given by the user.
	Path string

	// Diagnostics are in line order, then rule pass order.
	Diagnostics []lint.Diagnostic
}

// Reporter formats and writes check results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of issues reported and any write errors.
	Report(ctx context.Context, result *Result) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	if !format.IsValid() {
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	if format == FormatJSON {
		return NewJSONReporter(opts), nil
	}
	return NewTextReporter(opts), nil
}
