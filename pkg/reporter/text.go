package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/mdstylecheck/internal/ui/pretty"
)

// TextReporter writes the plain "Found Errors:" listing, styled when color
// is enabled.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStylesFor(opts.Writer, colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(ctx context.Context, result *Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil || len(result.Diagnostics) == 0 {
		if _, err := fmt.Fprintln(r.bw, r.styles.FormatClean()); err != nil {
			return 0, fmt.Errorf("write report: %w", err)
		}
		return 0, nil
	}

	if _, err := fmt.Fprintln(r.bw, r.styles.FormatHeader()); err != nil {
		return 0, fmt.Errorf("write report: %w", err)
	}

	for i, diag := range result.Diagnostics {
		if err := ctx.Err(); err != nil {
			return i, fmt.Errorf("report cancelled: %w", err)
		}
		if _, err := fmt.Fprintln(r.bw, r.styles.FormatDiagnostic(diag, r.opts.ShowRuleIDs)); err != nil {
			return i, fmt.Errorf("write report: %w", err)
		}
	}

	return len(result.Diagnostics), nil
}
