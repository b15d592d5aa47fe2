package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Path        string           `json:"path"`
	Diagnostics []JSONDiagnostic `json:"diagnostics"`
	Total       int              `json:"total"`
}

// JSONDiagnostic represents a single diagnostic.
type JSONDiagnostic struct {
	Line     int    `json:"line"`
	Message  string `json:"message"`
	RuleID   string `json:"ruleId"`
	RuleName string `json:"ruleName"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Total, nil
}

func buildOutput(result *Result) *JSONOutput {
	output := &JSONOutput{
		Diagnostics: make([]JSONDiagnostic, 0),
	}

	if result == nil {
		return output
	}

	output.Path = result.Path
	if len(result.Diagnostics) > 0 {
		output.Diagnostics = make([]JSONDiagnostic, 0, len(result.Diagnostics))
	}

	for _, diag := range result.Diagnostics {
		output.Diagnostics = append(output.Diagnostics, JSONDiagnostic{
			Line:     diag.Line,
			Message:  diag.Message,
			RuleID:   diag.RuleID,
			RuleName: diag.RuleName,
		})
	}
	output.Total = len(output.Diagnostics)

	return output
}
