package reporter_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdstylecheck/pkg/lint"
	"github.com/yaklabco/mdstylecheck/pkg/reporter"
)

func sampleResult() *reporter.Result {
	return &reporter.Result{
		Path: "README.md",
		Diagnostics: []lint.Diagnostic{
			{RuleID: "MS001", RuleName: "no-trailing-whitespace", Line: 1, Message: "Trailing whitespace"},
			{RuleID: "MS002", RuleName: "ol-marker-space", Line: 1, Message: "Ordered list marker has 2 spaces (expected 1)"},
			{RuleID: "MS003", RuleName: "ul-marker-space", Line: 4, Message: "Unordered list marker has 3 spaces (expected 1)"},
		},
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    reporter.Format
		wantErr bool
	}{
		{name: "empty defaults to text", input: "", want: reporter.FormatText},
		{name: "text", input: "text", want: reporter.FormatText},
		{name: "json", input: "json", want: reporter.FormatJSON},
		{name: "unknown format", input: "xml", wantErr: true},
		{name: "sarif is not supported", input: "sarif", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := reporter.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat_IsValid(t *testing.T) {
	t.Parallel()

	assert.True(t, reporter.FormatText.IsValid())
	assert.True(t, reporter.FormatJSON.IsValid())
	assert.False(t, reporter.Format("unknown").IsValid())
	assert.False(t, reporter.Format("").IsValid())
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		format  reporter.Format
		wantErr bool
	}{
		{name: "text reporter", format: reporter.FormatText},
		{name: "json reporter", format: reporter.FormatJSON},
		{name: "empty defaults to text", format: ""},
		{name: "unknown format", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rep, err := reporter.New(reporter.Options{Writer: &bytes.Buffer{}, Format: tt.format})
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, rep)
		})
	}
}

func TestTextReporter_WithDiagnostics(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "never"})

	count, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	want := "Found Errors:\n" +
		"Line 1: Trailing whitespace\n" +
		"Line 1: Ordered list marker has 2 spaces (expected 1)\n" +
		"Line 4: Unordered list marker has 3 spaces (expected 1)\n"
	assert.Equal(t, want, buf.String())
}

func TestTextReporter_Clean(t *testing.T) {
	t.Parallel()

	for _, result := range []*reporter.Result{nil, {Path: "clean.md"}} {
		var buf bytes.Buffer
		rep := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "never"})

		count, err := rep.Report(context.Background(), result)
		require.NoError(t, err)
		assert.Zero(t, count)
		assert.Equal(t, "No obvious errors found.\n", buf.String())
	}
}

func TestTextReporter_AutoColorOnBufferIsPlain(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "auto"})

	_, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestTextReporter_AlwaysColor(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "always"})

	_, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "Trailing whitespace")
}

func TestTextReporter_ShowRuleIDs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "never", ShowRuleIDs: true})

	_, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Line 4: Unordered list marker has 3 spaces (expected 1) (MS003)\n")
}

func TestTextReporter_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	rep := reporter.NewTextReporter(reporter.Options{Writer: &buf, Color: "never"})

	_, err := rep.Report(ctx, sampleResult())
	require.ErrorIs(t, err, context.Canceled)
}

func TestJSONReporter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf})

	count, err := rep.Report(context.Background(), sampleResult())
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	var output reporter.JSONOutput
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))

	assert.Equal(t, "README.md", output.Path)
	assert.Equal(t, 3, output.Total)
	require.Len(t, output.Diagnostics, 3)
	assert.Equal(t, reporter.JSONDiagnostic{
		Line:     4,
		Message:  "Unordered list marker has 3 spaces (expected 1)",
		RuleID:   "MS003",
		RuleName: "ul-marker-space",
	}, output.Diagnostics[2])
}

func TestJSONReporter_EmptyDiagnosticsIsArray(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf, Compact: true})

	_, err := rep.Report(context.Background(), &reporter.Result{Path: "clean.md"})
	require.NoError(t, err)
	assert.Equal(t, `{"path":"clean.md","diagnostics":[],"total":0}`+"\n", buf.String())
}

func TestJSONReporter_Indented(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	rep := reporter.NewJSONReporter(reporter.Options{Writer: &buf})

	_, err := rep.Report(context.Background(), &reporter.Result{Path: "clean.md"})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(buf.String(), "{\n  \"path\": \"clean.md\""), buf.String())
}

type failingWriter struct{}

var errWrite = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestReporters_PropagateWriteErrors(t *testing.T) {
	t.Parallel()

	for _, format := range []reporter.Format{reporter.FormatText, reporter.FormatJSON} {
		rep, err := reporter.New(reporter.Options{Writer: failingWriter{}, Format: format, Color: "never"})
		require.NoError(t, err)

		_, err = rep.Report(context.Background(), sampleResult())
		require.ErrorIs(t, err, errWrite, "format %s", format)
	}
}
