package rules

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdstylecheck/pkg/lint"
)

func checkLines(lines ...string) []lint.Diagnostic {
	registry := lint.NewRegistry()
	RegisterAll(registry)
	return lint.NewChecker(registry).Check(lines)
}

func formatted(diags []lint.Diagnostic) []string {
	out := make([]string, 0, len(diags))
	for _, d := range diags {
		out = append(out, d.String())
	}
	return out
}

func TestChecker_Scenarios(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name:  "ordered marker with two spaces",
			lines: []string{"1.  Item\n"},
			want:  []string{"Line 1: Ordered list marker has 2 spaces (expected 1)"},
		},
		{
			name:  "trailing double space on list item",
			lines: []string{"- Item  \n"},
			want:  []string{"Line 1: Trailing whitespace"},
		},
		{
			name:  "unordered marker with two spaces",
			lines: []string{"-  Item\n"},
			want:  []string{"Line 1: Unordered list marker has 2 spaces (expected 1)"},
		},
		{
			name:  "header after text is not reported",
			lines: []string{"text\n", "# Heading\n"},
			want:  []string{},
		},
		{
			name:  "correct ordered list",
			lines: []string{"1. A\n", "2. B\n"},
			want:  []string{},
		},
		{
			name:  "empty document",
			lines: nil,
			want:  []string{},
		},
		{
			name:  "several violations on one line keep pass order",
			lines: []string{"1.  Item  \n"},
			want: []string{
				"Line 1: Trailing whitespace",
				"Line 1: Ordered list marker has 2 spaces (expected 1)",
			},
		},
		{
			name:  "bare marker with trailing space",
			lines: []string{"- \n"},
			want: []string{
				"Line 1: Trailing whitespace",
				"Line 1: Unordered list marker has 2 spaces (expected 1)",
			},
		},
		{
			name: "mixed document",
			lines: []string{
				"# Title\n",
				"Intro \n",
				"\n",
				"-  one\n",
				"- two\n",
				"1.   three\n",
				"last line\t",
			},
			want: []string{
				"Line 2: Trailing whitespace",
				"Line 4: Unordered list marker has 2 spaces (expected 1)",
				"Line 6: Ordered list marker has 3 spaces (expected 1)",
				"Line 7: Trailing whitespace",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatted(checkLines(tt.lines...)))
		})
	}
}

func TestChecker_Idempotent(t *testing.T) {
	lines := []string{"1.  a \n", "-   b\n", "text\n", "# h\n", "  \n"}

	first := checkLines(lines...)
	second := checkLines(lines...)

	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestChecker_OrderPreserved(t *testing.T) {
	lines := []string{"-  a \n", "ok\n", "3.  c \n", "\t\n", "-    d\n"}
	diags := checkLines(lines...)

	passOrder := map[string]int{"MS001": 0, "MS002": 1, "MS003": 2}

	for idx := 1; idx < len(diags); idx++ {
		prev, cur := diags[idx-1], diags[idx]
		require.LessOrEqual(t, prev.Line, cur.Line)
		if prev.Line == cur.Line {
			assert.Less(t, passOrder[prev.RuleID], passOrder[cur.RuleID])
		}
	}
}

func TestRegisterAll_PassOrder(t *testing.T) {
	registry := lint.NewRegistry()
	RegisterAll(registry)

	ids := make([]string, 0, registry.Len())
	for _, rule := range registry.Rules() {
		ids = append(ids, rule.ID())
	}

	assert.Equal(t, []string{"MS001", "MS002", "MS003", "MS004"}, ids)
}

func TestDefaultRegistry_HasBuiltinRules(t *testing.T) {
	for _, key := range []string{"MS001", "ol-marker-space", "ul-marker-space", "header-blank-line"} {
		_, ok := lint.DefaultRegistry.Get(key)
		assert.True(t, ok, "rule %q not registered", key)
	}
}

func BenchmarkChecker(b *testing.B) {
	lines := make([]string, 0, 1000)
	for i := range 250 {
		lines = append(lines, "# Section\n", "- item \n", fmt.Sprintf("%d.  entry\n", i), "plain text\n")
	}

	registry := lint.NewRegistry()
	RegisterAll(registry)
	checker := lint.NewChecker(registry)

	b.ReportAllocs()
	for b.Loop() {
		_ = checker.Check(lines)
	}
}
