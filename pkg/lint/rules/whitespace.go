package rules

import "github.com/yaklabco/mdstylecheck/pkg/lint"

// TrailingWhitespaceRule checks for whitespace immediately before a line ending.
type TrailingWhitespaceRule struct {
	lint.BaseRule
}

// NewTrailingWhitespaceRule creates a new trailing whitespace rule.
func NewTrailingWhitespaceRule() *TrailingWhitespaceRule {
	return &TrailingWhitespaceRule{
		BaseRule: lint.NewBaseRule(
			"MS001",
			"no-trailing-whitespace",
			"Lines should not end with spaces or tabs",
			[]string{"whitespace"},
		),
	}
}

// Check compares the line minus its ending against the line minus all
// trailing whitespace. Any difference is whitespace before the ending.
func (r *TrailingWhitespaceRule) Check(line *lint.Line) (lint.Diagnostic, bool) {
	content := line.Content()
	if content == lint.TrimTrailingSpace(line.Text) {
		return lint.Diagnostic{}, false
	}

	return r.NewDiagnostic(line, "Trailing whitespace"), true
}
