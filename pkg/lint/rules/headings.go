package rules

import (
	"strings"

	"github.com/yaklabco/mdstylecheck/pkg/lint"
)

// dividerLine is a thematic break accepted in place of a blank line before a header.
const dividerLine = "---"

// HeaderBlankLineRule describes the "blank line before a header" check.
//
// The rule is inert: it evaluates its condition on every header line but
// never reports. It stays registered so that it shows up in rule listings.
type HeaderBlankLineRule struct {
	lint.BaseRule
}

// NewHeaderBlankLineRule creates a new header blank line rule.
func NewHeaderBlankLineRule() *HeaderBlankLineRule {
	return &HeaderBlankLineRule{
		BaseRule: lint.NewBaseRule(
			"MS004",
			"header-blank-line",
			"Headers should be preceded by a blank line or a --- divider (inert)",
			[]string{"headings", "blank_lines"},
		),
	}
}

// Active returns false: the rule never emits diagnostics.
func (r *HeaderBlankLineRule) Active() bool {
	return false
}

// Check never reports.
func (r *HeaderBlankLineRule) Check(line *lint.Line) (lint.Diagnostic, bool) {
	if !missingBlankBefore(line) {
		return lint.Diagnostic{}, false
	}

	// TODO: decide whether headers without a preceding blank line should be
	// reported; until then this branch stays silent.
	return lint.Diagnostic{}, false
}

// missingBlankBefore reports whether line is a header whose previous line is
// neither blank nor a divider. The first line is never missing one.
func missingBlankBefore(line *lint.Line) bool {
	if !strings.HasPrefix(line.Text, "#") || line.IsFirst() {
		return false
	}

	prev, _ := line.Previous()
	if lint.IsBlank(prev) {
		return false
	}

	return strings.TrimFunc(prev, lint.IsSpace) != dividerLine
}
