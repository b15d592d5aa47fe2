package pretty

import (
	"fmt"

	"github.com/yaklabco/mdstylecheck/pkg/lint"
)

// Fixed report phrases. Text output must match these byte for byte.
const (
	FoundErrorsHeader = "Found Errors:"
	NoErrorsMessage   = "No obvious errors found."
)

// FormatHeader returns the styled header printed before diagnostics.
func (s *Styles) FormatHeader() string {
	return s.Header.Render(FoundErrorsHeader)
}

// FormatClean returns the styled message printed when nothing was found.
func (s *Styles) FormatClean() string {
	return s.Success.Render(NoErrorsMessage)
}

// FormatDiagnostic formats a single diagnostic as "Line N: message".
// With showRuleID the rule identifier is appended in parentheses.
func (s *Styles) FormatDiagnostic(diag lint.Diagnostic, showRuleID bool) string {
	line := s.Location.Render(fmt.Sprintf("Line %d:", diag.Line)) + " " + s.Message.Render(diag.Message)
	if showRuleID && diag.RuleID != "" {
		line += " " + s.RuleID.Render("("+diag.RuleID+")")
	}
	return line
}
