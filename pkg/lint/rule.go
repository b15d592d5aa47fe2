// Package lint provides the line checker, diagnostics, and rule registry for mdstylecheck.
package lint

import "fmt"

// Diagnostic represents a single style violation found on a line.
type Diagnostic struct {
	// RuleID is the identifier of the rule that produced this diagnostic.
	RuleID string

	// RuleName is the human-readable name of the rule (e.g., "no-trailing-whitespace").
	RuleName string

	// Line is the 1-based line number of the violation.
	Line int

	// Message is the human-readable description of the issue.
	Message string
}

// String formats the diagnostic as "Line N: message".
func (d Diagnostic) String() string {
	return fmt.Sprintf("Line %d: %s", d.Line, d.Message)
}

// Rule defines the interface that all line rules must implement.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "MS001").
	ID() string

	// Name returns the human-readable name of the rule.
	Name() string

	// Description returns a detailed description of what the rule checks.
	Description() string

	// Tags returns categorization tags for this rule (e.g., ["whitespace"]).
	Tags() []string

	// Active reports whether the rule can ever emit a diagnostic.
	// Inert rules still run but never report.
	Active() bool

	// Check inspects a single line and returns at most one diagnostic.
	//
	// Rules must be total: every input, however short or malformed,
	// yields either a diagnostic or false. Check must not retain the line.
	Check(line *Line) (Diagnostic, bool)
}
