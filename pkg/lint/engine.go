package lint

import (
	"context"
	"fmt"
)

// Checker runs every registered rule over each line of a document.
type Checker struct {
	// Registry holds the rules, in pass order.
	Registry *Registry
}

// NewChecker creates a Checker backed by the given registry.
func NewChecker(registry *Registry) *Checker {
	return &Checker{
		Registry: registry,
	}
}

// Check applies all rules to lines and returns the diagnostics in detection
// order: by line, then by rule pass order within a line.
// Check never fails and returns nil when nothing is found.
func (c *Checker) Check(lines []string) []Diagnostic {
	diags, _ := c.CheckContext(context.Background(), lines)
	return diags
}

// CheckContext is Check with cancellation. The context is polled between
// lines; on cancellation the diagnostics gathered so far are returned along
// with the context error.
func (c *Checker) CheckContext(ctx context.Context, lines []string) ([]Diagnostic, error) {
	rules := c.Registry.Rules()

	var diags []Diagnostic

	for idx := range lines {
		select {
		case <-ctx.Done():
			return diags, fmt.Errorf("check cancelled at line %d: %w", idx+1, ctx.Err())
		default:
		}

		line := NewLine(lines, idx)
		for _, rule := range rules {
			if diag, ok := rule.Check(line); ok {
				diags = append(diags, diag)
			}
		}
	}

	return diags, nil
}
