package lint

// BaseRule provides a default implementation of the Rule metadata methods.
// Embed this in rule implementations and override methods as needed.
//
// Fields are unexported to avoid stutter and name collisions with interface methods.
// Use NewBaseRule to construct one.
type BaseRule struct {
	id   string   // Unique identifier (e.g., "MS001")
	name string   // Human-readable name
	desc string   // Detailed description
	tags []string // Categorization tags
}

// NewBaseRule creates a BaseRule with the given properties.
func NewBaseRule(id, name, desc string, tags []string) BaseRule {
	return BaseRule{
		id:   id,
		name: name,
		desc: desc,
		tags: tags,
	}
}

// ID returns the unique identifier for this rule.
func (r *BaseRule) ID() string {
	return r.id
}

// Name returns the human-readable name of the rule.
func (r *BaseRule) Name() string {
	return r.name
}

// Description returns a detailed description of what the rule checks.
func (r *BaseRule) Description() string {
	return r.desc
}

// Tags returns categorization tags for this rule.
func (r *BaseRule) Tags() []string {
	return r.tags
}

// Active returns true. Override this method for rules that never report.
func (r *BaseRule) Active() bool {
	return true
}

// Check must be overridden by concrete rule implementations.
// The default implementation reports nothing.
func (r *BaseRule) Check(_ *Line) (Diagnostic, bool) {
	return Diagnostic{}, false
}

// NewDiagnostic builds a diagnostic for this rule at the given line.
func (r *BaseRule) NewDiagnostic(line *Line, message string) Diagnostic {
	return Diagnostic{
		RuleID:   r.id,
		RuleName: r.name,
		Line:     line.Number,
		Message:  message,
	}
}
