package logging

// Field name constants for structured logging.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"
	FieldSources    = "sources"

	// Output fields.
	FieldFormat = "format"
	FieldColor  = "color"

	// Statistics fields.
	FieldLines       = "lines"
	FieldBytes       = "bytes"
	FieldRules       = "rules"
	FieldDiagnostics = "diagnostics"
	FieldDuration    = "duration"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Rule fields.
	FieldRuleID = "rule_id"
	FieldName   = "name"
	FieldActive = "active"
)
