package rules

import "github.com/yaklabco/mdstylecheck/pkg/lint"

// RegisterAll registers all built-in rules with the given registry.
// Registration order is pass order.
func RegisterAll(registry *lint.Registry) {
	registry.Register(NewTrailingWhitespaceRule())       // MS001
	registry.Register(NewOrderedListMarkerSpaceRule())   // MS002
	registry.Register(NewUnorderedListMarkerSpaceRule()) // MS003
	registry.Register(NewHeaderBlankLineRule())          // MS004
}

func init() {
	RegisterAll(lint.DefaultRegistry)
}
