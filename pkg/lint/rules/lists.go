package rules

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/yaklabco/mdstylecheck/pkg/lint"
)

// expectedMarkerSpaces is the number of whitespace characters allowed
// between a list marker and the item content.
const expectedMarkerSpaces = 1

// orderedMarkerPattern matches "1." style markers and captures the spaces after.
var orderedMarkerPattern = regexp.MustCompile(
	`^` + lint.SpaceClass + `*\p{Nd}+\.(` + lint.SpaceClass + `+)`,
)

// unorderedMarkerPattern matches "-" markers and captures the spaces after.
var unorderedMarkerPattern = regexp.MustCompile(
	`^` + lint.SpaceClass + `*-(` + lint.SpaceClass + `+)`,
)

// markerSpaces returns the length in runes of the whitespace run captured
// after a list marker. The second result is false when the line has no marker.
func markerSpaces(pattern *regexp.Regexp, text string) (int, bool) {
	match := pattern.FindStringSubmatch(text)
	if match == nil {
		return 0, false
	}
	return utf8.RuneCountInString(match[1]), true
}

// OrderedListMarkerSpaceRule checks the spacing after ordered list markers.
type OrderedListMarkerSpaceRule struct {
	lint.BaseRule
}

// NewOrderedListMarkerSpaceRule creates a new ordered list marker spacing rule.
func NewOrderedListMarkerSpaceRule() *OrderedListMarkerSpaceRule {
	return &OrderedListMarkerSpaceRule{
		BaseRule: lint.NewBaseRule(
			"MS002",
			"ol-marker-space",
			"Ordered list markers should be followed by exactly one space",
			[]string{"ol", "whitespace"},
		),
	}
}

// Check reports a marker followed by any run other than a single space.
// The run includes the line ending when the marker ends the line.
func (r *OrderedListMarkerSpaceRule) Check(line *lint.Line) (lint.Diagnostic, bool) {
	spaces, ok := markerSpaces(orderedMarkerPattern, line.Text)
	if !ok || spaces == expectedMarkerSpaces {
		return lint.Diagnostic{}, false
	}

	msg := fmt.Sprintf("Ordered list marker has %d spaces (expected %d)", spaces, expectedMarkerSpaces)
	return r.NewDiagnostic(line, msg), true
}

// UnorderedListMarkerSpaceRule checks the spacing after "-" list markers.
type UnorderedListMarkerSpaceRule struct {
	lint.BaseRule
}

// NewUnorderedListMarkerSpaceRule creates a new unordered list marker spacing rule.
func NewUnorderedListMarkerSpaceRule() *UnorderedListMarkerSpaceRule {
	return &UnorderedListMarkerSpaceRule{
		BaseRule: lint.NewBaseRule(
			"MS003",
			"ul-marker-space",
			"Unordered list markers should be followed by exactly one space",
			[]string{"ul", "whitespace"},
		),
	}
}

// Check reports a "-" marker followed by any run other than a single space.
func (r *UnorderedListMarkerSpaceRule) Check(line *lint.Line) (lint.Diagnostic, bool) {
	spaces, ok := markerSpaces(unorderedMarkerPattern, line.Text)
	if !ok || spaces == expectedMarkerSpaces {
		return lint.Diagnostic{}, false
	}

	msg := fmt.Sprintf("Unordered list marker has %d spaces (expected %d)", spaces, expectedMarkerSpaces)
	return r.NewDiagnostic(line, msg), true
}
