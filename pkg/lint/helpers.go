package lint

import (
	"strings"
	"unicode"
)

// SpaceClass is the regular expression character class matching every rune
// IsSpace accepts. Rules build their patterns from it so that "\s" means the
// same thing in a pattern as it does when trimming.
const SpaceClass = `[\t\n\v\f\r\x{1c}-\x{1f}\x{85}\p{Z}]`

// IsSpace reports whether r is whitespace for checking purposes.
// It accepts unicode.IsSpace runes plus the ASCII information separators
// U+001C through U+001F.
func IsSpace(r rune) bool {
	if r >= 0x1c && r <= 0x1f {
		return true
	}
	return unicode.IsSpace(r)
}

// TrimLineEnding removes a single trailing line ending ("\r\n", "\n" or "\r").
func TrimLineEnding(s string) string {
	switch {
	case strings.HasSuffix(s, "\r\n"):
		return s[:len(s)-2]
	case strings.HasSuffix(s, "\n"), strings.HasSuffix(s, "\r"):
		return s[:len(s)-1]
	default:
		return s
	}
}

// TrimTrailingSpace removes all trailing whitespace, line ending included.
func TrimTrailingSpace(s string) string {
	return strings.TrimRightFunc(s, IsSpace)
}

// IsBlank reports whether s contains only whitespace.
func IsBlank(s string) bool {
	return strings.TrimFunc(s, IsSpace) == ""
}
