// Package pretty provides Lipgloss-based styled output utilities.
package pretty

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// defaultTermWidth is used when the writer is not a terminal.
const defaultTermWidth = 100

// Styles contains all styled renderers for CLI output.
type Styles struct {
	// Report components
	Header   lipgloss.Style
	Location lipgloss.Style
	Message  lipgloss.Style
	RuleID   lipgloss.Style
	Success  lipgloss.Style
	Failure  lipgloss.Style

	// Rule listing
	Active   lipgloss.Style
	Inactive lipgloss.Style

	// Misc
	Dim  lipgloss.Style
	Bold lipgloss.Style
}

// NewStylesFor creates Styles that render for the given writer.
// Colored styles are forced to ANSI 256 so that --color=always works on
// pipes and buffers.
func NewStylesFor(w io.Writer, colorEnabled bool) *Styles {
	if !colorEnabled {
		return newNoColorStyles()
	}

	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(termenv.ANSI256)
	return newColorStyles(renderer)
}

// newColorStyles creates styles with ANSI 256 colors.
func newColorStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Header:   r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Location: r.NewStyle().Foreground(lipgloss.Color("8")),
		Message:  r.NewStyle(),
		RuleID:   r.NewStyle().Foreground(lipgloss.Color("8")),
		Success:  r.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		Failure:  r.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),

		Active:   r.NewStyle().Foreground(lipgloss.Color("10")),
		Inactive: r.NewStyle().Foreground(lipgloss.Color("8")).Italic(true),

		Dim:  r.NewStyle().Foreground(lipgloss.Color("8")),
		Bold: r.NewStyle().Bold(true),
	}
}

// newNoColorStyles creates styles with no color formatting.
func newNoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Header:   plain,
		Location: plain,
		Message:  plain,
		RuleID:   plain,
		Success:  plain,
		Failure:  plain,
		Active:   plain,
		Inactive: plain,
		Dim:      plain,
		Bold:     plain,
	}
}

// IsColorEnabled determines if color should be enabled based on mode and writer.
// Mode values: "auto" (default), "always", "never".
// In auto mode, color is enabled only if the writer is a TTY and NO_COLOR is not set.
func IsColorEnabled(mode string, writer io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // "auto"
		// https://no-color.org/
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		if f, ok := writer.(*os.File); ok {
			return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
		return false
	}
}

// TerminalWidth returns the column count of the terminal behind w,
// or a default width when w is not a terminal.
func TerminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return defaultTermWidth
	}

	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultTermWidth
	}
	return width
}
