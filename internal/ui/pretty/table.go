package pretty

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/yaklabco/mdstylecheck/pkg/lint"
)

// Table formatting constants.
const (
	tablePadding        = 2
	tableColumnCount    = 4 // ID, NAME, STATUS, DESCRIPTION
	minIDWidth          = 6
	minNameWidth        = 12
	minStatusWidth      = 8
	minDescriptionWidth = 20
	heavySeparator      = "="
	statusActive        = "active"
	statusInactive      = "inert"
)

// TableRow represents a single row in the rules table.
type TableRow struct {
	ID          string
	Name        string
	Active      bool
	Description string
}

// RuleToTableRow converts a rule to a table row.
func RuleToTableRow(rule lint.Rule) TableRow {
	return TableRow{
		ID:          rule.ID(),
		Name:        rule.Name(),
		Active:      rule.Active(),
		Description: rule.Description(),
	}
}

// TableFormatter formats the rule listing as a styled table.
type TableFormatter struct {
	styles    *Styles
	termWidth int
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(styles *Styles, termWidth int) *TableFormatter {
	if termWidth <= 0 {
		termWidth = defaultTermWidth
	}
	return &TableFormatter{
		styles:    styles,
		termWidth: termWidth,
	}
}

type columnWidths struct {
	id          int
	name        int
	status      int
	description int
}

// FormatRules formats rules as a table, one row per rule in pass order.
func (t *TableFormatter) FormatRules(rules []lint.Rule) string {
	if len(rules) == 0 {
		return ""
	}

	rows := make([]TableRow, 0, len(rules))
	for _, rule := range rules {
		rows = append(rows, RuleToTableRow(rule))
	}

	widths := t.calculateColumnWidths(rows)

	var builder strings.Builder
	builder.WriteString(t.formatHeader(widths))
	builder.WriteString("\n")
	builder.WriteString(t.formatSeparator(widths))
	builder.WriteString("\n")

	for _, row := range rows {
		builder.WriteString(t.formatRow(row, widths))
		builder.WriteString("\n")
	}

	return builder.String()
}

// calculateColumnWidths determines column widths from content,
// shrinking the description to fit the terminal.
func (t *TableFormatter) calculateColumnWidths(rows []TableRow) columnWidths {
	widths := columnWidths{
		id:          minIDWidth,
		name:        minNameWidth,
		status:      minStatusWidth,
		description: minDescriptionWidth,
	}

	for _, row := range rows {
		widths.id = max(widths.id, runewidth.StringWidth(row.ID))
		widths.name = max(widths.name, runewidth.StringWidth(row.Name))
		widths.description = max(widths.description, runewidth.StringWidth(row.Description))
	}

	if total := calculateTotalWidth(widths); total > t.termWidth {
		widths.description = max(minDescriptionWidth, widths.description-(total-t.termWidth))
	}

	return widths
}

func calculateTotalWidth(widths columnWidths) int {
	return widths.id + widths.name + widths.status + widths.description +
		(tablePadding * tableColumnCount)
}

func (t *TableFormatter) formatHeader(widths columnWidths) string {
	header := fmt.Sprintf(" %-*s  %-*s  %-*s  %s",
		widths.id, "ID",
		widths.name, "NAME",
		widths.status, "STATUS",
		"DESCRIPTION",
	)
	return t.styles.Bold.Render(header)
}

func (t *TableFormatter) formatSeparator(widths columnWidths) string {
	return t.styles.Dim.Render(strings.Repeat(heavySeparator, calculateTotalWidth(widths)))
}

// formatRow renders one rule. Descriptions wider than their column wrap onto
// continuation lines aligned under the DESCRIPTION header.
func (t *TableFormatter) formatRow(row TableRow, widths columnWidths) string {
	status, statusStyle := statusActive, t.styles.Active
	if !row.Active {
		status, statusStyle = statusInactive, t.styles.Inactive
	}

	// Pad before styling so escape codes do not count toward the width.
	paddedStatus := runewidth.FillRight(status, widths.status)

	lines := wrapText(row.Description, widths.description)
	first := ""
	if len(lines) > 0 {
		first = lines[0]
	}

	var builder strings.Builder
	fmt.Fprintf(&builder, " %s  %s  %s  %s",
		t.styles.RuleID.Render(runewidth.FillRight(row.ID, widths.id)),
		runewidth.FillRight(row.Name, widths.name),
		statusStyle.Render(paddedStatus),
		first,
	)

	if len(lines) > 1 {
		indent := strings.Repeat(" ", 1+widths.id+widths.name+widths.status+tablePadding*3)
		for _, line := range lines[1:] {
			builder.WriteString("\n")
			builder.WriteString(indent)
			builder.WriteString(line)
		}
	}

	return builder.String()
}

// wrapText breaks text into lines of at most width display cells, splitting
// at spaces. A single word wider than width is broken mid-word.
func wrapText(text string, width int) []string {
	var (
		lines   []string
		current string
	)

	for _, word := range strings.Fields(text) {
		if runewidth.StringWidth(word) > width {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			pieces := strings.Split(runewidth.Wrap(word, width), "\n")
			lines = append(lines, pieces[:len(pieces)-1]...)
			current = pieces[len(pieces)-1]
			continue
		}

		switch {
		case current == "":
			current = word
		case runewidth.StringWidth(current)+1+runewidth.StringWidth(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}

	if current != "" {
		lines = append(lines, current)
	}

	return lines
}
