package lint

// Line is the view of a single document line handed to each rule.
type Line struct {
	// Number is the 1-based line number.
	Number int

	// Text is the raw line, including its line ending if it has one.
	Text string

	lines []string
}

// NewLine creates the view of lines[idx]. idx is 0-based.
func NewLine(lines []string, idx int) *Line {
	return &Line{
		Number: idx + 1,
		Text:   lines[idx],
		lines:  lines,
	}
}

// Content returns the line without its line ending.
func (l *Line) Content() string {
	return TrimLineEnding(l.Text)
}

// Previous returns the raw text of the preceding line.
// The second result is false on the first line.
func (l *Line) Previous() (string, bool) {
	if l.Number <= 1 || l.Number-2 >= len(l.lines) {
		return "", false
	}
	return l.lines[l.Number-2], true
}

// IsFirst reports whether this is the first line of the document.
func (l *Line) IsFirst() bool {
	return l.Number == 1
}
