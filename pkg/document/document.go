// Package document loads Markdown files as ordered, immutable line sequences.
package document

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/yaklabco/mdstylecheck/pkg/fsutil"
)

// ErrInvalidEncoding indicates the file content is not valid UTF-8.
var ErrInvalidEncoding = errors.New("invalid UTF-8")

// FileAccessError reports a file that could not be opened, read or decoded.
// It wraps the underlying cause, so errors.Is works against fsutil sentinels
// and ErrInvalidEncoding.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot access %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// Document is a file's content split into lines.
// Every line keeps its "\n" ending except possibly the last one.
type Document struct {
	// Path is where the document was loaded from. Empty for in-memory documents.
	Path string

	// Lines holds the raw lines in file order.
	Lines []string

	// Info is the file metadata captured at read time, nil for in-memory documents.
	Info *fsutil.FileInfo
}

// Load reads and decodes the file at path.
// Any failure is returned as a *FileAccessError.
func Load(ctx context.Context, path string) (*Document, error) {
	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}

	doc, err := Parse(content)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}

	doc.Path = path
	doc.Info = info

	return doc, nil
}

// Parse decodes content as UTF-8 and splits it into lines.
func Parse(content []byte) (*Document, error) {
	if !utf8.Valid(content) {
		offset := firstInvalid(content)
		return nil, fmt.Errorf("%w at byte offset %d", ErrInvalidEncoding, offset)
	}

	return &Document{Lines: SplitLines(string(content))}, nil
}

// SplitLines splits text into lines, keeping each line's ending.
//
// Line endings are normalized first: "\r\n" and a lone "\r" both become "\n".
// Text without a final newline yields a last line without one, and empty
// text yields no lines.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.Lines)
}

// firstInvalid returns the byte offset of the first invalid UTF-8 sequence.
func firstInvalid(content []byte) int {
	offset := 0
	for offset < len(content) {
		r, size := utf8.DecodeRune(content[offset:])
		if r == utf8.RuneError && size <= 1 {
			return offset
		}
		offset += size
	}
	return offset
}
