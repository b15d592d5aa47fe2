// Package fsutil provides file system helpers for mdstylecheck.
// It reads input files with a scoped handle and classifies failures.
package fsutil

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"
)

// Sentinel errors for error categorization via errors.Is.
var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrPermissionDenied indicates a permission error.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrIsDirectory indicates the path is a directory, not a file.
	ErrIsDirectory = errors.New("path is a directory")
)

// FileInfo captures the state of a file at the time it was read.
type FileInfo struct {
	// Path is the path the file was opened with.
	Path string

	// Mode is the file's permission and mode bits.
	Mode os.FileMode

	// ModTime is the file's modification time.
	ModTime time.Time

	// Size is the number of bytes read.
	Size int64
}

// ReadFile opens path, reads it fully and closes it again, returning the
// content along with metadata. The handle is released on every path out.
func ReadFile(ctx context.Context, path string) (_ []byte, _ *FileInfo, err error) {
	select {
	case <-ctx.Done():
		return nil, nil, fmt.Errorf("read file: %w", ctx.Err())
	default:
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, nil, classify(err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close: %w", withoutPath(closeErr))
		}
	}()

	stat, err := file.Stat()
	if err != nil {
		return nil, nil, fmt.Errorf("stat: %w", withoutPath(err))
	}

	if stat.IsDir() {
		return nil, nil, ErrIsDirectory
	}

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, nil, classify(err)
	}

	info := &FileInfo{
		Path:    path,
		Mode:    stat.Mode(),
		ModTime: stat.ModTime(),
		Size:    int64(len(content)),
	}

	return content, info, nil
}

// classify wraps err with the matching sentinel error. The path is left to
// the caller, which names the file once.
func classify(err error) error {
	cause := withoutPath(err)

	switch {
	case errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("%w: %w", ErrNotFound, cause)
	case errors.Is(err, os.ErrPermission):
		return fmt.Errorf("%w: %w", ErrPermissionDenied, cause)
	default:
		return fmt.Errorf("read: %w", cause)
	}
}

// withoutPath unwraps a *fs.PathError to its cause.
func withoutPath(err error) error {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}
