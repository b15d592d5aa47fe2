package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/mdstylecheck/pkg/fsutil"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "doc.md")
	content := []byte("# Title\n\n- item\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	got, info, err := fsutil.ReadFile(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, content, got)
	require.NotNil(t, info)
	assert.Equal(t, path, info.Path)
	assert.Equal(t, int64(len(content)), info.Size)
	assert.False(t, info.ModTime.IsZero())
}

func TestReadFile_Empty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.md")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	got, info, err := fsutil.ReadFile(context.Background(), path)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, int64(0), info.Size)
}

func TestReadFile_NotFound(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.md")
	_, _, err := fsutil.ReadFile(context.Background(), path)
	require.ErrorIs(t, err, fsutil.ErrNotFound)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NotContains(t, err.Error(), path, "callers add the path")
}

func TestReadFile_Directory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, _, err := fsutil.ReadFile(context.Background(), dir)
	require.ErrorIs(t, err, fsutil.ErrIsDirectory)
	assert.NotContains(t, err.Error(), dir)
}

func TestReadFile_PermissionDenied(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced for this user")
	}

	path := filepath.Join(t.TempDir(), "secret.md")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o000))

	_, _, err := fsutil.ReadFile(context.Background(), path)
	require.ErrorIs(t, err, fsutil.ErrPermissionDenied)
}

func TestReadFile_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := fsutil.ReadFile(ctx, "unused.md")
	require.ErrorIs(t, err, context.Canceled)
}
