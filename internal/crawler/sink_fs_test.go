package crawler

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestFileSystemSink_Save(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sink, err := NewFileSystemSink(dir, zap.NewNop())
	require.NoError(t, err)

	name, err := sink.Save(context.Background(), "Getting Started", []byte("# Getting Started\n"))
	require.NoError(t, err)
	require.Equal(t, "Getting Started.md", name)

	content, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	require.Equal(t, "# Getting Started\n", string(content))
}

func TestFileSystemSink_CreatesNestedRoot(t *testing.T) {
	t.Parallel()

	root := filepath.Join(t.TempDir(), "a", "b", "out")
	_, err := NewFileSystemSink(root, zap.NewNop())
	require.NoError(t, err)

	info, err := os.Stat(root)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestFileSystemSink_CollisionNaming(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sink, err := NewFileSystemSink(dir, zap.NewNop())
	require.NoError(t, err)

	ctx := context.Background()
	first, err := sink.Save(ctx, "Overview", []byte("one"))
	require.NoError(t, err)
	second, err := sink.Save(ctx, "Overview", []byte("two"))
	require.NoError(t, err)
	third, err := sink.Save(ctx, "Overview", []byte("three"))
	require.NoError(t, err)

	require.Equal(t, "Overview.md", first)
	require.Equal(t, "Overview-2.md", second)
	require.Equal(t, "Overview-3.md", third)
}

func TestFileSystemSink_OverwritesPriorRunFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	stale := filepath.Join(dir, "Home.md")
	require.NoError(t, os.WriteFile(stale, []byte("stale"), 0o600))

	// A fresh sink has an empty registry, so the first claim reuses the
	// name and replaces whatever a previous run left behind.
	sink, err := NewFileSystemSink(dir, zap.NewNop())
	require.NoError(t, err)
	name, err := sink.Save(context.Background(), "Home", []byte("fresh"))
	require.NoError(t, err)
	require.Equal(t, "Home.md", name)

	content, err := os.ReadFile(stale)
	require.NoError(t, err)
	require.Equal(t, "fresh", string(content))
}

func TestFileSystemSink_EmptyBody(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sink, err := NewFileSystemSink(dir, zap.NewNop())
	require.NoError(t, err)

	name, err := sink.Save(context.Background(), "untitled", nil)
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	require.Empty(t, content)
}

func TestFileSystemSink_CanceledContext(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sink, err := NewFileSystemSink(dir, zap.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = sink.Save(ctx, "Home", []byte("x"))
	require.Error(t, err)
}
