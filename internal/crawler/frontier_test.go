package crawler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFrontier_FIFO(t *testing.T) {
	t.Parallel()

	f := newFrontier()
	require.Zero(t, f.Len())

	f.Push("https://ex.com/a")
	f.Push("https://ex.com/b")
	f.Push("https://ex.com/c")

	got, ok := f.Pop()
	require.True(t, ok)
	require.Equal(t, "https://ex.com/a", got)

	got, ok = f.Pop()
	require.True(t, ok)
	require.Equal(t, "https://ex.com/b", got)

	got, ok = f.Pop()
	require.True(t, ok)
	require.Equal(t, "https://ex.com/c", got)

	_, ok = f.Pop()
	require.False(t, ok)
}

func TestFrontier_AllowsPendingDuplicates(t *testing.T) {
	t.Parallel()

	// Enqueue does not scan pending entries; the duplicate collapses at
	// dequeue via the visited set.
	f := newFrontier()
	f.Push("https://ex.com/x")
	f.Push("https://ex.com/x")
	require.Equal(t, 2, f.Len())
}

func TestFrontier_Visited(t *testing.T) {
	t.Parallel()

	f := newFrontier()
	require.False(t, f.Seen("https://ex.com/"))
	require.Zero(t, f.VisitedCount())

	f.MarkVisited("https://ex.com/")
	require.True(t, f.Seen("https://ex.com/"))
	require.Equal(t, 1, f.VisitedCount())

	// Marking twice does not inflate the count.
	f.MarkVisited("https://ex.com/")
	require.Equal(t, 1, f.VisitedCount())
}
