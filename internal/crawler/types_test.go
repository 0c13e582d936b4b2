package crawler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarkdown_Body(t *testing.T) {
	t.Parallel()

	t.Run("plain case", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "# Hi", PlainMarkdown("# Hi").Body())
	})

	t.Run("structured case wins when present", func(t *testing.T) {
		t.Parallel()
		md := Markdown{
			Plain:      "ignored",
			Structured: &StructuredMarkdown{Raw: "# Raw"},
		}
		require.Equal(t, "# Raw", md.Body())
	})

	t.Run("zero value is empty", func(t *testing.T) {
		t.Parallel()
		require.Empty(t, Markdown{}.Body())
	})

	t.Run("structured with empty raw", func(t *testing.T) {
		t.Parallel()
		md := Markdown{Structured: &StructuredMarkdown{}}
		require.Empty(t, md.Body())
	})
}

func TestMetadata_Title(t *testing.T) {
	t.Parallel()

	require.Empty(t, Metadata(nil).Title())
	require.Empty(t, Metadata{}.Title())
	require.Equal(t, "Docs", Metadata{"title": "Docs"}.Title())
}
