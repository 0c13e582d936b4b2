package fetcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJSDetector_NeedsJS(t *testing.T) {
	t.Parallel()

	t.Run("small body below threshold", func(t *testing.T) {
		t.Parallel()
		d := newJSDetector(100, nil)
		require.True(t, d.NeedsJS([]byte("<html></html>")))
	})

	t.Run("large body passes size check", func(t *testing.T) {
		t.Parallel()
		d := newJSDetector(10, nil)
		require.False(t, d.NeedsJS([]byte("<html><body>plenty of content here</body></html>")))
	})

	t.Run("keyword match is case insensitive", func(t *testing.T) {
		t.Parallel()
		d := newJSDetector(0, []string{"Enable JavaScript"})
		body := []byte("<noscript>Please ENABLE JAVASCRIPT to view this site.</noscript>")
		require.True(t, d.NeedsJS(body))
	})

	t.Run("no keywords no threshold", func(t *testing.T) {
		t.Parallel()
		d := newJSDetector(0, nil)
		require.False(t, d.NeedsJS([]byte("<html></html>")))
	})

	t.Run("blank keywords ignored", func(t *testing.T) {
		t.Parallel()
		d := newJSDetector(0, []string{"", "  "})
		require.False(t, d.NeedsJS([]byte("anything")))
	})

	t.Run("nil detector is inert", func(t *testing.T) {
		t.Parallel()
		var d *jsDetector
		require.False(t, d.NeedsJS([]byte("x")))
	})
}
