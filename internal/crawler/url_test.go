package crawler

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripFragment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"fragment removed", "https://ex.com/a#section", "https://ex.com/a"},
		{"no fragment unchanged", "https://ex.com/a", "https://ex.com/a"},
		{"query preserved", "https://ex.com/a?x=1#top", "https://ex.com/a?x=1"},
		{"fragment only", "https://ex.com/#top", "https://ex.com/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, _, err := stripFragment(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()
		once, _, err := stripFragment("https://ex.com/a#x")
		require.NoError(t, err)
		twice, _, err := stripFragment(once)
		require.NoError(t, err)
		require.Equal(t, once, twice)
	})
}

func TestResolveLink(t *testing.T) {
	t.Parallel()

	page, err := url.Parse("https://ex.com/docs/")
	require.NoError(t, err)

	tests := []struct {
		name string
		href string
		want string
		ok   bool
	}{
		{"relative", "guide", "https://ex.com/docs/guide", true},
		{"rooted", "/about", "https://ex.com/about", true},
		{"absolute same host", "https://ex.com/x", "https://ex.com/x", true},
		{"fragment stripped", "/a#section", "https://ex.com/a", true},
		{"empty href", "", "", false},
		{"whitespace href", "   ", "", false},
		{"mailto dropped", "mailto:dev@ex.com", "", false},
		{"javascript dropped", "javascript:void(0)", "", false},
		{"foreign host dropped", "https://other.com/b", "", false},
		{"subdomain dropped", "https://www.ex.com/b", "", false},
		{"host case differs", "https://EX.com/b", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := resolveLink(page, tt.href, "ex.com")
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}
