package fetcher

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestExtractMetadata(t *testing.T) {
	t.Parallel()

	doc := mustDoc(t, `<html><head>
		<title> Install Guide </title>
		<meta name="description" content="How to install.">
		<meta name="author" content="docs team">
		<meta property="og:title" content="Install Guide (OG)">
		<meta name="viewport" content="width=device-width">
		<meta name="empty" content="">
	</head><body></body></html>`)

	meta := extractMetadata(doc)
	require.Equal(t, "Install Guide", meta["title"])
	require.Equal(t, "How to install.", meta["description"])
	require.Equal(t, "docs team", meta["author"])
	require.Equal(t, "Install Guide (OG)", meta["og:title"])
	require.NotContains(t, meta, "viewport")
	require.NotContains(t, meta, "empty")
}

func TestExtractMetadata_NoTitle(t *testing.T) {
	t.Parallel()

	meta := extractMetadata(mustDoc(t, "<html><body><p>bare</p></body></html>"))
	require.NotContains(t, meta, "title")
}

func TestExtractLinks(t *testing.T) {
	t.Parallel()

	doc := mustDoc(t, `<html><body>
		<a href="/about">About</a>
		<a href="guide">Guide</a>
		<a href="https://ex.com/abs">Absolute</a>
		<a href="https://other.com/away">Away</a>
		<a href="mailto:dev@ex.com">Mail</a>
		<a href="">Empty</a>
		<a>No href</a>
	</body></html>`)

	links := extractLinks(doc, "https://ex.com/docs/")

	internal := make([]string, 0, len(links.Internal))
	for _, l := range links.Internal {
		internal = append(internal, l.Href)
	}
	require.ElementsMatch(t, []string{"/about", "guide", "https://ex.com/abs"}, internal)

	external := make([]string, 0, len(links.External))
	for _, l := range links.External {
		external = append(external, l.Href)
	}
	require.ElementsMatch(t, []string{"https://other.com/away", "mailto:dev@ex.com"}, external)
}

func TestExtractLinks_KeepsAnchorText(t *testing.T) {
	t.Parallel()

	doc := mustDoc(t, `<html><body><a href="/a">  Getting  Started  </a></body></html>`)
	links := extractLinks(doc, "https://ex.com/")
	require.Len(t, links.Internal, 1)
	require.Equal(t, "Getting  Started", links.Internal[0].Text)
}

func TestExtractLinks_BadFinalURL(t *testing.T) {
	t.Parallel()

	doc := mustDoc(t, `<html><body><a href="/a">A</a></body></html>`)
	links := extractLinks(doc, "://not-a-url")
	require.Empty(t, links.Internal)
	require.Empty(t, links.External)
}
