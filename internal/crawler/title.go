package crawler

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ExtractTitle determines the page title using the fallback chain: metadata
// title, then the document's <title> element, then the last non-empty path
// segment of the URL, then the URL itself.
func ExtractTitle(meta Metadata, rawHTML, pageURL string) string {
	if t := meta.Title(); t != "" {
		return t
	}
	if t := htmlTitle(rawHTML); t != "" {
		return t
	}
	return titleFromURL(pageURL)
}

// htmlTitle scans the document for the first <title> element and returns its
// text with entities decoded and whitespace collapsed. Returns "" when the
// document has no usable title.
func htmlTitle(rawHTML string) string {
	if rawHTML == "" {
		return ""
	}
	tok := html.NewTokenizer(strings.NewReader(rawHTML))
	for {
		switch tok.Next() {
		case html.ErrorToken:
			return ""
		case html.StartTagToken:
			name, _ := tok.TagName()
			if atom.Lookup(name) != atom.Title {
				continue
			}
			var sb strings.Builder
			for {
				switch tok.Next() {
				case html.TextToken:
					sb.Write(tok.Text())
				case html.ErrorToken, html.EndTagToken:
					return collapseSpace(sb.String())
				}
			}
		}
	}
}

func titleFromURL(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return pageURL
	}
	p := strings.TrimRight(u.Path, "/")
	if idx := strings.LastIndex(p, "/"); idx >= 0 {
		p = p[idx+1:]
	}
	if p == "" {
		return pageURL
	}
	return p
}

func collapseSpace(s string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(s, " "))
}
