package fetcher

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mdcrawl/mdcrawl/internal/crawler"
)

// extractMetadata pulls the document title and common meta tags into the
// metadata map the session consults for its title fallback chain.
func extractMetadata(doc *goquery.Document) crawler.Metadata {
	meta := crawler.Metadata{}
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		meta["title"] = title
	}
	doc.Find("meta").Each(func(_ int, sel *goquery.Selection) {
		content, ok := sel.Attr("content")
		if !ok || strings.TrimSpace(content) == "" {
			return
		}
		if name, ok := sel.Attr("name"); ok {
			switch strings.ToLower(name) {
			case "description", "keywords", "author":
				meta[strings.ToLower(name)] = content
			}
			return
		}
		if prop, ok := sel.Attr("property"); ok && strings.HasPrefix(prop, "og:") {
			meta[prop] = content
		}
	})
	return meta
}

// extractLinks collects every anchor href and categorizes it as internal or
// external by resolving against the page's final URL and comparing hosts.
// Hrefs are kept as found in the document; the session does its own
// resolution and filtering.
func extractLinks(doc *goquery.Document, finalURL string) crawler.Links {
	var links crawler.Links
	base, err := url.Parse(finalURL)
	if err != nil {
		return links
	}
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href := strings.TrimSpace(sel.AttrOr("href", ""))
		if href == "" {
			return
		}
		link := crawler.Link{
			Href: href,
			Text: strings.TrimSpace(sel.Text()),
		}
		ref, err := url.Parse(href)
		if err != nil {
			// Unparseable hrefs still surface as external records; the
			// session drops them silently.
			links.External = append(links.External, link)
			return
		}
		abs := base.ResolveReference(ref)
		if (abs.Scheme == "http" || abs.Scheme == "https") && abs.Host == base.Host {
			links.Internal = append(links.Internal, link)
			return
		}
		links.External = append(links.External, link)
	})
	return links
}
