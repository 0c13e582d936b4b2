// Package fetcher implements the fetch-and-render primitive consumed by the
// crawl session. A fast HTTP path fetches pages through Colly; a heuristic
// detector escalates JavaScript-dependent pages to a headless Chrome
// renderer. The fetched document is parsed once for links and metadata and
// converted to Markdown.
package fetcher
