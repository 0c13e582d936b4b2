// Package crawler implements the breadth-first crawl session: the URL
// frontier and visited set, title and filename derivation, link filtering,
// and the Markdown file sink. Fetching and rendering are delegated to a
// Fetcher implementation.
package crawler
