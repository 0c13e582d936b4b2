// Package crawler defines core types shared across subsystems.
package crawler

import "time"

// Metadata carries the key/value page metadata reported by the fetch
// primitive. The "title" key, when present, wins the title fallback chain.
type Metadata map[string]string

// Title returns the metadata-provided title, or "" when absent.
func (m Metadata) Title() string {
	if m == nil {
		return ""
	}
	return m["title"]
}

// Link is a single hyperlink discovered on a page. Href is the attribute
// value as found in the document, not yet resolved.
type Link struct {
	Href string
	Text string
}

// Links groups discovered hyperlinks by whether their resolved host matches
// the host of the page they were found on.
type Links struct {
	Internal []Link
	External []Link
}

// StructuredMarkdown is the structured rendition of a conversion result,
// exposing the raw variant plus any extracted reference section.
type StructuredMarkdown struct {
	Raw        string
	References string
}

// Markdown is a two-case variant: converters emit either a plain string or
// a structured object carrying a raw field. Callers resolve it to a plain
// string via Body immediately after fetch so downstream logic handles one
// shape only.
type Markdown struct {
	Plain      string
	Structured *StructuredMarkdown
}

// Body collapses both variant cases into the plain Markdown text.
func (m Markdown) Body() string {
	if m.Structured != nil {
		return m.Structured.Raw
	}
	return m.Plain
}

// PlainMarkdown wraps already-flat Markdown text in the variant type.
func PlainMarkdown(s string) Markdown {
	return Markdown{Plain: s}
}

// Result is the per-URL outcome produced by the fetch primitive.
type Result struct {
	// URL is the URL the fetch was asked for.
	URL string
	// FinalURL is the URL after redirects; links resolve against it.
	FinalURL string
	// HTML is the raw (possibly JS-rendered) document.
	HTML string
	// Metadata holds extracted page metadata such as title and description.
	Metadata Metadata
	// Markdown is the converted page body.
	Markdown Markdown
	// Links are the hyperlinks found in the document.
	Links Links
	// UsedJS reports whether the headless renderer produced the document.
	UsedJS bool
	// Duration is the wall time the fetch took.
	Duration time.Duration
}
