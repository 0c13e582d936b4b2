package fetcher

import (
	"fmt"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/mdcrawl/mdcrawl/internal/crawler"
)

// convertMarkdown turns the fetched document into the structured case of the
// Markdown variant. An empty document converts to an empty body rather than
// an error so the page still produces a file.
func convertMarkdown(rawHTML string) (crawler.Markdown, error) {
	if rawHTML == "" {
		return crawler.PlainMarkdown(""), nil
	}
	md, err := htmltomarkdown.ConvertString(rawHTML)
	if err != nil {
		return crawler.Markdown{}, fmt.Errorf("convert markdown: %w", err)
	}
	return crawler.Markdown{
		Structured: &crawler.StructuredMarkdown{Raw: md},
	}, nil
}
