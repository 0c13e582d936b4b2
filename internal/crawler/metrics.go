package crawler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TotalPagesFetched tracks pages for which the fetch primitive returned a result.
	TotalPagesFetched = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mdcrawl_pages_fetched_total",
		Help: "The total number of pages fetched successfully.",
	})
	// TotalPagesFailed tracks per-page fetch failures that were skipped.
	TotalPagesFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mdcrawl_pages_failed_total",
		Help: "The total number of page fetches that failed and were skipped.",
	})
	// TotalPagesSaved tracks Markdown files written to the sink.
	TotalPagesSaved = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mdcrawl_pages_saved_total",
		Help: "The total number of Markdown files written.",
	})
	// TotalLinksDiscovered tracks internal links reported by the fetch primitive.
	TotalLinksDiscovered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mdcrawl_links_discovered_total",
		Help: "The total number of internal links reported across all pages.",
	})
	// TotalLinksEnqueued tracks links that passed filtering and entered the frontier.
	TotalLinksEnqueued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mdcrawl_links_enqueued_total",
		Help: "The total number of links appended to the crawl frontier.",
	})
)
