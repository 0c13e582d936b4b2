package crawler

import "context"

// Fetcher fetches and renders a single URL, returning the extracted result.
// A non-nil error is a per-page failure: the session logs it and moves on.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (Result, error)
}

// Sink persists one Markdown document per page and guarantees unique
// filenames for the lifetime of the sink.
type Sink interface {
	Save(ctx context.Context, baseName string, body []byte) (string, error)
}

// Recorder observes per-page outcomes, e.g. for a crawl manifest. A nil
// Recorder is valid and records nothing.
type Recorder interface {
	RecordSaved(ctx context.Context, page PageRecord) error
	RecordFailed(ctx context.Context, page PageRecord) error
}

// PageRecord is the per-page outcome handed to a Recorder.
type PageRecord struct {
	URL      string
	FinalURL string
	Title    string
	Filename string
	Error    string
	UsedJS   bool
}
