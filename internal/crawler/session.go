package crawler

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.uber.org/zap"
)

// ErrInvalidStartURL is returned when the start URL has no host component.
var ErrInvalidStartURL = errors.New("invalid start URL")

// ValidateStartURL reports whether raw can seed a crawl. Callers run it
// before acquiring the fetch primitive so a bad URL fails before any I/O.
func ValidateStartURL(raw string) error {
	_, u, err := stripFragment(raw)
	if err != nil || u.Host == "" {
		return fmt.Errorf("%w: %s", ErrInvalidStartURL, raw)
	}
	return nil
}

// SessionConfig holds the settings for one crawl session.
type SessionConfig struct {
	// StartURL seeds the frontier; traversal never leaves its host.
	StartURL string
	// MaxPages caps the number of distinct pages visited. Zero means
	// unbounded.
	MaxPages int
}

// Summary reports what a finished crawl did.
type Summary struct {
	PagesVisited int
	PagesSaved   int
	PagesFailed  int
}

// Session owns the state of a single breadth-first crawl: the FIFO frontier,
// the fragment-normalized visited set, and the collaborators that fetch and
// persist pages. Sessions are single-use and not safe for concurrent use;
// the loop runs one fetch at a time.
type Session struct {
	cfg      SessionConfig
	fetcher  Fetcher
	sink     Sink
	recorder Recorder
	logger   *zap.Logger
}

// NewSession builds a session. recorder may be nil; logger must not be.
func NewSession(cfg SessionConfig, fetcher Fetcher, sink Sink, recorder Recorder, logger *zap.Logger) *Session {
	return &Session{
		cfg:      cfg,
		fetcher:  fetcher,
		sink:     sink,
		recorder: recorder,
		logger:   logger,
	}
}

// Crawl runs the breadth-first traversal to completion. Individual page
// failures are logged and skipped; the only fatal error before the loop is a
// start URL without a host.
func (s *Session) Crawl(ctx context.Context) (Summary, error) {
	seed, seedURL, err := stripFragment(s.cfg.StartURL)
	if err != nil {
		return Summary{}, fmt.Errorf("%w: %s", ErrInvalidStartURL, s.cfg.StartURL)
	}
	host := seedURL.Host
	if host == "" {
		return Summary{}, fmt.Errorf("%w: %s", ErrInvalidStartURL, s.cfg.StartURL)
	}

	var summary Summary
	front := newFrontier()
	front.Push(seed)

	for front.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return summary, fmt.Errorf("crawl canceled: %w", err)
		}
		if s.cfg.MaxPages > 0 && front.VisitedCount() >= s.cfg.MaxPages {
			s.logger.Info("Page cap reached", zap.Int("max_pages", s.cfg.MaxPages))
			break
		}

		current, _ := front.Pop()
		current, _, err := stripFragment(current)
		if err != nil {
			continue
		}
		// The same URL may sit in the frontier twice when two pages link to
		// it; the duplicate collapses here.
		if front.Seen(current) {
			continue
		}
		front.MarkVisited(current)

		res, err := s.fetcher.Fetch(ctx, current)
		if err != nil {
			TotalPagesFailed.Inc()
			summary.PagesFailed++
			s.logger.Warn("Skip (failed)", zap.String("url", current), zap.String("error", err.Error()))
			s.record(ctx, func(r Recorder) error {
				return r.RecordFailed(ctx, PageRecord{URL: current, Error: err.Error()})
			})
			continue
		}
		TotalPagesFetched.Inc()

		body := res.Markdown.Body()
		title := ExtractTitle(res.Metadata, res.HTML, res.FinalURL)
		base := SanitizeFilename(title)

		filename, err := s.sink.Save(ctx, base, []byte(body))
		if err != nil {
			summary.PagesFailed++
			s.logger.Warn("Skip (failed)", zap.String("url", current), zap.String("error", err.Error()))
			s.record(ctx, func(r Recorder) error {
				return r.RecordFailed(ctx, PageRecord{URL: current, FinalURL: res.FinalURL, Title: title, Error: err.Error()})
			})
			continue
		}
		TotalPagesSaved.Inc()
		summary.PagesSaved++
		s.logger.Info("Saved page",
			zap.String("url", current),
			zap.String("file", filename),
			zap.Bool("used_js", res.UsedJS),
		)
		s.record(ctx, func(r Recorder) error {
			return r.RecordSaved(ctx, PageRecord{
				URL:      current,
				FinalURL: res.FinalURL,
				Title:    title,
				Filename: filename,
				UsedJS:   res.UsedJS,
			})
		})

		s.enqueueLinks(front, res, host)
	}

	summary.PagesVisited = front.VisitedCount()
	return summary, nil
}

// enqueueLinks filters the page's internal links and appends survivors to the
// frontier tail. Links are resolved against the final (post-redirect) URL;
// non-http(s) schemes, foreign hosts, and already-visited targets drop out.
// Enqueueing does not mark visited, so the dedup happens at dequeue.
func (s *Session) enqueueLinks(front *frontier, res Result, host string) {
	if len(res.Links.Internal) == 0 {
		return
	}
	base, err := parseFinalURL(res)
	if err != nil {
		return
	}
	for _, link := range res.Links.Internal {
		TotalLinksDiscovered.Inc()
		abs, ok := resolveLink(base, link.Href, host)
		if !ok {
			continue
		}
		if front.Seen(abs) {
			continue
		}
		TotalLinksEnqueued.Inc()
		front.Push(abs)
	}
}

func parseFinalURL(res Result) (*url.URL, error) {
	raw := res.FinalURL
	if raw == "" {
		raw = res.URL
	}
	_, parsed, err := stripFragment(raw)
	if err != nil {
		return nil, err
	}
	return parsed, nil
}

func (s *Session) record(ctx context.Context, fn func(Recorder) error) {
	if s.recorder == nil {
		return
	}
	if err := fn(s.recorder); err != nil {
		s.logger.Warn("Manifest record failed", zap.Error(err))
	}
}
