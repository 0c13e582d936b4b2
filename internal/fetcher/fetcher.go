package fetcher

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/mdcrawl/mdcrawl/internal/crawler"
)

// ErrRobotsDisallowed marks pages the target host's robots.txt forbids.
var ErrRobotsDisallowed = errors.New("disallowed by robots.txt")

// Fetcher is the fetch-and-render primitive handed to the crawl session. It
// is acquired once with New before the crawl and released once with Close
// after it, whatever way the crawl ends.
type Fetcher struct {
	cfg      Config
	client   *collyClient
	renderer *chromedpRenderer
	detector *jsDetector
	robots   robotsPolicy
	limiter  *rate.Limiter
	logger   *zap.Logger
}

// New builds the fetch primitive. When rendering is enabled but the headless
// browser cannot start, the fetcher degrades to the fast path with a warning
// rather than failing the whole crawl.
func New(cfg Config, logger *zap.Logger) (*Fetcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	f := &Fetcher{
		cfg:      cfg,
		client:   newCollyClient(cfg, logger),
		detector: newJSDetector(cfg.DetectorMinHTMLBytes, cfg.DetectorKeywords),
		robots:   newRobotsPolicy(cfg.RespectRobots, cfg.UserAgent, logger),
		logger:   logger,
	}
	if cfg.Delay > 0 {
		f.limiter = rate.NewLimiter(rate.Every(cfg.Delay), 1)
	}
	if cfg.RenderEnabled {
		renderer, err := newChromedpRenderer(cfg, logger)
		switch {
		case err == nil:
			f.renderer = renderer
		case errors.Is(err, ErrRendererDisabled):
		default:
			logger.Warn("Headless renderer unavailable; using fast path only", zap.Error(err))
		}
	}
	return f, nil
}

// Close releases the headless browser, if one was started.
func (f *Fetcher) Close() error {
	return f.renderer.Close()
}

// Fetch retrieves rawURL, escalating to the headless renderer when the fast
// path returns a JavaScript shell, then extracts metadata and links and
// converts the document to Markdown.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (crawler.Result, error) {
	start := time.Now()

	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return crawler.Result{}, fmt.Errorf("politeness wait: %w", err)
		}
	}
	if !f.robots.Allowed(ctx, rawURL) {
		return crawler.Result{}, fmt.Errorf("%w: %s", ErrRobotsDisallowed, rawURL)
	}

	doc, usedJS, err := f.fetchDocument(ctx, rawURL)
	if err != nil {
		return crawler.Result{}, err
	}

	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(string(doc.body)))
	if err != nil {
		return crawler.Result{}, fmt.Errorf("parse document: %w", err)
	}

	md, err := convertMarkdown(string(doc.body))
	if err != nil {
		return crawler.Result{}, err
	}

	return crawler.Result{
		URL:      rawURL,
		FinalURL: doc.finalURL,
		HTML:     string(doc.body),
		Metadata: extractMetadata(parsed),
		Markdown: md,
		Links:    extractLinks(parsed, doc.finalURL),
		UsedJS:   usedJS,
		Duration: time.Since(start),
	}, nil
}

func (f *Fetcher) fetchDocument(ctx context.Context, rawURL string) (fetchedDocument, bool, error) {
	doc, err := f.client.Get(ctx, rawURL)
	if err != nil {
		return fetchedDocument{}, false, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	if f.renderer == nil || !f.detector.NeedsJS(doc.body) {
		return doc, false, nil
	}

	rendered, err := f.renderer.Render(ctx, rawURL)
	if err != nil {
		// The fast-path document is still usable; escalation is best effort.
		f.logger.Warn("Render failed; keeping fast-path document",
			zap.String("url", rawURL), zap.Error(err))
		return doc, false, nil
	}
	return rendered, true, nil
}
