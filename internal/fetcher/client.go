package fetcher

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"
)

// collyClient is the fast HTTP path. Each fetch clones the base collector so
// per-request callbacks never leak between pages.
type collyClient struct {
	base   *colly.Collector
	logger *zap.Logger
}

type fetchedDocument struct {
	finalURL   string
	statusCode int
	body       []byte
}

func newCollyClient(cfg Config, logger *zap.Logger) *collyClient {
	base := colly.NewCollector(
		colly.UserAgent(cfg.UserAgent),
		colly.IgnoreRobotsTxt(),
	)
	base.AllowURLRevisit = true
	base.WithTransport(&http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		MaxIdleConns:          32,
		MaxIdleConnsPerHost:   8,
		IdleConnTimeout:       30 * time.Second,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: cfg.RequestTimeout,
		ForceAttemptHTTP2:     true,
	})
	base.SetRequestTimeout(cfg.RequestTimeout)
	return &collyClient{base: base, logger: logger}
}

// Get retrieves rawURL and returns the response body plus the URL after
// redirects.
func (c *collyClient) Get(ctx context.Context, rawURL string) (fetchedDocument, error) {
	collector := c.base.Clone()
	resultCh := make(chan getResult, 1)
	var once sync.Once
	send := func(res getResult) {
		once.Do(func() {
			resultCh <- res
		})
	}

	collector.OnResponse(func(r *colly.Response) {
		send(getResult{doc: fetchedDocument{
			finalURL:   r.Request.URL.String(),
			statusCode: r.StatusCode,
			body:       append([]byte{}, r.Body...),
		}})
	})
	collector.OnError(func(r *colly.Response, err error) {
		if err == nil {
			err = errors.New("unknown colly error")
		}
		send(getResult{err: err})
	})

	if err := collector.Visit(rawURL); err != nil {
		return fetchedDocument{}, err
	}
	collector.Wait()

	select {
	case res := <-resultCh:
		if err := ctx.Err(); err != nil {
			return fetchedDocument{}, err
		}
		return res.doc, res.err
	default:
		return fetchedDocument{}, errors.New("colly fetch produced no result")
	}
}

type getResult struct {
	doc fetchedDocument
	err error
}
