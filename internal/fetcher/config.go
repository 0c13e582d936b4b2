package fetcher

import (
	"fmt"
	"time"
)

// Config captures every knob that influences how pages are fetched.
type Config struct {
	UserAgent      string
	RequestTimeout time.Duration

	// RenderEnabled turns on headless-Chrome escalation for pages the
	// detector flags as JavaScript-dependent.
	RenderEnabled bool
	RenderTimeout time.Duration

	// RespectRobots enables robots.txt enforcement. Disallowed pages fail
	// like any other per-page fetch error.
	RespectRobots bool

	// Delay inserts a fixed pause between consecutive fetches. Zero disables
	// politeness delay.
	Delay time.Duration

	// DetectorMinHTMLBytes flags documents smaller than this as render
	// candidates. Zero disables the size signal.
	DetectorMinHTMLBytes int
	// DetectorKeywords are lowercase substrings whose presence in the body
	// marks a page as a render candidate.
	DetectorKeywords []string
}

// Validate checks for obviously bad configuration combinations.
func (c Config) Validate() error {
	if c.UserAgent == "" {
		return fmt.Errorf("fetcher user agent must be set")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("fetcher request timeout must be > 0")
	}
	if c.RenderEnabled && c.RenderTimeout <= 0 {
		return fmt.Errorf("fetcher render timeout must be > 0 when rendering is enabled")
	}
	if c.Delay < 0 {
		return fmt.Errorf("fetcher delay must be >= 0")
	}
	if c.DetectorMinHTMLBytes < 0 {
		return fmt.Errorf("detector min html bytes must be >= 0")
	}
	return nil
}
