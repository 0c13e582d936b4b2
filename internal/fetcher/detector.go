package fetcher

import (
	"bytes"
	"strings"
)

// jsDetector flags documents that look like empty JavaScript shells so the
// fetcher can escalate them to the headless renderer.
type jsDetector struct {
	minHTMLBytes int
	keywords     [][]byte
}

func newJSDetector(minBytes int, keywords []string) *jsDetector {
	lowered := make([][]byte, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(strings.ToLower(kw))
		if kw == "" {
			continue
		}
		lowered = append(lowered, []byte(kw))
	}
	return &jsDetector{
		minHTMLBytes: minBytes,
		keywords:     lowered,
	}
}

// NeedsJS inspects the fast-path body for signals that the real content is
// rendered client-side.
func (d *jsDetector) NeedsJS(body []byte) bool {
	if d == nil {
		return false
	}
	if d.minHTMLBytes > 0 && len(body) < d.minHTMLBytes {
		return true
	}
	if len(body) == 0 || len(d.keywords) == 0 {
		return false
	}
	lowerBody := bytes.ToLower(body)
	for _, kw := range d.keywords {
		if bytes.Contains(lowerBody, kw) {
			return true
		}
	}
	return false
}
