package crawler

import (
	"fmt"
	"net/url"
	"strings"
)

// stripFragment parses raw and drops the #fragment suffix so that URLs
// differing only by fragment collapse into one visited-set entry. The
// remainder of the URL is left exactly as received.
func stripFragment(raw string) (string, *url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", nil, fmt.Errorf("parse url: %w", err)
	}
	u.Fragment = ""
	u.RawFragment = ""
	return u.String(), u, nil
}

// resolveLink resolves href against the page URL, strips the fragment, and
// reports whether the target stays on host over http(s). Host comparison is
// exact and case-sensitive, as received; subdomains do not match.
func resolveLink(page *url.URL, href, host string) (string, bool) {
	href = strings.TrimSpace(href)
	if href == "" {
		return "", false
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", false
	}
	abs := page.ResolveReference(ref)
	abs.Fragment = ""
	abs.RawFragment = ""
	if abs.Scheme != "http" && abs.Scheme != "https" {
		return "", false
	}
	if abs.Host != host {
		return "", false
	}
	return abs.String(), true
}
