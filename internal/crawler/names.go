package crawler

import (
	"fmt"
	"regexp"
	"strings"
)

const maxBaseNameLen = 120

var (
	forbiddenFilenameChars = regexp.MustCompile(`[\\/:*?"<>|]`)
	whitespaceRun          = regexp.MustCompile(`\s+`)
)

// SanitizeFilename turns a page title into a filesystem-safe base name:
// reserved characters become "-", whitespace runs collapse to one space, and
// the result is trimmed and capped at 120 characters. An empty result yields
// "untitled". The function is idempotent.
func SanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	name = forbiddenFilenameChars.ReplaceAllString(name, "-")
	name = whitespaceRun.ReplaceAllString(name, " ")
	name = strings.TrimSpace(name)
	if runes := []rune(name); len(runes) > maxBaseNameLen {
		name = strings.TrimSpace(string(runes[:maxBaseNameLen]))
	}
	if name == "" {
		return "untitled"
	}
	return name
}

// nameRegistry disambiguates output filenames within one run. Two pages with
// the same sanitized title get "base.md" and "base-2.md" and so on.
type nameRegistry struct {
	used map[string]int
}

func newNameRegistry() *nameRegistry {
	return &nameRegistry{used: make(map[string]int)}
}

// Claim reserves the next free filename for base and returns it.
func (r *nameRegistry) Claim(base string) string {
	count := r.used[base]
	r.used[base] = count + 1
	if count == 0 {
		return base + ".md"
	}
	return fmt.Sprintf("%s-%d.md", base, count+1)
}
