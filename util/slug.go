// Package util provides shared utility functions.
package util

import (
	"regexp"
	"strings"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9-]`)
	hyphenRuns   = regexp.MustCompile(`-{2,}`)
)

// Slugify converts a human-readable name into an app_id-safe slug:
// lowercased, spaces to hyphens, non-[a-z0-9-] stripped, hyphen runs
// collapsed, leading/trailing hyphens trimmed.
func Slugify(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = strings.ReplaceAll(s, " ", "-")
	s = nonSlugChars.ReplaceAllString(s, "")
	s = hyphenRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
