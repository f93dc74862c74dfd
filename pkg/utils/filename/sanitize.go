// Package filename turns workspace names into download filenames.
package filename

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// invalidCharsRe matches characters not safe for filenames across all major OSes.
var invalidCharsRe = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f\s]`)

var multiDash = regexp.MustCompile(`[-_]{2,}`)

const defaultMaxLen = 120

// Sanitize converts name into a filename-safe slug of at most maxLen bytes
// (defaultMaxLen when maxLen <= 0). Leading and trailing dashes and dots are
// stripped.
func Sanitize(name string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = defaultMaxLen
	}

	s := invalidCharsRe.ReplaceAllString(strings.TrimSpace(name), "-")
	s = multiDash.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-.")

	if len(s) > maxLen {
		s = s[:maxLen]
		for !utf8.ValidString(s) {
			s = s[:len(s)-1]
		}
		s = strings.TrimRight(s, "-.")
	}
	return s
}

// Descriptor is the attachment name for a workspace's exported descriptor.
func Descriptor(workspaceName string) string {
	base := Sanitize(workspaceName, 0)
	if base == "" {
		base = "descriptor"
	}
	return base + ".json"
}
