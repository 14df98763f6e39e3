package sheet

import (
	"regexp"
	"strings"
)

var (
	reCRLF = regexp.MustCompile(`\r\n?`)
	reTabs = regexp.MustCompile(`\t+`)
)

// cleanText normalizes line endings and tabs so line splitting is stable
// across OCR providers.
func cleanText(s string) string {
	s = reCRLF.ReplaceAllString(s, "\n")
	return reTabs.ReplaceAllString(s, " ")
}

// splitLines returns the trimmed, non-empty lines of s in order.
func splitLines(s string) []string {
	raw := strings.Split(s, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}
