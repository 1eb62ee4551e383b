package utils

import (
	"fmt"
	"regexp"
	"strings"
)

// CompileWordPattern builds a case-insensitive whole-word alternation for the
// given words, e.g. ["give me", "news"] -> `(?i)\b(give me|news)\b`.
func CompileWordPattern(words []string) *regexp.Regexp {
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(fmt.Sprintf(`(?i)\b(%s)\b`, strings.Join(quoted, "|")))
}

// RemoveWords strips every whole-word occurrence matched by pattern and
// collapses the leftover whitespace.
func RemoveWords(s string, pattern *regexp.Regexp) string {
	return CollapseWhitespace(pattern.ReplaceAllString(s, " "))
}

// CollapseWhitespace trims s and squeezes runs of whitespace to single spaces.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TruncateWithEllipsis cuts s to at most n runes, appending "..." when
// anything was cut.
func TruncateWithEllipsis(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
