package ui

import (
	"regexp"
	"strings"
)

// Covers SGR colors and the erase-line sequence Fill appends.
var ansiSeq = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)

func stripANSI(s string) string {
	return ansiSeq.ReplaceAllString(s, "")
}

// lineCount counts rendered rows, ignoring a trailing newline.
func lineCount(s string) int {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}
