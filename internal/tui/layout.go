package tui

import (
	"strings"
	"unicode/utf8"
)

// Minimum terminal dimensions for usable rendering.
const (
	MinWidth  = 40
	MinHeight = 10
)

// CompactWidth triggers compact mode for the status bar and footer.
const CompactWidth = 60

// Rows taken by chrome around the editor body: status bar, footer border
// and footer line.
const chromeHeight = 3

// TruncateWithEllipsis truncates s to maxLen runes, appending "..." if truncated.
// If maxLen is less than 4, returns s truncated to maxLen runes without ellipsis.
// Returns s unchanged if it fits within maxLen runes.
func TruncateWithEllipsis(s string, maxLen int) string {
	runeCount := utf8.RuneCountInString(s)
	if runeCount <= maxLen {
		return s
	}
	if maxLen < 4 {
		if maxLen <= 0 {
			return ""
		}
		return truncateToNRunes(s, maxLen)
	}
	return truncateToNRunes(s, maxLen-3) + "..."
}

// truncateToNRunes returns the first n runes of s as a string.
func truncateToNRunes(s string, n int) string {
	i := 0
	for j := 0; j < n; j++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i]
}

// focusLine returns the index of the first line of content carrying the
// focus indicator, or -1.
func focusLine(content, indicator string) int {
	for i, line := range strings.Split(content, "\n") {
		if strings.Contains(line, indicator) {
			return i
		}
	}
	return -1
}
