package caption

import (
	"strings"
	"unicode/utf8"
)

// maxDisplayLines caps how many lines of a chunk are rendered on screen.
// Downstream layout assumes at most two lines per caption.
const maxDisplayLines = 2

// wrapLines splits text into at most two display lines using a greedy
// word wrap bounded by maxCharsPerLine. A single word longer than the
// limit gets a line of its own rather than being split mid-word. Lines
// beyond the second are dropped from the result; the chunk's Text field
// still carries the full content.
func wrapLines(text string, maxCharsPerLine int) []string {
	if utf8.RuneCountInString(text) <= maxCharsPerLine {
		return []string{text}
	}

	var lines []string
	var current string

	for _, word := range strings.Fields(text) {
		if current == "" {
			current = word
			continue
		}
		if utf8.RuneCountInString(current)+1+utf8.RuneCountInString(word) <= maxCharsPerLine {
			current += " " + word
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}

	if len(lines) > maxDisplayLines {
		lines = lines[:maxDisplayLines]
	}
	return lines
}
