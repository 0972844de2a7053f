package documents

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var lineBreak = regexp.MustCompile(`\r?\n`)

// CountLines returns the number of newline-delimited segments in text.
// An empty string is one (empty) segment.
func CountLines(text string) int {
	return len(lineBreak.Split(text, -1))
}

// CountWords returns the number of whitespace-delimited non-empty tokens.
func CountWords(text string) int {
	return len(strings.Fields(text))
}

// CountChars returns the length of text in runes.
func CountChars(text string) int {
	return utf8.RuneCountInString(text)
}
