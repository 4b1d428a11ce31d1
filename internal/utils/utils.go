package utils

import (
	"github.com/mattn/go-runewidth"
	"strings"
)

// TruncateName - Returns name cut to at most maxLen characters. Cutting is done on character boundaries so
// a multibyte character is never split.
func TruncateName(name string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}

	runes := []rune(name)
	if len(runes) <= maxLen {
		return name
	}

	return string(runes[:maxLen])
}

// widthCondition - Cell width rules used for column padding. Ambiguous width characters always count as one
// cell so padding does not depend on the locale of the process.
var widthCondition = newWidthCondition()

func newWidthCondition() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}

// PadRight - Left aligns s in a column of width cells by appending spaces, wide characters count as two cells.
// A string already wider than the column is returned unchanged.
func PadRight(s string, width int) string {
	return widthCondition.FillRight(s, width)
}

// TrimLineEnd - Removes any trailing carriage return and line feed characters
func TrimLineEnd(line string) string {
	return strings.TrimRight(line, "\r\n")
}
