package pipeline

import (
	"regexp"
	"strings"
)

// byteOrderMark is stripped from the start of markup sources. Changelogs
// edited on Windows tend to carry one, and goldmark would render it as text.
const byteOrderMark = "\uFEFF"

// crlfOrCR matches Windows and classic Mac line endings.
var crlfOrCR = regexp.MustCompile(`\r\n?`)

// PreprocessMarkup prepares lightweight markup for conversion.
func PreprocessMarkup(content string) string {
	content = strings.TrimPrefix(content, byteOrderMark)
	return normalizeLineEndings(content)
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}
