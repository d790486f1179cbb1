package letter

import (
	"strings"
	"unicode"
)

// ParagraphKind classifies a body paragraph.
type ParagraphKind int

const (
	KindBody ParagraphKind = iota
	KindHeading
)

// Classify reports whether a paragraph is a section heading: entirely
// upper-case, at most 10 whitespace-separated tokens, and not ending in
// sentence punctuation.
func Classify(paragraph string) ParagraphKind {
	if !isUpper(paragraph) {
		return KindBody
	}
	if len(strings.Fields(paragraph)) > 10 {
		return KindBody
	}
	trimmed := strings.TrimRightFunc(paragraph, unicode.IsSpace)
	if strings.HasSuffix(trimmed, ".") || strings.HasSuffix(trimmed, "!") ||
		strings.HasSuffix(trimmed, "?") || strings.HasSuffix(trimmed, ",") {
		return KindBody
	}
	return KindHeading
}

// isUpper reports whether s contains at least one cased rune and no
// lower-case rune.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			cased = true
		}
	}
	return cased
}

// Wrap splits text into lines no wider than maxWidth points using greedy
// word wrap: words join the current line while the measured width of the
// joined candidate stays within maxWidth, and the overflowing word starts
// the next line. A single word wider than maxWidth is placed alone on its
// line; there is no hyphenation.
func Wrap(text string, maxWidth float64, font Font, size float64, m Measurer) []string {
	words := strings.Fields(text)
	var lines []string
	var current []string

	for _, word := range words {
		candidate := strings.Join(append(current, word), " ")
		if m.TextWidth(candidate, font, size) > maxWidth && len(current) > 0 {
			lines = append(lines, strings.Join(current, " "))
			current = []string{word}
		} else {
			current = append(current, word)
		}
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return lines
}
