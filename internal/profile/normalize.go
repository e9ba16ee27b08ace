package profile

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/width"
)

var symbolReplacer = strings.NewReplacer(
	"×", "x",
	"*", "x",
	"Φ", "φ",
	"Ø", "φ",
	"ø", "φ",
	"⌀", "φ",
	"口", "□",
	" ", "",
	"\t", "",
)

// Normalize prepares raw cell text for grammar matching: surrounding space is
// trimmed, full-width forms are narrowed, separators and diameter signs are
// unified, inner whitespace is dropped and the result is case folded.
func Normalize(text string) string {
	s := strings.TrimSpace(text)
	if s == "" {
		return ""
	}
	s = width.Narrow.String(s)
	s = symbolReplacer.Replace(s)
	// Casers keep internal state, so one is created per call.
	return cases.Fold().String(s)
}
