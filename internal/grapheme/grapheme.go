// Package grapheme measures text the way a terminal draws it.
package grapheme

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Width returns the number of terminal cells text occupies. Tabs count as
// tabWidth cells; a non-positive tabWidth means 4.
func Width(text string, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = 4
	}
	w := 0
	for _, c := range Split(text) {
		if c == "\t" {
			w += tabWidth
			continue
		}
		w += runewidth.StringWidth(c)
	}
	return w
}

// Placeholder returns fill repeated to cover the cell width of text.
func Placeholder(text string, fill rune, tabWidth int) string {
	n := Width(text, tabWidth)
	if n <= 0 {
		return ""
	}
	out := make([]rune, n)
	for i := range out {
		out[i] = fill
	}
	return string(out)
}
