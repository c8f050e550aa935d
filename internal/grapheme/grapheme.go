// Package grapheme wraps uniseg and runewidth with the few cluster-level
// helpers the line model needs.
package grapheme

import (
	"strings"
	"unicode"
	"unicode/utf8"

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

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Join concatenates grapheme clusters into a single string.
func Join(clusters []string) string {
	if len(clusters) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, c := range clusters {
		sb.WriteString(c)
	}
	return sb.String()
}

// Width returns the terminal cell width of a single cluster.
//
// runewidth reports 0 for some clusters uniseg knows to be visible, so the
// larger of the two wins when runewidth says 0.
func Width(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		if fallback := uniseg.StringWidth(cluster); fallback > w {
			w = fallback
		}
	}
	return w
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
// The empty cluster is not whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	return strings.TrimSpace(cluster) == ""
}

// IsControl reports whether cluster is exactly one control code point.
func IsControl(cluster string) bool {
	r, size := utf8.DecodeRuneInString(cluster)
	if size == 0 || size != len(cluster) {
		return false
	}
	return unicode.IsControl(r)
}
