package spatial

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// cluster is one grapheme cluster from a fragment's text, together with how
// many grid columns it occupies. This pins the §9 open question: a grid cell
// corresponds to one terminal display column, not one Unicode code point, so
// wide glyphs (CJK, most emoji) consume two cells and the second is a
// continuation with no rune of its own.
type cluster struct {
	text  string
	cells int
}

// clusters breaks text into grapheme clusters and measures each one's
// terminal display width via go-runewidth, clamping to the 1-or-2 cell range
// the grid model supports (zero-width clusters, e.g. a lone combining mark
// with no base, still occupy one cell so they are never silently dropped).
func clusters(text string) []cluster {
	var out []cluster
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		s := g.Str()
		w := runewidth.StringWidth(s)
		if w < 1 {
			w = 1
		}
		if w > 2 {
			w = 2
		}
		out = append(out, cluster{text: s, cells: w})
	}
	return out
}
