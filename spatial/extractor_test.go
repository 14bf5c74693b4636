package spatial

import (
	"strings"
	"testing"
)

func TestExtractEmptyInputYieldsAllSpaceGrid(t *testing.T) {
	g := Extract(nil, 20, 5, Options{})
	if g.Width() != 20 || g.Height() != 5 {
		t.Fatalf("got %dx%d, want 20x5", g.Width(), g.Height())
	}
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			if g.At(r, c) != ' ' {
				t.Fatalf("cell (%d,%d) = %q, want space", r, c, g.At(r, c))
			}
		}
	}
}

// TestScenarioS1 pins spec §8 Scenario S1: two fragments on the same row
// must leave exactly one space between "Hello" and "World".
func TestScenarioS1HelloWorld(t *testing.T) {
	frags := []Fragment{
		{Text: "Hello", X: 0, Y: 0, W: 30, H: 12, FontSize: 10},
		{Text: "World", X: 36, Y: 0, W: 30, H: 12, FontSize: 10},
	}
	g := Extract(frags, 20, 5, Options{})
	got := g.Row(0)
	want := "Hello World" + strings.Repeat(" ", 20-len("Hello World"))
	if got != want {
		t.Fatalf("row 0 = %q, want %q", got, want)
	}
}

// TestScenarioS4ZPriority pins spec §8 Scenario S4: a large fragment near
// the top of the page outranks body text sharing the same cell.
func TestScenarioS4ZPriority(t *testing.T) {
	frags := []Fragment{
		{Text: "body", X: 0, Y: 50, W: 24, H: 12, FontSize: 10},
		{Text: "TITLE", X: 0, Y: 50, W: 30, H: 20, FontSize: 18},
	}
	g := Extract(frags, 10, 3, Options{})
	got := g.Row(0)[:5]
	if got != "TITLE" {
		t.Fatalf("row 0 = %q, want TITLE to win the collision", got)
	}
}

func TestZPriorityBands(t *testing.T) {
	maxY := 500.0
	cases := []struct {
		name string
		f    Fragment
		want int
	}{
		{"baseline body", Fragment{H: 12, Y: 250}, priorityBase},
		{"large mid-page", Fragment{H: 18, Y: 250}, priorityLarge},
		{"large near top", Fragment{H: 18, Y: 10}, priorityLargeTop},
		{"small near bottom", Fragment{H: 10, Y: 450}, priorityNearBottom},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := zPriority(c.f, maxY); got != c.want {
				t.Fatalf("zPriority() = %d, want %d", got, c.want)
			}
		})
	}
}

func TestExtractCropsRatherThanWraps(t *testing.T) {
	frags := []Fragment{{Text: "abcdefghij", X: 0, Y: 0, W: 60, H: 12, FontSize: 10}}
	g := Extract(frags, 4, 1, Options{})
	if got := g.Row(0); got != "abcd" {
		t.Fatalf("row 0 = %q, want cropped %q", got, "abcd")
	}
}

func TestExtractWideGlyphOccupiesTwoCells(t *testing.T) {
	frags := []Fragment{{Text: "好a", X: 0, Y: 0, W: 18, H: 12, FontSize: 10}}
	g := Extract(frags, 5, 1, Options{})
	if r := rune(g.At(0, 0)); r != '好' {
		t.Fatalf("cell (0,0) = %q, want 好", r)
	}
	if !g.IsContinuation(0, 1) {
		t.Fatalf("cell (0,1) should be a continuation of the wide glyph")
	}
	if g.At(0, 2) != 'a' {
		t.Fatalf("cell (0,2) = %q, want 'a'", g.At(0, 2))
	}
}
