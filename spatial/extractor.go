package spatial

import "math"

// DefaultCellWidth and DefaultCellHeight are the fixed monospace cell
// dimensions in page units (§4.2 step 2). They are empirical — chosen so
// that typical 10-12pt PDF fonts map roughly 1:1 onto grid cells — and are
// deliberately not auto-derived from the input; measurement has shown that
// produces worse column alignment than these fixed values. Callers may
// override them via Options, but should calibrate rather than guess (§9).
const (
	DefaultCellWidth  = 6.0
	DefaultCellHeight = 12.0
)

// Z-priority bands, §4.2 step 4.
const (
	priorityBase       = 100
	priorityLarge      = priorityBase + 25 // h > largeHeightThreshold
	priorityLargeTop   = priorityLarge + 25 // large and near the top of the page
	priorityNearBottom = priorityBase - 25 // near the bottom of the page

	largeHeightThreshold = 14.0
	topBandPageUnits     = 100.0
	bottomBandPageUnits  = 100.0
)

// Options configures a single Extract call. A zero Options uses the default
// cell dimensions.
type Options struct {
	CellWidth, CellHeight float64
}

func (o Options) resolved() (cw, ch float64) {
	cw, ch = o.CellWidth, o.CellHeight
	if cw <= 0 {
		cw = DefaultCellWidth
	}
	if ch <= 0 {
		ch = DefaultCellHeight
	}
	return cw, ch
}

// Extract consumes a set of positioned fragments and produces a dense
// targetH×targetW grid of characters, per §4.2. On empty input it returns an
// all-space grid of the requested size.
func Extract(fragments []Fragment, targetW, targetH int, opts Options) *Grid {
	grid := NewGrid(targetW, targetH)
	if len(fragments) == 0 || targetW <= 0 || targetH <= 0 {
		return grid
	}

	minX, minY, maxY := normalize(fragments)
	cellW, cellH := opts.resolved()

	for _, f := range fragments {
		if !trimmedNonEmpty(f.Text) {
			continue
		}
		priority := zPriority(f, maxY)
		c0 := int(math.Floor((f.X - minX) / cellW))
		row := int(math.Floor((f.Y - minY) / cellH))

		col := c0
		for _, cl := range clusters(f.Text) {
			grid.set(row, col, cl, priority)
			col += cl.cells
		}
	}

	return grid
}

// normalize computes the content frame: the bounding box over all fragments'
// top-left corners and bottoms, per §4.2 step 1.
func normalize(fragments []Fragment) (minX, minY, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxY = math.Inf(-1)
	for _, f := range fragments {
		if f.X < minX {
			minX = f.X
		}
		if f.Y < minY {
			minY = f.Y
		}
		if bottom := f.Y + f.H; bottom > maxY {
			maxY = bottom
		}
	}
	return minX, minY, maxY
}

// zPriority implements §4.2 step 4: base 100; +25 if large (h > 14); a
// further +25 if large and near the page top (y < 100), giving 150; -25 if
// near the page bottom (y > maxY-100), giving 75.
func zPriority(f Fragment, maxY float64) int {
	large := f.H > largeHeightThreshold
	nearTop := f.Y < topBandPageUnits
	nearBottom := f.Y > maxY-bottomBandPageUnits

	switch {
	case large && nearTop:
		return priorityLargeTop
	case large:
		return priorityLarge
	case nearBottom:
		return priorityNearBottom
	default:
		return priorityBase
	}
}
