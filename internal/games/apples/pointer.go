package apples

import "github.com/vovakirdan/apple-picking/internal/core"

// Layout places the grid on the screen and maps screen cells back to grid
// coordinates. It is the only place that knows how big an apple is on screen.
type Layout struct {
	OriginX, OriginY int // Screen position of cell (0, 0)
	CellW, CellH     int // Screen characters per grid cell
	Rows, Cols       int
}

// Bounds returns the screen area covered by the grid.
func (l Layout) Bounds() core.Rect {
	return core.NewRect(l.OriginX, l.OriginY, l.Cols*l.CellW, l.Rows*l.CellH)
}

// CellAt maps a screen position to the grid cell under it.
func (l Layout) CellAt(x, y int) (Coord, bool) {
	if l.CellW <= 0 || l.CellH <= 0 || !l.Bounds().Contains(x, y) {
		return Coord{}, false
	}
	return Coord{
		Row: (y - l.OriginY) / l.CellH,
		Col: (x - l.OriginX) / l.CellW,
	}, true
}

// ClampedCellAt maps a screen position to the nearest grid cell, pulling
// points outside the grid back onto its edge.
func (l Layout) ClampedCellAt(x, y int) Coord {
	b := l.Bounds()
	x = core.Clamp(x, b.X, b.Right()-1)
	y = core.Clamp(y, b.Y, b.Bottom()-1)
	c, _ := l.CellAt(x, y)
	return c
}

// ScreenPos returns the top-left screen position of a grid cell.
func (l Layout) ScreenPos(c Coord) (x, y int) {
	return l.OriginX + c.Col*l.CellW, l.OriginY + c.Row*l.CellH
}

// Drag turns a pointer press/move/release sequence into a selection.
//
// A drag only starts on the grid. While it is held, moves off the grid keep
// the last on-grid corner; on release the end point is clamped to the grid
// edge, so a finger that overshoots still selects up to the border.
type Drag struct {
	layout Layout
	active bool
	start  Coord
	end    Coord
}

// NewDrag creates a drag tracker for the given layout.
func NewDrag(l Layout) Drag {
	return Drag{layout: l}
}

// Begin starts a drag at (x, y). It reports whether the point hit the grid.
func (d *Drag) Begin(x, y int) bool {
	c, ok := d.layout.CellAt(x, y)
	d.active = ok
	d.start, d.end = c, c
	return ok
}

// Move updates the free corner while the pointer is over the grid.
func (d *Drag) Move(x, y int) {
	if !d.active {
		return
	}
	if c, ok := d.layout.CellAt(x, y); ok {
		d.end = c
	}
}

// End finishes the drag at (x, y) and returns the selected rectangle, or
// NoSelection when the drag never started on the grid.
func (d *Drag) End(x, y int) Rect {
	if !d.active {
		return NoSelection
	}
	d.active = false
	d.end = d.layout.ClampedCellAt(x, y)
	return RectFrom(d.start, d.end)
}

// Cancel abandons the drag.
func (d *Drag) Cancel() {
	d.active = false
}

// Active reports whether a drag is in progress.
func (d *Drag) Active() bool {
	return d.active
}

// Current returns the rectangle covered so far, or NoSelection.
func (d *Drag) Current() Rect {
	if !d.active {
		return NoSelection
	}
	return RectFrom(d.start, d.end)
}
