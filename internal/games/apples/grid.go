// Package apples implements Apple Picking: a grid of numbered apples where the
// player boxes in a rectangle whose values add up to exactly ten to pick
// them, racing a countdown.
//
// The engine (Grid, Evaluate, Session) is independent of any front end.
// Game adapts it to the terminal frame loop and screen buffer.
package apples

import (
	"fmt"
	"math/rand"
	"time"
)

// Default board dimensions.
const (
	DefaultWidth  = 10
	DefaultHeight = 17
)

// Apple values are drawn uniformly from [MinValue, MaxValue].
const (
	MinValue = 1
	MaxValue = 9
)

// Cell is a single grid position. A picked cell has Value 0 and is not
// occupied; the two fields never disagree.
type Cell struct {
	Value    int
	Occupied bool
}

// Grid is the board of apples, stored row-major.
// The zero value is an empty 0x0 grid; call Reset to fill it.
type Grid struct {
	width  int
	height int
	cells  []Cell
}

// NewGrid creates a grid of the given size filled from seed (0 = time-based).
func NewGrid(width, height int, seed int64) *Grid {
	g := &Grid{}
	g.Reset(width, height, seed)
	return g
}

// Reset resizes the grid and refills every cell with a fresh apple.
// Any nonzero seed, negative ones included, makes the fill fully
// deterministic: the same seed always yields the same board. Zero is
// reserved for "unseeded" and draws from the clock, so it can never be used
// to pin a board.
func (g *Grid) Reset(width, height int, seed int64) {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	rng := rand.New(rand.NewSource(seed))

	g.width = width
	g.height = height
	if cap(g.cells) >= width*height {
		g.cells = g.cells[:width*height]
	} else {
		g.cells = make([]Cell, width*height)
	}

	// Row-major fill order is part of the determinism contract.
	for i := range g.cells {
		g.cells[i] = Cell{
			Value:    MinValue + rng.Intn(MaxValue-MinValue+1),
			Occupied: true,
		}
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether (row, col) addresses a cell.
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width
}

// ContainsRect reports whether every coordinate of r lies on the grid.
func (g *Grid) ContainsRect(r Rect) bool {
	return !r.Empty() && g.InBounds(r.MinRow, r.MinCol) && g.InBounds(r.MaxRow, r.MaxCol)
}

func (g *Grid) index(row, col int) int {
	return row*g.width + col
}

// CellAt returns the cell at (row, col).
func (g *Grid) CellAt(row, col int) (Cell, error) {
	if !g.InBounds(row, col) {
		return Cell{}, fmt.Errorf("%w: (%d, %d) on %dx%d grid", ErrOutOfBounds, row, col, g.width, g.height)
	}
	return g.cells[g.index(row, col)], nil
}

// ValueAt returns the apple value at (row, col), 0 if already picked.
func (g *Grid) ValueAt(row, col int) (int, error) {
	c, err := g.CellAt(row, col)
	if err != nil {
		return 0, err
	}
	return c.Value, nil
}

// Clear picks the apple at (row, col). Clearing an empty cell is a no-op.
func (g *Grid) Clear(row, col int) error {
	if !g.InBounds(row, col) {
		return fmt.Errorf("%w: (%d, %d) on %dx%d grid", ErrOutOfBounds, row, col, g.width, g.height)
	}
	g.cells[g.index(row, col)] = Cell{}
	return nil
}

// Sum returns the total value of all apples still on the grid.
func (g *Grid) Sum() int {
	total := 0
	for _, c := range g.cells {
		total += c.Value
	}
	return total
}

// Remaining returns the number of apples still on the grid.
func (g *Grid) Remaining() int {
	n := 0
	for _, c := range g.cells {
		if c.Occupied {
			n++
		}
	}
	return n
}

// Values returns a copy of the board values, indexed [row][col].
func (g *Grid) Values() [][]int {
	out := make([][]int, g.height)
	for row := range out {
		out[row] = make([]int, g.width)
		for col := range out[row] {
			out[row][col] = g.cells[g.index(row, col)].Value
		}
	}
	return out
}
