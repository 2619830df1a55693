package apples

// TargetSum is the only total that picks a selection.
const TargetSum = 10

// Coord addresses a grid cell.
type Coord struct {
	Row, Col int
}

// Rect is an inclusive block of grid cells.
type Rect struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
}

// NoSelection is the rectangle produced by a drag that never touched the grid.
var NoSelection = Rect{MinRow: 0, MaxRow: -1, MinCol: 0, MaxCol: -1}

// RectFrom builds the rectangle spanned by two corners, in either order.
func RectFrom(a, b Coord) Rect {
	return Rect{
		MinRow: min(a.Row, b.Row),
		MaxRow: max(a.Row, b.Row),
		MinCol: min(a.Col, b.Col),
		MaxCol: max(a.Col, b.Col),
	}
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool {
	return r.MinRow > r.MaxRow || r.MinCol > r.MaxCol
}

// Area returns the number of cells covered, 0 for an empty rectangle.
func (r Rect) Area() int {
	if r.Empty() {
		return 0
	}
	return (r.MaxRow - r.MinRow + 1) * (r.MaxCol - r.MinCol + 1)
}

// Contains reports whether c lies inside the rectangle.
func (r Rect) Contains(c Coord) bool {
	return c.Row >= r.MinRow && c.Row <= r.MaxRow && c.Col >= r.MinCol && c.Col <= r.MaxCol
}

// Result is the outcome of evaluating a selection.
type Result struct {
	Valid bool
	Sum   int
	Cells []Coord // Occupied cells inside the rectangle, row-major
}

// Evaluate totals the apples inside r. Picked cells contribute nothing and
// are not listed. An empty rectangle, or one that does not fit on the grid,
// yields the zero Result so callers can give uniform "no match" feedback.
func Evaluate(r Rect, g *Grid) Result {
	if !g.ContainsRect(r) {
		return Result{}
	}

	var res Result
	for row := r.MinRow; row <= r.MaxRow; row++ {
		for col := r.MinCol; col <= r.MaxCol; col++ {
			c := g.cells[g.index(row, col)]
			if c.Value <= 0 {
				continue
			}
			res.Sum += c.Value
			res.Cells = append(res.Cells, Coord{Row: row, Col: col})
		}
	}
	res.Valid = res.Sum == TargetSum
	return res
}
