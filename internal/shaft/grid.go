package shaft

import "github.com/kamstrup/intmap"

// Grid holds the settled rocks of one simulation run. Cells are only ever
// added; the tower grows monotonically.
type Grid struct {
	rocks *intmap.Map[uint64, struct{}]
	top   int
}

// NewGrid creates an empty shaft with only the floor below row 1.
func NewGrid() *Grid {
	return &Grid{
		rocks: intmap.New[uint64, struct{}](4096),
	}
}

// Top returns the highest settled row, or 0 when the shaft is empty.
func (g *Grid) Top() int {
	return g.top
}

// Len returns the number of settled cells.
func (g *Grid) Len() int {
	return g.rocks.Len()
}

// Occupied reports whether a settled rock covers c.
func (g *Grid) Occupied(c Cell) bool {
	if c.X < 0 || c.X >= Width || c.Y <= Floor {
		return false
	}
	_, ok := g.rocks.Get(c.key())
	return ok
}

// CanMove reports whether s could move one step in direction d without
// leaving the shaft or overlapping a settled rock. The shape is not
// modified. Rocks never rise, so DirUp always reports false.
func (g *Grid) CanMove(s *Shape, d Dir) bool {
	switch d {
	case DirLeft:
		if s.Extreme(DirLeft) == 0 {
			return false
		}
	case DirRight:
		if s.Extreme(DirRight) == Width-1 {
			return false
		}
	case DirDown:
		if s.Extreme(DirDown) == Floor+1 {
			return false
		}
	default:
		return false
	}

	for _, i := range s.edgeIndices(d) {
		if g.Occupied(s.cells[i].Step(d)) {
			return false
		}
	}
	return true
}

// Commit settles s into the grid.
func (g *Grid) Commit(s *Shape) {
	for _, c := range s.cells[:s.n] {
		g.rocks.Put(c.key(), struct{}{})
	}
	g.top = max(g.top, s.Extreme(DirUp))
}

// Row returns a Width-bit mask of the settled cells in row y; bit x is
// set when column x is occupied.
func (g *Grid) Row(y int) uint8 {
	var mask uint8
	for x := 0; x < Width; x++ {
		if g.Occupied(C(x, y)) {
			mask |= 1 << x
		}
	}
	return mask
}

// Skyline returns the occupancy mask of the top row. Two grids with the
// same skyline can still differ further down.
func (g *Grid) Skyline() uint8 {
	return g.Row(g.top)
}
