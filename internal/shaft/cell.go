package shaft

import "fmt"

const (
	// Width is the number of columns in the shaft.
	Width = 7

	// Floor is the row below the lowest row a rock may occupy.
	Floor = 0
)

// Cell is a single unit square of the shaft.
// X is the column in [0, Width), Y the row counted from the floor upward.
type Cell struct {
	X int
	Y int
}

// C is a convenience constructor for Cell.
func C(x, y int) Cell {
	return Cell{X: x, Y: y}
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the neighbouring cell in the given direction.
func (c Cell) Step(d Dir) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// key packs the cell into a single integer for the occupancy set.
// Columns fit in three bits.
func (c Cell) key() uint64 {
	return uint64(c.Y)<<3 | uint64(c.X)
}
