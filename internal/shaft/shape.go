package shaft

// Kind identifies one of the five rock shapes.
type Kind uint8

// Rocks fall in this order, starting again with Minus after Square.
const (
	KindMinus Kind = iota
	KindPlus
	KindL
	KindBar
	KindSquare
)

// KindCount is the number of distinct rock shapes.
const KindCount = 5

const (
	spawnColumn = 2 // left edge of a fresh rock
	spawnGap    = 4 // bottom edge sits this many rows above the tower top
)

// String returns the name of the shape.
func (k Kind) String() string {
	switch k {
	case KindMinus:
		return "Minus"
	case KindPlus:
		return "Plus"
	case KindL:
		return "L"
	case KindBar:
		return "Bar"
	case KindSquare:
		return "Square"
	default:
		return "Unknown"
	}
}

// KindForTurn returns the shape that falls on the given 1-based turn.
func KindForTurn(turn int64) Kind {
	return Kind(((turn-1)%KindCount + KindCount) % KindCount)
}

// shapeDef is the fixed geometry of a shape: cell offsets from the
// bottom-left corner of its bounding box and, per direction, the indices
// of the cells that would touch an obstacle first when moving that way.
type shapeDef struct {
	offsets []Cell
	edges   [4][]int // indexed by Dir
}

var catalog = [KindCount]shapeDef{
	// ####
	KindMinus: {
		offsets: []Cell{{0, 0}, {1, 0}, {2, 0}, {3, 0}},
		edges: [4][]int{
			DirUp:    {0, 1, 2, 3},
			DirRight: {3},
			DirDown:  {0, 1, 2, 3},
			DirLeft:  {0},
		},
	},
	// .#.
	// ###
	// .#.
	KindPlus: {
		offsets: []Cell{{1, 0}, {1, 1}, {1, 2}, {0, 1}, {2, 1}},
		edges: [4][]int{
			DirUp:    {3, 2, 4},
			DirRight: {0, 4, 2},
			DirDown:  {3, 0, 4},
			DirLeft:  {0, 3, 2},
		},
	},
	// ..#
	// ..#
	// ###
	KindL: {
		offsets: []Cell{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}},
		edges: [4][]int{
			DirUp:    {0, 1, 4},
			DirRight: {2, 3, 4},
			DirDown:  {0, 1, 2},
			DirLeft:  {0, 3, 4},
		},
	},
	// #
	// #
	// #
	// #
	KindBar: {
		offsets: []Cell{{0, 0}, {0, 1}, {0, 2}, {0, 3}},
		edges: [4][]int{
			DirUp:    {3},
			DirRight: {0, 1, 2, 3},
			DirDown:  {0},
			DirLeft:  {0, 1, 2, 3},
		},
	},
	// ##
	// ##
	KindSquare: {
		offsets: []Cell{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		edges: [4][]int{
			DirUp:    {2, 3},
			DirRight: {1, 3},
			DirDown:  {0, 1},
			DirLeft:  {0, 2},
		},
	},
}

// Shape is a rock in flight. It is a small value type: copying a Shape
// copies its cells.
type Shape struct {
	kind  Kind
	cells [5]Cell
	n     int
}

// Spawn creates the rock for the given turn, positioned with its left edge
// at column 2 and its bottom edge four rows above top, leaving three
// empty rows between it and the highest settled cell.
func Spawn(turn int64, top int) Shape {
	return NewShape(KindForTurn(turn), C(spawnColumn, top+spawnGap))
}

// NewShape places a rock of the given kind with the bottom-left corner of
// its bounding box at origin.
func NewShape(kind Kind, origin Cell) Shape {
	def := &catalog[kind]
	s := Shape{kind: kind, n: len(def.offsets)}
	for i, off := range def.offsets {
		s.cells[i] = Cell{X: origin.X + off.X, Y: origin.Y + off.Y}
	}
	return s
}

// Kind returns the shape's kind.
func (s *Shape) Kind() Kind {
	return s.kind
}

// Cells returns a copy of the cells the rock occupies.
func (s *Shape) Cells() []Cell {
	out := make([]Cell, s.n)
	copy(out, s.cells[:s.n])
	return out
}

// Extreme returns the furthest coordinate the rock reaches in direction d:
// a row for Up/Down, a column for Left/Right.
func (s *Shape) Extreme(d Dir) int {
	first := s.cells[0]
	switch d {
	case DirUp, DirDown:
		y := first.Y
		for _, c := range s.cells[1:s.n] {
			if (d == DirUp && c.Y > y) || (d == DirDown && c.Y < y) {
				y = c.Y
			}
		}
		return y
	default:
		x := first.X
		for _, c := range s.cells[1:s.n] {
			if (d == DirRight && c.X > x) || (d == DirLeft && c.X < x) {
				x = c.X
			}
		}
		return x
	}
}

// Edge returns the cells exposed on side d, i.e. the cells whose
// neighbour in direction d is outside the rock.
func (s *Shape) Edge(d Dir) []Cell {
	idx := catalog[s.kind].edges[d]
	out := make([]Cell, len(idx))
	for i, j := range idx {
		out[i] = s.cells[j]
	}
	return out
}

// Height returns the number of rows the rock spans.
func (s *Shape) Height() int {
	return s.Extreme(DirUp) - s.Extreme(DirDown) + 1
}

// Translate moves every cell one step in direction d. It does not check
// for collisions; callers ask Grid.CanMove first.
func (s *Shape) Translate(d Dir) {
	dx, dy := d.Delta()
	for i := 0; i < s.n; i++ {
		s.cells[i].X += dx
		s.cells[i].Y += dy
	}
}

// edgeIndices exposes the static edge table without allocating.
func (s *Shape) edgeIndices(d Dir) []int {
	return catalog[s.kind].edges[d]
}
