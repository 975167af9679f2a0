package shaft

import "strings"

// Glyphs used by RenderASCII.
const (
	GlyphEmpty   = '.'
	GlyphRock    = '#'
	GlyphFalling = '@'
	GlyphWall    = '|'
)

// RenderASCII draws the top of the shaft as text, highest row first.
//
// Format:
//   - Each row is framed by '|'; settled cells are '#', empty cells '.'
//   - Cells of the falling rock, if any, are '@'
//   - The floor is drawn as "+-------+" once the view reaches it
//
// rows limits the number of rows drawn; rows <= 0 draws the whole tower.
func RenderASCII(g *Grid, falling *Shape, rows int) string {
	var sb strings.Builder

	highest := g.Top()
	if falling != nil {
		highest = max(highest, falling.Extreme(DirUp))
	}
	lowest := Floor
	if rows > 0 && highest-rows > Floor {
		lowest = highest - rows
	}

	var inFlight map[Cell]bool
	if falling != nil {
		inFlight = make(map[Cell]bool, falling.n)
		for _, c := range falling.cells[:falling.n] {
			inFlight[c] = true
		}
	}

	for y := highest; y > lowest; y-- {
		sb.WriteRune(GlyphWall)
		for x := 0; x < Width; x++ {
			c := C(x, y)
			switch {
			case inFlight[c]:
				sb.WriteRune(GlyphFalling)
			case g.Occupied(c):
				sb.WriteRune(GlyphRock)
			default:
				sb.WriteRune(GlyphEmpty)
			}
		}
		sb.WriteRune(GlyphWall)
		sb.WriteByte('\n')
	}

	if lowest == Floor {
		sb.WriteString("+" + strings.Repeat("-", Width) + "+\n")
	}
	return sb.String()
}
