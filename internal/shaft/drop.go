package shaft

// Settle drives s down the shaft until it comes to rest, then commits it
// to g. Each sub-step applies the next jet (ignored when blocked) followed
// by one row of gravity. The floor guarantees termination.
func Settle(g *Grid, s *Shape, jets *Jets) {
	for {
		if d := jets.Next(); g.CanMove(s, d) {
			s.Translate(d)
		}
		if !g.CanMove(s, DirDown) {
			g.Commit(s)
			return
		}
		s.Translate(DirDown)
	}
}

// Drop spawns the rock for turn above the current tower and settles it.
// It returns the rock in its resting position.
func Drop(g *Grid, jets *Jets, turn int64) Shape {
	s := Spawn(turn, g.Top())
	Settle(g, &s, jets)
	return s
}
