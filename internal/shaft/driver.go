package shaft

// Simulation is one run of the shaft: a grid, a jet cursor and the number
// of the next turn. A Simulation must not be shared between goroutines.
type Simulation struct {
	grid *Grid
	jets *Jets
	turn int64 // next turn to drop, starting at 1
}

// NewSimulation starts an empty run over the jet pattern p.
// p must not be empty.
func NewSimulation(p Pattern) *Simulation {
	return &Simulation{
		grid: NewGrid(),
		jets: NewJets(p),
		turn: 1,
	}
}

// Step drops the next rock and returns it in its resting position.
func (s *Simulation) Step() Shape {
	rock := Drop(s.grid, s.jets, s.turn)
	s.turn++
	return rock
}

// Grid returns the run's grid.
func (s *Simulation) Grid() *Grid {
	return s.grid
}

// Jets returns the run's jet cursor.
func (s *Simulation) Jets() *Jets {
	return s.jets
}

// Turn returns the number of the next rock to fall.
func (s *Simulation) Turn() int64 {
	return s.turn
}

// Height returns the current tower height.
func (s *Simulation) Height() int64 {
	return int64(s.grid.Top())
}

// Fingerprint summarises the state relevant to what happens next.
// It only looks at the top row of the tower.
type Fingerprint struct {
	Skyline uint8 // occupancy of the top row
	Jet     int   // position in the jet pattern
	Kind    Kind  // shape of the next rock
}

// Fingerprint returns the fingerprint of the current state.
func (s *Simulation) Fingerprint() Fingerprint {
	return Fingerprint{
		Skyline: s.grid.Skyline(),
		Jet:     s.jets.Index(),
		Kind:    KindForTurn(s.turn),
	}
}

// Cycle describes a repeating stretch found by HeightAfter.
type Cycle struct {
	Start    int64 // turn at which the fingerprint was first seen
	Detected int64 // turn at which it was seen again
	Length   int64 // turns per repetition
	Gain     int64 // rows added per repetition
	Repeats  int64 // repetitions skipped
}

// Result is the outcome of a height computation.
type Result struct {
	Pieces    int64  // rocks requested
	Height    int64  // tower height after Pieces rocks
	Simulated int64  // rocks actually dropped
	Cycle     *Cycle // nil when no repetition was skipped
}

type sighting struct {
	top  int
	turn int64
}

// HeightAfter returns the tower height after n rocks.
//
// Before every rock the current fingerprint is looked up. The first time a
// fingerprint repeats, the turns between the two sightings are taken to be
// a period: as many whole periods as fit before n are skipped and their
// height added arithmetically, and the cache is dropped so no second
// period is ever applied. The remaining rocks are simulated normally.
//
// The fingerprint only inspects the top row, so a repeat can be reported
// for states that differ below it; see BruteForceHeight for a reference.
func HeightAfter(p Pattern, n int64) Result {
	res := Result{Pieces: max(n, 0)}
	if n <= 0 {
		return res
	}

	sim := NewSimulation(p)
	seen := make(map[Fingerprint]sighting)
	var extra int64

	for sim.turn <= n {
		fp := sim.Fingerprint()
		if prev, ok := seen[fp]; ok && res.Cycle == nil {
			length := sim.turn - prev.turn
			gain := int64(sim.grid.Top() - prev.top)
			repeats := (n - sim.turn) / length

			res.Cycle = &Cycle{
				Start:    prev.turn,
				Detected: sim.turn,
				Length:   length,
				Gain:     gain,
				Repeats:  repeats,
			}
			sim.turn += repeats * length
			extra = gain * repeats
			clear(seen)
			continue
		}

		seen[fp] = sighting{top: sim.grid.Top(), turn: sim.turn}
		sim.Step()
		res.Simulated++
	}

	res.Height = sim.Height() + extra
	return res
}

// BruteForceHeight drops all n rocks one by one and returns the height.
func BruteForceHeight(p Pattern, n int64) Result {
	res := Result{Pieces: max(n, 0)}
	if n <= 0 {
		return res
	}

	sim := NewSimulation(p)
	for sim.turn <= n {
		sim.Step()
		res.Simulated++
	}
	res.Height = sim.Height()
	return res
}
