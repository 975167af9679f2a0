// Package strategy registers the height solvers available to the CLI.
package strategy

import (
	"github.com/vovakirdan/rockfall/internal/registry"
	"github.com/vovakirdan/rockfall/internal/shaft"
)

const (
	CycleID = "cycle"
	BruteID = "brute"
)

func init() {
	registry.Register(CycleID, func() registry.Solver { return Cycle{} })
}

// Cycle finds a repeating stretch of the simulation and projects the
// rest of the tower arithmetically. Suitable for any rock count.
type Cycle struct{}

// ID returns the solver ID.
func (Cycle) ID() string { return CycleID }

// Title returns the display name.
func (Cycle) Title() string { return "Cycle detection" }

// Height implements registry.Solver.
func (Cycle) Height(p shaft.Pattern, n int64) shaft.Result {
	return shaft.HeightAfter(p, n)
}
