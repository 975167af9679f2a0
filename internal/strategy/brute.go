package strategy

import (
	"github.com/vovakirdan/rockfall/internal/registry"
	"github.com/vovakirdan/rockfall/internal/shaft"
)

func init() {
	registry.Register(BruteID, func() registry.Solver { return Brute{} })
}

// Brute drops every rock. Exact, but linear in the rock count.
type Brute struct{}

// ID returns the solver ID.
func (Brute) ID() string { return BruteID }

// Title returns the display name.
func (Brute) Title() string { return "Brute force" }

// Height implements registry.Solver.
func (Brute) Height(p shaft.Pattern, n int64) shaft.Result {
	return shaft.BruteForceHeight(p, n)
}
