package strategy

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/rockfall/internal/registry"
	"github.com/vovakirdan/rockfall/internal/shaft"
)

// ErrVerifyMismatch is returned when a solver disagrees with brute force.
var ErrVerifyMismatch = errors.New("strategy: height differs from brute force")

// Verify controls brute-force cross-checking in Solve.
type Verify struct {
	Enabled   bool
	MaxPieces int64 // targets above this are not checked
}

// Outcome is the answer for one target.
type Outcome struct {
	Solver   string
	Result   shaft.Result
	Verified bool // confirmed by an independent brute-force run
}

// Solve computes the height for each target with the given solver.
// With verification enabled, every target up to v.MaxPieces is also
// brute-forced; the first disagreement aborts with ErrVerifyMismatch.
func Solve(s registry.Solver, p shaft.Pattern, targets []int64, v Verify) ([]Outcome, error) {
	if len(p) == 0 {
		return nil, shaft.ErrEmptyPattern
	}

	outcomes := make([]Outcome, 0, len(targets))
	for _, n := range targets {
		out := Outcome{
			Solver: s.ID(),
			Result: s.Height(p, n),
		}

		if v.Enabled && n <= v.MaxPieces {
			if s.ID() == BruteID {
				out.Verified = true
			} else {
				want := shaft.BruteForceHeight(p, n).Height
				if out.Result.Height != want {
					return outcomes, fmt.Errorf("%w: %s gives %d after %d rocks, expected %d",
						ErrVerifyMismatch, s.ID(), out.Result.Height, n, want)
				}
				out.Verified = true
			}
		}

		outcomes = append(outcomes, out)
	}
	return outcomes, nil
}
