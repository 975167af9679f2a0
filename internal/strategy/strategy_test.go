package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/rockfall/internal/registry"
	"github.com/vovakirdan/rockfall/internal/shaft"
)

const referencePattern = ">>><<><>><<<>><>>><<<>>><<<><<<>><>><<>>"

func TestRegistryListsStrategies(t *testing.T) {
	infos := registry.List()

	ids := make([]string, 0, len(infos))
	for _, info := range infos {
		ids = append(ids, info.ID)
		assert.NotEmpty(t, info.Title, "solver %q has no title", info.ID)
	}
	assert.Equal(t, []string{BruteID, CycleID}, ids, "List() should be sorted by ID")

	assert.True(t, registry.Exists(CycleID))
	assert.False(t, registry.Exists("quantum"))
}

func TestRegistryCreate(t *testing.T) {
	s, err := registry.Create(CycleID)
	require.NoError(t, err)
	assert.Equal(t, CycleID, s.ID())

	_, err = registry.Create("quantum")
	assert.Error(t, err)
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	assert.Panics(t, func() {
		registry.Register(CycleID, func() registry.Solver { return Cycle{} })
	})
}

func TestSolversAgree(t *testing.T) {
	p, err := shaft.ParsePattern(referencePattern)
	require.NoError(t, err)

	for _, n := range []int64{0, 1, 10, 2022, 5000} {
		assert.Equal(t, Brute{}.Height(p, n).Height, Cycle{}.Height(p, n).Height, "n=%d", n)
	}
}

func TestSolveWithVerification(t *testing.T) {
	p, err := shaft.ParsePattern(referencePattern)
	require.NoError(t, err)

	outcomes, err := Solve(Cycle{}, p, []int64{2022, 1_000_000_000_000}, Verify{Enabled: true, MaxPieces: 10_000})
	require.NoError(t, err)
	require.Len(t, outcomes, 2)

	assert.Equal(t, int64(3068), outcomes[0].Result.Height)
	assert.True(t, outcomes[0].Verified)

	assert.Equal(t, int64(1_514_285_714_288), outcomes[1].Result.Height)
	assert.False(t, outcomes[1].Verified, "targets above the limit are not brute-forced")
	assert.Equal(t, CycleID, outcomes[1].Solver)
}

func TestSolveBruteIsSelfVerified(t *testing.T) {
	p, err := shaft.ParsePattern(referencePattern)
	require.NoError(t, err)

	outcomes, err := Solve(Brute{}, p, []int64{100}, Verify{Enabled: true, MaxPieces: 1000})
	require.NoError(t, err)
	assert.True(t, outcomes[0].Verified)
	assert.Equal(t, int64(100), outcomes[0].Result.Simulated)
}

func TestSolveDetectsFalseCycle(t *testing.T) {
	p, err := shaft.ParsePattern(">><<")
	require.NoError(t, err)

	outcomes, err := Solve(Cycle{}, p, []int64{10, 200}, Verify{Enabled: true, MaxPieces: 1000})
	assert.ErrorIs(t, err, ErrVerifyMismatch)
	assert.Len(t, outcomes, 1, "targets before the mismatch are kept")

	_, err = Solve(Cycle{}, p, []int64{200}, Verify{Enabled: false})
	assert.NoError(t, err, "without verification the projected height is returned as is")
}

func TestSolveEmptyPattern(t *testing.T) {
	_, err := Solve(Cycle{}, nil, []int64{1}, Verify{})
	assert.ErrorIs(t, err, shaft.ErrEmptyPattern)
}
