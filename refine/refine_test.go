package refine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spiralgen/spiralgen/collide"
	"github.com/spiralgen/spiralgen/core"
	"github.com/spiralgen/spiralgen/derive"
	"github.com/spiralgen/spiralgen/refine"
)

// deriveFrom builds the unrefined figure for the given bytes.
func deriveFrom(t *testing.T, data []byte) *core.Figure {
	t.Helper()
	fig, err := derive.Derive(data, derive.DefaultOptions())
	require.NoError(t, err)

	return fig
}

// requireSolved asserts the post-refinement invariant: collision-free harvest
// with every length ≥ 1 and nothing left to solve.
func requireSolved(t *testing.T, fig *core.Figure) {
	t.Helper()
	collided, err := collide.Collides(fig)
	require.NoError(t, err)
	require.False(t, collided, "refined figure collides")
	for i, ln := range fig.Lines {
		require.GreaterOrEqual(t, ln.Length, core.Length(1), "line %d", i)
	}
	require.Equal(t, uint32(0), fig.LinesRemaining)
}

//----------------------------------------------------------------------------//
// ShrinkFromEnd Tests
//----------------------------------------------------------------------------//

// TestShrinkFromEndWorkedExample verifies the 0x6D figure is reduced to
// all-length-1 lines without introducing a collision.
func TestShrinkFromEndWorkedExample(t *testing.T) {
	fig := deriveFrom(t, []byte{0x6D})

	require.NoError(t, refine.Refine(fig, refine.DefaultOptions()))
	requireSolved(t, fig)
	for i, ln := range fig.Lines {
		require.Equal(t, core.Length(1), ln.Length, "line %d", i)
	}
}

// TestShrinkFromEndMonotonic verifies refinement never increases the total
// path length.
func TestShrinkFromEndMonotonic(t *testing.T) {
	for _, data := range [][]byte{
		{0x6D},
		{0x00, 0xFF},
		[]byte("monotonic"),
	} {
		fig := deriveFrom(t, data)
		before := fig.TotalLength()

		require.NoError(t, refine.Refine(fig, refine.DefaultOptions()))
		requireSolved(t, fig)
		require.LessOrEqual(t, fig.TotalLength(), before, "input %x", data)
	}
}

// TestShrinkFromEndProgress verifies the callback fires once per solved
// line, descending to zero remaining.
func TestShrinkFromEndProgress(t *testing.T) {
	fig := deriveFrom(t, []byte{0x6D})

	var remaining []uint32
	opts := refine.DefaultOptions()
	opts.Progress = func(f *core.Figure) {
		remaining = append(remaining, f.LinesRemaining)
	}
	require.NoError(t, refine.Refine(fig, opts))

	require.Len(t, remaining, len(fig.Lines)-1)
	require.Equal(t, uint32(0), remaining[len(remaining)-1])
	for i := 1; i < len(remaining); i++ {
		require.Less(t, remaining[i], remaining[i-1])
	}
}

// TestShrinkFromEndIdempotent verifies a second run changes nothing.
func TestShrinkFromEndIdempotent(t *testing.T) {
	fig := deriveFrom(t, []byte{0x6D, 0xA5})
	require.NoError(t, refine.Refine(fig, refine.DefaultOptions()))
	solved := fig.Clone()

	require.NoError(t, refine.Refine(fig, refine.DefaultOptions()))
	require.Equal(t, solved, fig)
}

//----------------------------------------------------------------------------//
// GrowFromStart Tests
//----------------------------------------------------------------------------//

// TestGrowFromStartSolves verifies the forward policy satisfies the same
// post-refinement invariant as the default policy.
func TestGrowFromStartSolves(t *testing.T) {
	for _, data := range [][]byte{
		{0x6D},
		{0x00},
		{0xFF, 0x0F},
		[]byte("grow"),
	} {
		fig := deriveFrom(t, data)
		opts := refine.DefaultOptions()
		opts.Method = refine.GrowFromStart

		require.NoError(t, refine.Refine(fig, opts))
		requireSolved(t, fig)
	}
}

// TestGrowFromStartIdempotent verifies the policy leaves an already-minimal
// figure untouched.
func TestGrowFromStartIdempotent(t *testing.T) {
	fig := deriveFrom(t, []byte{0x6D})
	require.NoError(t, refine.Refine(fig, refine.DefaultOptions()))
	requireSolved(t, fig)
	solved := fig.Clone()

	opts := refine.DefaultOptions()
	opts.Method = refine.GrowFromStart
	require.NoError(t, refine.Refine(fig, opts))
	require.Equal(t, solved.Lines, fig.Lines)
}

// TestGrowFromStartProgress verifies one callback per line, forward order.
func TestGrowFromStartProgress(t *testing.T) {
	fig := deriveFrom(t, []byte{0x0F})

	calls := 0
	opts := refine.DefaultOptions()
	opts.Method = refine.GrowFromStart
	opts.Progress = func(*core.Figure) { calls++ }
	require.NoError(t, refine.Refine(fig, opts))
	require.Equal(t, len(fig.Lines), calls)
}

//----------------------------------------------------------------------------//
// Dispatcher Tests
//----------------------------------------------------------------------------//

// TestRefinePreconditions verifies nil/empty figures are rejected with the
// core sentinels.
func TestRefinePreconditions(t *testing.T) {
	require.ErrorIs(t, refine.Refine(nil, refine.DefaultOptions()), core.ErrNilFigure)
	require.ErrorIs(t, refine.Refine(&core.Figure{}, refine.DefaultOptions()), core.ErrNoLines)
}

// TestRefineEvolveUnimplemented verifies the experimental policy reports
// its distinct not-implemented kind instead of silently no-op-ing.
func TestRefineEvolveUnimplemented(t *testing.T) {
	fig := deriveFrom(t, []byte{0x6D})
	opts := refine.DefaultOptions()
	opts.Method = refine.Evolve

	require.ErrorIs(t, refine.Refine(fig, opts), refine.ErrUnimplemented)
}

// TestRefineUnknownMethod verifies unknown selectors are rejected the same
// way as unimplemented ones.
func TestRefineUnknownMethod(t *testing.T) {
	fig := deriveFrom(t, []byte{0x6D})
	opts := refine.DefaultOptions()
	opts.Method = refine.Method(99)

	require.ErrorIs(t, refine.Refine(fig, opts), refine.ErrUnimplemented)
}
