package refine

import (
	"github.com/spiralgen/spiralgen/collide"
	"github.com/spiralgen/spiralgen/core"
)

// growFromStart refines the figure by forcing every line, in forward order,
// to the minimum length of 1, resolving any collision this causes by
// extending the line *before* the colliding position until the path clears.
//
// Unlike shrinkFromEnd it consults the owner-tagged collision probe, so the
// specific collider is known and parallel collisions can be cleared in one
// exactly-computed extension instead of many unit steps.
func growFromStart(f *core.Figure, opts Options) error {
	size := len(f.Lines)
	for i := 0; i < size; i++ {
		if err := setLineLength(f, i, 1); err != nil {
			return err
		}
		f.LinesRemaining = uint32(size - 1 - i)
		if opts.Progress != nil {
			opts.Progress(f)
		}
	}

	return nil
}

// setLineLength sets the line at lineIndex to the requested length and
// repairs any collision this introduces.
//
// The repair runs as an explicit work loop over (targetIndex, targetLength)
// instead of call-stack recursion, so cascades through very long figures
// cannot exhaust the stack. Each iteration sets the target line, probes the
// prefix up to it, and either: retreats one line with a suggested clearing
// length (collision), advances with length 1 (collision just resolved), or
// finishes (back at the top line, no collision).
//
// A collision is never reported for target index 0: the probe only
// considers lines up to the target, and a lone line cannot revisit its own
// cells, so the retreat below never walks off the front of the figure.
func setLineLength(f *core.Figure, lineIndex int, length core.Length) error {
	targetIndex, targetLength := lineIndex, length
	for {
		f.Lines[targetIndex].Length = targetLength
		collider, collided, err := collide.CollidesWith(f, targetIndex)
		if err != nil {
			return err
		}
		switch {
		case collided:
			targetLength = suggestLength(f, targetIndex, collider)
			targetIndex--
		case targetIndex != lineIndex:
			targetIndex++
			targetLength = 1
		default:
			return nil
		}
	}
}

// suggestLength computes the length the line before current should be
// extended to so that the line at current clears the collider.
//
// Perpendicular previous/collider pairs have no single-axis relationship to
// exploit, so they get a unit extension. Parallel pairs are resolved with
// closed-form rules over the two lines' origins and the collider's end
// along the shared axis; the result is only trusted when it actually grows
// the previous line, otherwise the unit fallback applies.
func suggestLength(f *core.Figure, current, colliderIndex int) core.Length {
	previous := f.Lines[current-1]
	collider := f.Lines[colliderIndex]
	// Directions on different axes: perpendicular, extend by one unit.
	if previous.Direction%2 != collider.Direction%2 {
		return previous.Length + 1
	}

	previousOrigin, colliderOrigin := lineOrigins(f, current-1, colliderIndex)
	suggested := resolveParallel(previous, collider, previousOrigin, colliderOrigin)
	if suggested <= int64(previous.Length) || suggested > int64(core.MaxLength) {
		return previous.Length + 1
	}

	return core.Length(suggested)
}

// resolveParallel returns the clearing length for a previous line parallel
// to its collider: far enough along the shared axis that the line following
// previous is pushed one unit past the collider's occupied extent.
func resolveParallel(previous, collider core.Line, previousOrigin, colliderOrigin core.Coord) int64 {
	colliderEnd := colliderOrigin.Move(collider.Direction, collider.Length)
	length := int64(collider.Length)

	switch {
	case previous.Direction == core.Up && collider.Direction == core.Up:
		return int64(colliderOrigin.Y-previousOrigin.Y) + length + 1
	case previous.Direction == core.Up && collider.Direction == core.Down:
		return int64(colliderEnd.Y-previousOrigin.Y) + length + 1
	case previous.Direction == core.Down && collider.Direction == core.Up:
		return int64(previousOrigin.Y-colliderEnd.Y) + length + 1
	case previous.Direction == core.Down && collider.Direction == core.Down:
		return int64(previousOrigin.Y-colliderOrigin.Y) + length + 1
	case previous.Direction == core.Right && collider.Direction == core.Right:
		return int64(colliderOrigin.X-previousOrigin.X) + length + 1
	case previous.Direction == core.Right && collider.Direction == core.Left:
		return int64(colliderEnd.X-previousOrigin.X) + length + 1
	case previous.Direction == core.Left && collider.Direction == core.Right:
		return int64(previousOrigin.X-colliderEnd.X) + length + 1
	default: // Left/Left
		return int64(previousOrigin.X-colliderOrigin.X) + length + 1
	}
}

// lineOrigins recovers the origin coordinates of lines a and b with a
// vertices-only walk: the k-th emitted vertex is exactly the origin of line
// k (the start point is line 0's origin, and each line begins where the
// one before it ended). This correspondence requires every length ≥ 1,
// which holds throughout this policy. Coordinates are in the walk's
// translated non-negative space, which is fine: the resolution rules only
// ever use differences.
func lineOrigins(f *core.Figure, a, b int) (originA, originB core.Coord) {
	vertex := 0
	_ = core.Walk(f, 1, true, func(p core.Coord, _ int) bool {
		if vertex == a {
			originA = p
		}
		if vertex == b {
			originB = p
		}
		vertex++
		return vertex <= a || vertex <= b
	})

	return originA, originB
}
