// Package derive builds unrefined figures from binary input.
package derive

import "github.com/spiralgen/spiralgen/core"

// MaxBytes is the largest input that can begin a figure. It guarantees no
// derived line can exceed the maximum bounds of the 32-bit grid the figure
// is plotted in: (((2^32 - 1) × 2) - 1) ÷ 8, rounded down.
const MaxBytes = ((1<<32-1)*2 - 1) / 8

// Options configures Derive.
type Options struct {
	// MaxLines caps the number of lines in the generated figure. 0 means
	// the maximum possible for the input (8×len+1); values above that
	// maximum are ignored.
	MaxLines uint32
}

// DefaultOptions returns the default derivation options: no line cap.
func DefaultOptions() Options {
	return Options{}
}

// turnFromBit maps one input bit to a rotational step.
func turnFromBit(bit byte) core.Turn {
	if bit == 0 {
		return core.Clockwise
	}

	return core.AntiClockwise
}

// safeLength returns a length for a line headed in direction d from
// location that cannot overlap the path drawn so far: the distance to the
// established bound on the heading's axis, plus 1.
func safeLength(location core.Coord, d core.Direction, bounds core.Bounds) core.Length {
	var distance int32
	switch d % 4 {
	case core.Up:
		distance = bounds.YMax - location.Y
	case core.Right:
		distance = bounds.XMax - location.X
	case core.Down:
		distance = location.Y - bounds.YMin
	default: // Left
		distance = location.X - bounds.XMin
	}
	if distance < 0 {
		distance = -distance
	}

	return core.Length(distance) + 1
}

// Derive converts data into an unrefined figure of 8×len(data)+1 lines
// (fewer if Options.MaxLines caps it). Empty input yields a single-line
// figure. The result is deterministic, collision-free, and typically far
// from minimal; hand it to a refinement strategy to shrink it.
//
// Returns core.ErrTooLarge for inputs longer than MaxBytes, before any
// allocation is made.
//
// Complexity: O(n) time and memory.
func Derive(data []byte, opts Options) (*core.Figure, error) {
	if uint64(len(data)) > MaxBytes {
		return nil, core.ErrTooLarge
	}

	size := uint64(len(data))*8 + 1
	if opts.MaxLines != 0 && uint64(opts.MaxLines) < size {
		size = uint64(opts.MaxLines)
	}
	lines := make([]core.Line, size)

	// The first line is always an up line, for orientation purposes.
	facing := core.Up
	lines[0] = core.Line{Direction: facing, Length: 1}
	location := core.Coord{}.Move(facing, 1)
	var bounds core.Bounds
	bounds.Extend(location)

	index := 1
	for _, b := range data {
		for bit := 7; bit >= 0; bit-- {
			if index >= len(lines) {
				break
			}
			facing = facing.Turn(turnFromBit(b >> uint(bit) & 1))
			length := safeLength(location, facing, bounds)
			lines[index] = core.Line{Direction: facing, Length: length}
			location = location.Move(facing, length)
			bounds.Extend(location)
			index++
		}
	}

	return &core.Figure{
		Lines: lines,
		// Line 0 never needs solving.
		LinesRemaining: uint32(len(lines) - 1),
	}, nil
}
