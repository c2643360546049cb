package refine

import (
	"github.com/spiralgen/spiralgen/collide"
	"github.com/spiralgen/spiralgen/core"
)

// shrinkFromEnd refines the figure by attempting to shrink every line from
// its safe default length to the shortest collision-free length, starting
// from the last line and working backwards. Line 0 is fixed by convention
// and never shortened.
//
// Termination: the figure's total length is a non-increasing integer
// bounded below, and re-attempts only continue while shrinks keep
// occurring, so the outer loop revisits each index finitely often.
func shrinkFromEnd(f *core.Figure, opts Options) error {
	last := len(f.Lines) - 1
	for i := last; i > 0; i-- {
		if err := attemptShorten(f, i, last); err != nil {
			return err
		}
		// Line 0 never needs solving, hence the -1.
		f.LinesRemaining = uint32(i - 1)
		if opts.Progress != nil {
			opts.Progress(f)
		}
	}

	return nil
}

// attemptShorten tries to shorten the line at index l: it sets the length
// to 1 (best case first) and grows back one unit at a time until the whole
// figure stops colliding or the original, known collision-free, length is
// restored. If the line did shrink, every line from max down to l is
// re-attempted: a shrink can expose slack that lets previously-fixed lines
// shrink further.
//
// A failed shrink is not an error; only probe failures propagate, with the
// line restored to its original length.
func attemptShorten(f *core.Figure, l, max int) error {
	line := &f.Lines[l]
	// Only lines longer than 1 can shrink.
	if line.Length <= 1 {
		return nil
	}

	original := line.Length
	line.Length = 1
	collided, err := collide.Collides(f)
	if err != nil {
		line.Length = original
		return err
	}
	for collided && line.Length < original {
		line.Length++
		if collided, err = collide.Collides(f); err != nil {
			line.Length = original
			return err
		}
	}

	if line.Length < original {
		for i := max; i >= l; i-- {
			if err = attemptShorten(f, i, max); err != nil {
				return err
			}
		}
	}

	return nil
}
