package refine

import "github.com/spiralgen/spiralgen/core"

// Refine mutates the figure in place, shortening its lines with the policy
// selected by opts.Method while keeping the path self-avoiding. On success
// every line has length ≥ 1 and LinesRemaining is 0.
//
// Refine must not be invoked on one figure from multiple goroutines.
//
// Returns core sentinels on precondition violations and ErrUnimplemented
// for policies without a complete implementation.
func Refine(f *core.Figure, opts Options) error {
	if f == nil {
		return core.ErrNilFigure
	}
	if len(f.Lines) == 0 {
		return core.ErrNoLines
	}

	switch opts.Method {
	case ShrinkFromEnd:
		return shrinkFromEnd(f, opts)
	case GrowFromStart:
		return growFromStart(f, opts)
	case Evolve:
		return evolve(f, opts)
	default:
		return ErrUnimplemented
	}
}
