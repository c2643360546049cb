// Package refine declares the policy selector, options and sentinel errors
// for figure refinement.
package refine

import (
	"errors"

	"github.com/spiralgen/spiralgen/core"
)

// ErrUnimplemented indicates the selected refinement method has no complete
// implementation. It is a distinct failure kind: callers can tell it apart
// from precondition violations and size-limit failures with errors.Is.
var ErrUnimplemented = errors.New("refine: refinement method not implemented")

// Method selects a refinement policy.
type Method uint8

const (
	// ShrinkFromEnd is the default policy: backwards iteration, unit probes.
	ShrinkFromEnd Method = iota
	// GrowFromStart is the forward policy with owner-tagged collision
	// resolution.
	GrowFromStart
	// Evolve is the experimental population-based policy.
	Evolve
)

// ProgressFunc observes refinement progress. It is invoked synchronously on
// the refining goroutine each time a line is solved, with the figure in a
// consistent state. It must not mutate the figure.
type ProgressFunc func(f *core.Figure)

// Options configures Refine.
//
// The zero value selects ShrinkFromEnd with no progress callback. The
// population fields only apply to the Evolve method.
type Options struct {
	// Method selects the refinement policy.
	Method Method

	// Progress, if non-nil, is called after each solved line.
	Progress ProgressFunc

	// Seed feeds the Evolve policy's RNG. 0 selects a fixed default seed,
	// keeping runs reproducible.
	Seed int64

	// PopulationSize is the number of candidates the Evolve policy keeps.
	PopulationSize int

	// Generations bounds the Evolve policy's iteration count.
	Generations int

	// MutationRate is the per-bit flip probability in Evolve's mutation.
	MutationRate float64
}

// DefaultOptions returns the default refinement options:
// ShrinkFromEnd, no callback, and modest Evolve parameters.
func DefaultOptions() Options {
	return Options{
		Method:         ShrinkFromEnd,
		PopulationSize: 32,
		Generations:    256,
		MutationRate:   0.01,
	}
}
