package refine

import (
	"encoding/binary"

	"github.com/spiralgen/spiralgen/collide"
	"github.com/spiralgen/spiralgen/core"
)

// The evolutionary policy is experimental. A candidate solution encodes all
// line lengths of a figure as one fixed-width bit string (32 bits per line,
// of which 30 are significant); fitness is 0 for colliding or degenerate
// figures and 1/(width×height) of the bounds otherwise, rewarding compact
// solutions; candidates recombine by uniform per-bit crossover and mutate
// by independent per-bit flips.
//
// The genetic operators below are complete and tested. What is not settled
// is the policy's termination contract: when a population counts as
// converged, and what to do when no collision-free candidate emerges within
// the generation budget. Until that is specified, selecting Evolve reports
// ErrUnimplemented rather than silently doing nothing.

// evolve is the Evolve policy entry point.
func evolve(f *core.Figure, opts Options) error {
	if opts.Progress != nil {
		opts.Progress(f)
	}

	return ErrUnimplemented
}

// candidate is one member of the population: the packed length genome.
type candidate struct {
	genes []byte
}

// encodeCandidate packs the figure's line lengths into a genome, 4 bytes
// per line, big-endian.
func encodeCandidate(f *core.Figure) candidate {
	genes := make([]byte, 4*len(f.Lines))
	for i, ln := range f.Lines {
		binary.BigEndian.PutUint32(genes[4*i:], uint32(ln.Length))
	}

	return candidate{genes: genes}
}

// applyCandidate writes the genome's lengths into the figure. Each decoded
// value is masked to the 30 significant bits.
func applyCandidate(c candidate, f *core.Figure) {
	for i := range f.Lines {
		raw := binary.BigEndian.Uint32(c.genes[4*i:])
		f.Lines[i].Length = core.Length(raw) & core.MaxLength
	}
}

// fitness scores the candidate against the figure's line directions:
// 0 for any degenerate (zero-length line) or colliding figure, otherwise
// the reciprocal of the bounding-box area, so tighter figures score higher.
//
// The figure is restored before returning; scoring has no lasting effect.
func fitness(c candidate, f *core.Figure) (float64, error) {
	saved := encodeCandidate(f)
	defer applyCandidate(saved, f)

	applyCandidate(c, f)
	for _, ln := range f.Lines {
		if ln.Length == 0 {
			return 0, nil
		}
	}
	collided, err := collide.Collides(f)
	if err != nil {
		return 0, err
	}
	if collided {
		return 0, nil
	}
	bounds, err := core.FigureBounds(f, 1)
	if err != nil {
		return 0, err
	}
	width, height := bounds.Size()

	return 1 / (float64(width) * float64(height)), nil
}

// crossover recombines two parents bit-by-bit: each bit of the child is
// drawn from either parent with equal probability (uniform crossover).
func crossover(rng randSource, a, b candidate) candidate {
	genes := make([]byte, len(a.genes))
	for i := range genes {
		mask := byte(rng.Intn(256))
		genes[i] = a.genes[i]&mask | b.genes[i]&^mask
	}

	return candidate{genes: genes}
}

// mutate flips each bit of the candidate independently with probability
// rate, in place.
func mutate(rng randSource, c candidate, rate float64) {
	for i := range c.genes {
		for bit := 0; bit < 8; bit++ {
			if rng.Float64() < rate {
				c.genes[i] ^= 1 << uint(bit)
			}
		}
	}
}

// newPopulation seeds size candidates from the figure: the first is the
// figure's own genome, the rest are mutated copies of it.
func newPopulation(rng randSource, f *core.Figure, size int, rate float64) []candidate {
	population := make([]candidate, size)
	base := encodeCandidate(f)
	population[0] = base
	for i := 1; i < size; i++ {
		genes := make([]byte, len(base.genes))
		copy(genes, base.genes)
		population[i] = candidate{genes: genes}
		mutate(rng, population[i], rate)
	}

	return population
}

// randSource is the subset of *math/rand.Rand the genetic operators use;
// narrowed for testability.
type randSource interface {
	Intn(n int) int
	Float64() float64
}
