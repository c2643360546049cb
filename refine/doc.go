// Package refine shrinks the line lengths of a derived figure towards the
// minimum while preserving the no-self-intersection invariant.
//
// What:
//
//   - Refine dispatches to one of three interchangeable policies selected
//     via Options.Method:
//
//     ShrinkFromEnd (default): iterate from the last line backwards; for
//     each line try length 1 and grow by one unit until the whole figure
//     stops colliding, recursing over later lines whenever a shrink exposes
//     new slack.
//
//     GrowFromStart: iterate forwards, forcing each line to length 1 and
//     resolving collisions by extending the line before the current one,
//     using the owner-tagged collision probe to compute the exact clearing
//     distance for parallel colliders (perpendicular colliders fall back to
//     unit extension).
//
//     Evolve: experimental population-based search; its genetic operators
//     are implemented but its termination contract is not, so selecting it
//     reports ErrUnimplemented.
//
// Why:
//
//   - Derived safe lengths are correct but wasteful; the refinement trade
//     space is probe count (ShrinkFromEnd issues many cheap boolean probes)
//     versus bookkeeping (GrowFromStart issues fewer, owner-tagged probes).
//
// Guarantees (ShrinkFromEnd and GrowFromStart):
//
//   - The refined figure never self-intersects and every length is ≥ 1.
//   - ShrinkFromEnd never increases the figure's total length.
//   - Re-running a policy on an already-minimal figure changes nothing.
//
// Complexity:
//
//   - ShrinkFromEnd: O(probes × path length); probes bounded because total
//     length is a decreasing, integer quantity bounded below.
//   - GrowFromStart: O(adjustments × path length); each adjustment strictly
//     grows an earlier line.
//
// Errors:
//
//   - core.ErrNilFigure / core.ErrNoLines: precondition violations.
//   - ErrUnimplemented: the selected policy is not (yet) implemented.
//
// Concurrency: none. The figure is mutated in place by exactly one logical
// call chain; the optional progress callback runs synchronously on the same
// goroutine and must not mutate the figure.
package refine
