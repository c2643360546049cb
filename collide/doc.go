// Package collide answers whether a figure's rasterized path revisits a
// coordinate it has already occupied.
//
// What:
//
//   - Collides probes a whole figure with a plain occupancy grid and reports
//     the first self-intersection.
//   - CollidesWith probes only the prefix of the figure up to a given line,
//     tagging every occupied cell with the line that owns it, so the caller
//     learns which prior line was hit. Collision-resolving refinement
//     strategies need this extra context.
//
// Why:
//
//   - Refinement mutates line lengths and must re-validate the no-self-
//     intersection invariant after every probe; the oracle is the single
//     authority on that invariant.
//
// Complexity:
//
//   - Both probes: O(path length) time, O(bounding-box area) memory.
//     Grids are allocated per probe and discarded immediately; nothing is
//     cached across probes, keeping the invariant trivially correct while
//     the figure mutates between calls.
//
// Errors:
//
//   - core.ErrNilFigure / core.ErrNoLines: precondition violations.
//   - core.ErrTooLarge: the bounding-box area exceeds the addressable grid
//     limit, so the occupancy grid cannot be sized.
//   - ErrLineIndex: CollidesWith was given an out-of-range line index.
package collide
