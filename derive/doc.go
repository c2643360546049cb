// Package derive converts a byte sequence into an unrefined spiral figure:
// the direction sequence plus a collision-free "safe" starting length for
// every line.
//
// What:
//
//   - Derive reads the input bit-by-bit, most-significant bit first. The
//     first line is always Up with length 1, fixing global orientation; each
//     subsequent bit turns the heading (0 → clockwise, 1 → anti-clockwise)
//     and receives a safe length: the distance from the current end-point to
//     the nearest established bound on the new heading's axis, plus 1.
//
// Why:
//
//   - A line that never travels into visited territory beyond the observed
//     extent cannot overlap anything drawn before it, so the derived figure
//     is self-avoiding by construction, at the cost of wasting space.
//     Refinement (package refine) then shrinks it.
//
// Complexity:
//
//   - Derive: O(n) time and memory over n = 8×len(data)+1 lines.
//
// Options:
//
//   - Options.MaxLines: cap on the number of lines generated (0 = no cap).
//
// Errors:
//
//   - core.ErrTooLarge: input longer than MaxBytes, whose figure could
//     exceed the 32-bit plotting grid.
package derive
