// Package codec serializes figures to and from the compact binary sxbp
// format.
//
// What: Encode writes a figure as a fixed 26-byte big-endian header (magic,
// format version, line count, reserved words, lines-remaining counter)
// followed by one packed 32-bit word per line: the direction in the top two
// bits and the length in the remaining thirty. Decode is the exact inverse
// and validates every field before constructing a figure.
//
// Why: figure refinement is expensive while loading is cheap, so solved
// figures are stored once and re-rendered many times. The lines-remaining
// counter is persisted so partially refined figures can be saved and
// resumed.
//
// Compatibility: Decode accepts any file whose major version matches and
// whose minor version is at least the minimum this package understands.
//
// Errors: ErrBadData for malformed input (short, wrong magic, truncated
// body), ErrVersion for well-formed input written by an incompatible
// format revision.
//
// Complexity: Encode and Decode are both O(n) in the line count.
package codec
