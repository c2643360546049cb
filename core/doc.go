// Package core defines the fundamental types of a spiral figure (Direction,
// Turn, Vector, Coord, Line, Figure and Bounds) and the single shared
// path-traversal primitive, Walk.
//
// What:
//
//   - Direction is one of the four cartesian headings {Up, Right, Down, Left},
//     cyclically ordered so a Turn composes with it as (direction+turn) mod 4.
//   - Line is a heading plus a length; Figure is an ordered, fixed-size
//     sequence of lines with a LinesRemaining solve-progress counter.
//   - Bounds tracks the smallest axis-aligned rectangle containing the path,
//     either incrementally (Extend) or by a full walk (FigureBounds).
//   - Walk traces a figure's rendered path at a given scale and invokes a
//     visitor per point, stoppable early. It is the one traversal primitive
//     reused by collision detection, raster rendering and vector rendering.
//
// Why:
//
//   - Every higher component (collide, derive, refine, render) is built on
//     these primitives; implementing the walk once keeps their geometric
//     semantics identical by construction.
//
// Complexity:
//
//   - Turn/Move/Extend:    O(1).
//   - FigureBounds:        O(n) over n lines.
//   - Walk (vertices):     O(n) visits.
//   - Walk (full):         O(total scaled path length) visits.
//
// Errors:
//
//   - ErrNilFigure:   a nil *Figure was passed to a core operation.
//   - ErrNoLines:     the figure has no lines.
//   - ErrNilVisit:    Walk was given a nil visitor.
//   - ErrScaleRange:  a scale below 1 was requested.
//   - ErrLengthRange: a line length exceeds the 30-bit maximum.
//   - ErrTooLarge:    a figure or grid would exceed addressable bounds.
//
// Concurrency: none. A Figure is owned by exactly one logical call chain;
// no core operation spawns goroutines or retains state across calls.
package core
