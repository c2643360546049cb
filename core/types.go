// Package core declares the central figure types and sentinel errors.
//
// This file declares Direction, Turn, Vector, Coord, Length, Line, Figure,
// Bounds and the sentinel errors shared by all spiralgen packages.
package core

import "errors"

// Sentinel errors for core figure operations.
var (
	// ErrNilFigure indicates a nil *Figure was passed to an operation.
	ErrNilFigure = errors.New("core: figure is nil")

	// ErrNoLines indicates an operation was invoked on a figure with no lines.
	ErrNoLines = errors.New("core: figure has no lines")

	// ErrNilVisit indicates Walk was given a nil visitor function.
	ErrNilVisit = errors.New("core: visit function is nil")

	// ErrScaleRange indicates a scale below 1 was requested.
	ErrScaleRange = errors.New("core: scale must be at least 1")

	// ErrLengthRange indicates a line length exceeding MaxLength.
	ErrLengthRange = errors.New("core: line length exceeds 30-bit maximum")

	// ErrTooLarge indicates input or bounds exceeding addressable limits.
	ErrTooLarge = errors.New("core: figure exceeds addressable bounds")
)

// Direction is one of the four cartesian headings, cyclically ordered
// clockwise so that (direction + turn) mod 4 yields the next heading.
type Direction uint8

const (
	// Up is the cartesian heading towards +y.
	Up Direction = iota
	// Right is the cartesian heading towards +x.
	Right
	// Down is the cartesian heading towards -y.
	Down
	// Left is the cartesian heading towards -x.
	Left
)

// Turn is a rotational step relative to the current heading.
type Turn int8

const (
	// Clockwise rotates the heading one step clockwise (Up → Right).
	Clockwise Turn = 1
	// AntiClockwise rotates the heading one step anti-clockwise (Up → Left).
	AntiClockwise Turn = -1
)

// Vector is a signed 2D displacement.
type Vector struct {
	X, Y int32
}

// Coord is a signed 2D cartesian coordinate.
type Coord struct {
	X, Y int32
}

// Length is the length of one line segment.
//
// Only 30 bits are usable; values above MaxLength are rejected wherever
// lines enter the system, mirroring the packed on-disk representation
// (2-bit direction + 30-bit length per line).
type Length uint32

// MaxLength is the largest representable line length (2^30 - 1).
const MaxLength Length = 1<<30 - 1

// Line is one directed segment of a figure: a heading plus a length.
//
// A length of 0 only occurs in intermediate unsolved states; every line of
// a solved figure has length ≥ 1.
type Line struct {
	Direction Direction
	Length    Length
}

// Validate reports ErrLengthRange if the line's length exceeds MaxLength.
func (l Line) Validate() error {
	if l.Length > MaxLength {
		return ErrLengthRange
	}

	return nil
}

// Figure is an ordered, fixed-size sequence of lines representing one
// spiral path, plus a solve-progress counter.
//
// By convention the first line always points Up; this fixes the global
// orientation of every figure.
type Figure struct {
	// Lines is the figure's line sequence. Its length never changes after
	// construction; only the individual line lengths are mutated during
	// refinement.
	Lines []Line

	// LinesRemaining counts the lines not yet solved (shortened to their
	// final length). While it is greater than zero, it is the index of the
	// next line that needs solving; 0 means fully solved.
	LinesRemaining uint32
}

// Clone returns a deep copy of the figure.
func (f *Figure) Clone() *Figure {
	if f == nil {
		return nil
	}
	lines := make([]Line, len(f.Lines))
	copy(lines, f.Lines)

	return &Figure{Lines: lines, LinesRemaining: f.LinesRemaining}
}

// TotalLength returns the sum of all line lengths.
// Complexity: O(n).
func (f *Figure) TotalLength() uint64 {
	var sum uint64
	for _, ln := range f.Lines {
		sum += uint64(ln.Length)
	}

	return sum
}

// Validate reports the first precondition violation found: a nil figure,
// an empty line sequence, or a line length above MaxLength.
func (f *Figure) Validate() error {
	if f == nil {
		return ErrNilFigure
	}
	if len(f.Lines) == 0 {
		return ErrNoLines
	}
	for _, ln := range f.Lines {
		if err := ln.Validate(); err != nil {
			return err
		}
	}

	return nil
}

// Bounds is the smallest axis-aligned rectangle containing a path so far.
// The zero value contains exactly the origin (0,0).
type Bounds struct {
	XMin, XMax int32
	YMin, YMax int32
}
