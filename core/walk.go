package core

// VisitFunc receives one visited point and the index of the line being
// traversed. Returning false stops the walk immediately.
type VisitFunc func(p Coord, line int) bool

// Walk traces the figure's rendered path at the given scale, invoking visit
// once per visited point.
//
// The walk starts at the origin implied by the figure's bounds (the
// translation that makes every visited coordinate non-negative) and emits
// the start point first, attributed to line 0. Then, for each line, it
// emits either a single point at the line's far end (verticesOnly) or one
// point per unit of scaled length (!verticesOnly, as needed by per-cell
// collision detection and raster rendering). Zero-length lines emit no
// points.
//
// Walk is the single traversal primitive shared by the collision oracle and
// the raster/vector render backends.
//
// Returns ErrNilFigure / ErrNoLines / ErrNilVisit / ErrScaleRange on
// precondition violations.
//
// Complexity: O(n) visits for vertices, O(total scaled length) otherwise.
func Walk(f *Figure, scale int, verticesOnly bool, visit VisitFunc) error {
	if visit == nil {
		return ErrNilVisit
	}
	bounds, err := FigureBounds(f, scale)
	if err != nil {
		return err
	}

	location := bounds.Origin()
	if !visit(location, 0) {
		return nil
	}
	for i, ln := range f.Lines {
		v := ln.Direction.Vector()
		steps := int64(ln.Length) * int64(scale)
		if verticesOnly {
			if steps == 0 {
				continue
			}
			location.X += v.X * int32(steps)
			location.Y += v.Y * int32(steps)
			if !visit(location, i) {
				return nil
			}
			continue
		}
		for s := int64(0); s < steps; s++ {
			location.X += v.X
			location.Y += v.Y
			if !visit(location, i) {
				return nil
			}
		}
	}

	return nil
}
