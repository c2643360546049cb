package core

// Extend grows the bounds, if needed, to contain c.
// Complexity: O(1).
func (b *Bounds) Extend(c Coord) {
	if c.X > b.XMax {
		b.XMax = c.X
	} else if c.X < b.XMin {
		b.XMin = c.X
	}
	if c.Y > b.YMax {
		b.YMax = c.Y
	} else if c.Y < b.YMin {
		b.YMin = c.Y
	}
}

// Size returns the width and height of the bounds.
// From x_min to x_max there are x_max-x_min+1 distinct columns, hence the +1.
// Complexity: O(1).
func (b Bounds) Size() (width, height uint32) {
	return uint32(b.XMax-b.XMin) + 1, uint32(b.YMax-b.YMin) + 1
}

// Origin returns the translation that maps the bounds' minimum corner to
// (0,0), i.e. the starting coordinate from which a walk of the bounded path
// stays entirely in non-negative space.
// Complexity: O(1).
func (b Bounds) Origin() Coord {
	return Coord{X: -b.XMin, Y: -b.YMin}
}

// FigureBounds walks every line endpoint of the figure from a zero origin,
// with line lengths multiplied by scale, and folds the minimum and maximum
// coordinates seen. The scale parameter lets callers size grids for
// sub-pixel vs multi-pixel rasterization without duplicating the fold.
//
// Returns ErrNilFigure / ErrNoLines / ErrScaleRange on precondition
// violations.
//
// Complexity: O(n) over n lines.
func FigureBounds(f *Figure, scale int) (Bounds, error) {
	if f == nil {
		return Bounds{}, ErrNilFigure
	}
	if len(f.Lines) == 0 {
		return Bounds{}, ErrNoLines
	}
	if scale < 1 {
		return Bounds{}, ErrScaleRange
	}

	var (
		location Coord
		bounds   Bounds
	)
	for _, ln := range f.Lines {
		location = location.Move(ln.Direction, ln.Length*Length(scale))
		bounds.Extend(location)
	}

	return bounds, nil
}
