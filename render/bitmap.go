package render

import "github.com/spiralgen/spiralgen/core"

// renderScale doubles the figure's natural resolution so parallel path
// segments one unit apart keep a blank pixel between them.
const renderScale = 2

// RenderBitmap rasterizes the figure.
//
// Every point of a full-plot walk at renderScale is set except the second
// visited point, which is skipped to notch the figure's start and
// orientation into the image. The bitmap's y axis grows downwards, so walk
// coordinates are flipped on the way in.
//
// Returns ErrNilFigure / ErrNoLines on precondition violations.
//
// Complexity: O(total scaled path length).
func RenderBitmap(f *core.Figure) (*Bitmap, error) {
	bounds, err := core.FigureBounds(f, renderScale)
	if err != nil {
		return nil, err
	}
	width, height := bounds.Size()
	bitmap := newBitmap(width, height)

	visited := 0
	err = core.Walk(f, renderScale, false, func(p core.Coord, _ int) bool {
		if visited != 1 {
			bitmap.Set(uint32(p.X), height-1-uint32(p.Y))
		}
		visited++
		return true
	})
	if err != nil {
		return nil, err
	}

	return bitmap, nil
}
