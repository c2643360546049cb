package render

import (
	"bytes"
	"fmt"

	"github.com/spiralgen/spiralgen/core"
)

// EncodeSVG serializes the figure as a vector image: one black polyline
// over a white background, with a dot marking the figure's start point.
// The coordinate space matches the raster backends (renderScale units per
// path unit, y flipped so +y in figure space is up).
//
// Returns ErrNilFigure / ErrNoLines on precondition violations.
//
// Complexity: O(n) over n lines.
func EncodeSVG(f *core.Figure) ([]byte, error) {
	bounds, err := core.FigureBounds(f, renderScale)
	if err != nil {
		return nil, err
	}
	width, height := bounds.Size()

	var points bytes.Buffer
	var start core.Coord
	first := true
	err = core.Walk(f, renderScale, true, func(p core.Coord, _ int) bool {
		if first {
			start = p
			first = false
		} else {
			points.WriteByte(' ')
		}
		fmt.Fprintf(&points, "%d,%d", p.X, int32(height-1)-p.Y)
		return true
	})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n",
		width, height, width, height)
	fmt.Fprintf(&buf, "  <rect width=\"%d\" height=\"%d\" fill=\"white\"/>\n", width, height)
	fmt.Fprintf(&buf,
		"  <polyline points=\"%s\" fill=\"none\" stroke=\"black\" stroke-width=\"1\"/>\n",
		points.String())
	fmt.Fprintf(&buf, "  <circle cx=\"%d\" cy=\"%d\" r=\"1\" fill=\"black\"/>\n",
		start.X, int32(height-1)-start.Y)
	buf.WriteString("</svg>\n")

	return buf.Bytes(), nil
}
