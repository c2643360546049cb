package render_test

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"

	"github.com/spiralgen/spiralgen/core"
	"github.com/spiralgen/spiralgen/derive"
	"github.com/spiralgen/spiralgen/refine"
	"github.com/spiralgen/spiralgen/render"
)

// unitLine is the smallest renderable figure: one Up(1) line. At scale 2 it
// rasterizes to a 1×3 column with the middle pixel notched out.
func unitLine() *core.Figure {
	return &core.Figure{Lines: []core.Line{{Direction: core.Up, Length: 1}}}
}

// solved derives and refines a figure for the given bytes.
func solved(t *testing.T, data []byte) *core.Figure {
	t.Helper()
	fig, err := derive.Derive(data, derive.DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, refine.Refine(fig, refine.DefaultOptions()))

	return fig
}

//----------------------------------------------------------------------------//
// Bitmap Tests
//----------------------------------------------------------------------------//

// TestRenderBitmapUnitLine verifies the full raster contract on a
// hand-traced figure: doubling scale, the start notch and the y flip.
func TestRenderBitmapUnitLine(t *testing.T) {
	bm, err := render.RenderBitmap(unitLine())
	require.NoError(t, err)

	require.Equal(t, uint32(1), bm.Width)
	require.Equal(t, uint32(3), bm.Height)
	// Top pixel is the line's end, bottom pixel the start; the notch sits
	// between them.
	require.Equal(t, []bool{true, false, true}, bm.Pixels)
}

// TestRenderBitmapNotch verifies exactly one walk point is left unplotted
// on a larger figure.
func TestRenderBitmapNotch(t *testing.T) {
	fig := solved(t, []byte{0x6D})

	points := 0
	require.NoError(t, core.Walk(fig, 2, false, func(core.Coord, int) bool {
		points++
		return true
	}))

	bm, err := render.RenderBitmap(fig)
	require.NoError(t, err)
	set := 0
	for _, p := range bm.Pixels {
		if p {
			set++
		}
	}
	require.Equal(t, points-1, set)
}

// TestRenderBitmapPreconditions verifies nil/empty figures are rejected.
func TestRenderBitmapPreconditions(t *testing.T) {
	_, err := render.RenderBitmap(nil)
	require.ErrorIs(t, err, core.ErrNilFigure)

	_, err = render.RenderBitmap(&core.Figure{})
	require.ErrorIs(t, err, core.ErrNoLines)
}

//----------------------------------------------------------------------------//
// Raster Encoder Tests
//----------------------------------------------------------------------------//

// TestEncodePBM verifies the exact P4 byte stream for the unit line.
func TestEncodePBM(t *testing.T) {
	bm, err := render.RenderBitmap(unitLine())
	require.NoError(t, err)

	want := append([]byte("P4\n1\n3\n"), 0x80, 0x00, 0x80)
	require.Equal(t, want, render.EncodePBM(bm))
}

// TestEncodePBMRowPadding verifies rows wider than 8 pixels pack MSB-first
// across byte boundaries.
func TestEncodePBMRowPadding(t *testing.T) {
	bm := &render.Bitmap{Width: 9, Height: 1, Pixels: make([]bool, 9)}
	bm.Set(0, 0)
	bm.Set(7, 0)
	bm.Set(8, 0)

	want := append([]byte("P4\n9\n1\n"), 0x81, 0x80)
	require.Equal(t, want, render.EncodePBM(bm))
}

// TestEncodePNG verifies the PNG stream decodes back to the same raster.
func TestEncodePNG(t *testing.T) {
	bm, err := render.RenderBitmap(solved(t, []byte{0x6D}))
	require.NoError(t, err)

	data, err := render.EncodePNG(bm)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	require.Equal(t, int(bm.Width), img.Bounds().Dx())
	require.Equal(t, int(bm.Height), img.Bounds().Dy())
	for y := uint32(0); y < bm.Height; y++ {
		for x := uint32(0); x < bm.Width; x++ {
			r, _, _, _ := img.At(int(x), int(y)).RGBA()
			require.Equal(t, bm.At(x, y), r == 0, "pixel (%d,%d)", x, y)
		}
	}
}

// TestEncodeBMP verifies the BMP stream decodes back to the same raster.
func TestEncodeBMP(t *testing.T) {
	bm, err := render.RenderBitmap(unitLine())
	require.NoError(t, err)

	data, err := render.EncodeBMP(bm)
	require.NoError(t, err)
	img, err := bmp.Decode(bytes.NewReader(data))
	require.NoError(t, err)

	require.Equal(t, int(bm.Width), img.Bounds().Dx())
	require.Equal(t, int(bm.Height), img.Bounds().Dy())
	for y := uint32(0); y < bm.Height; y++ {
		r, _, _, _ := img.At(0, int(y)).RGBA()
		require.Equal(t, bm.At(0, y), r == 0, "pixel (0,%d)", y)
	}
}

//----------------------------------------------------------------------------//
// SVG Tests
//----------------------------------------------------------------------------//

// TestEncodeSVGUnitLine verifies the polyline vertices and start marker for
// the hand-traced unit line.
func TestEncodeSVGUnitLine(t *testing.T) {
	data, err := render.EncodeSVG(unitLine())
	require.NoError(t, err)
	svg := string(data)

	require.True(t, strings.HasPrefix(svg, "<svg xmlns="))
	require.Contains(t, svg, `width="1" height="3"`)
	require.Contains(t, svg, `<polyline points="0,2 0,0"`)
	require.Contains(t, svg, `<circle cx="0" cy="2"`)
	require.Contains(t, svg, `<rect width="1" height="3" fill="white"/>`)
}

// TestEncodeSVGVertexCount verifies one polyline vertex per line plus the
// start point.
func TestEncodeSVGVertexCount(t *testing.T) {
	fig := solved(t, []byte{0x6D})

	data, err := render.EncodeSVG(fig)
	require.NoError(t, err)
	svg := string(data)

	start := strings.Index(svg, `points="`) + len(`points="`)
	end := strings.Index(svg[start:], `"`)
	require.GreaterOrEqual(t, end, 0)
	vertices := strings.Fields(svg[start : start+end])
	require.Len(t, vertices, len(fig.Lines)+1)
}

// TestEncodeSVGPreconditions verifies nil/empty figures are rejected.
func TestEncodeSVGPreconditions(t *testing.T) {
	_, err := render.EncodeSVG(nil)
	require.ErrorIs(t, err, core.ErrNilFigure)

	_, err = render.EncodeSVG(&core.Figure{})
	require.ErrorIs(t, err, core.ErrNoLines)
}
