package render

// Bitmap is a flat row-major boolean raster: true pixels are path, false
// pixels are background. Row 0 is the top of the image.
type Bitmap struct {
	Width, Height uint32
	Pixels        []bool
}

// newBitmap allocates an all-background bitmap.
func newBitmap(width, height uint32) *Bitmap {
	return &Bitmap{
		Width:  width,
		Height: height,
		Pixels: make([]bool, uint64(width)*uint64(height)),
	}
}

// At reports whether the pixel at (x, y) is set.
// Complexity: O(1).
func (b *Bitmap) At(x, y uint32) bool {
	return b.Pixels[uint64(y)*uint64(b.Width)+uint64(x)]
}

// Set marks the pixel at (x, y).
// Complexity: O(1).
func (b *Bitmap) Set(x, y uint32) {
	b.Pixels[uint64(y)*uint64(b.Width)+uint64(x)] = true
}
