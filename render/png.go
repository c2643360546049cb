package render

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
)

// grayImage converts the bitmap into an 8-bit grayscale image: black path
// on a white background.
func grayImage(b *Bitmap) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, int(b.Width), int(b.Height)))
	for y := uint32(0); y < b.Height; y++ {
		for x := uint32(0); x < b.Width; x++ {
			shade := color.Gray{Y: 0xFF}
			if b.At(x, y) {
				shade = color.Gray{Y: 0x00}
			}
			img.SetGray(int(x), int(y), shade)
		}
	}

	return img
}

// EncodePNG serializes the bitmap as a grayscale PNG.
//
// Complexity: O(width × height) plus compression.
func EncodePNG(b *Bitmap) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, grayImage(b)); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
