package render

import (
	"bytes"

	"golang.org/x/image/bmp"
)

// EncodeBMP serializes the bitmap as a grayscale BMP.
//
// Complexity: O(width × height).
func EncodeBMP(b *Bitmap) ([]byte, error) {
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, grayImage(b)); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
