package render

import (
	"bytes"
	"strconv"
)

// EncodePBM serializes the bitmap as a binary (P4) portable bitmap: a text
// header with the dimensions, then rows packed 8 pixels per byte, MSB
// first, each row padded to a whole byte.
//
// Complexity: O(width × height).
func EncodePBM(b *Bitmap) []byte {
	var buf bytes.Buffer
	buf.WriteString("P4\n")
	buf.WriteString(strconv.FormatUint(uint64(b.Width), 10))
	buf.WriteByte('\n')
	buf.WriteString(strconv.FormatUint(uint64(b.Height), 10))
	buf.WriteByte('\n')

	rowBytes := (b.Width + 7) / 8
	row := make([]byte, rowBytes)
	for y := uint32(0); y < b.Height; y++ {
		for i := range row {
			row[i] = 0
		}
		for x := uint32(0); x < b.Width; x++ {
			if b.At(x, y) {
				row[x/8] |= 0x80 >> (x % 8)
			}
		}
		buf.Write(row)
	}

	return buf.Bytes()
}
