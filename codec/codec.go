package codec

import (
	"bytes"
	"encoding/binary"
	"errors"

	"github.com/spiralgen/spiralgen/core"
)

// Sentinel errors for serialization.
var (
	// ErrBadData indicates input that is not a well-formed figure file.
	ErrBadData = errors.New("codec: malformed figure data")

	// ErrVersion indicates a well-formed figure file written by an
	// incompatible format revision.
	ErrVersion = errors.New("codec: incompatible format version")
)

// Format constants. The header is fixed-size; everything is big-endian.
const (
	headerSize   = 26
	bytesPerLine = 4

	versionMajor uint16 = 0
	versionMinor uint16 = 54
	versionPatch uint16 = 0

	// minMinorVersion is the oldest minor revision (within versionMajor)
	// whose files this package can still read.
	minMinorVersion uint16 = 54

	// reservedWord fills the two header fields kept for future use.
	reservedWord uint32 = 0xFFFFFFFF
)

// magic identifies a figure file.
var magic = []byte("sxbp")

// Header byte offsets.
const (
	offMagic          = 0
	offVersion        = 4
	offLineCount      = 10
	offReservedA      = 14
	offReservedB      = 18
	offLinesRemaining = 22
)

// Encode serializes the figure. The output is header + 4 bytes per line.
//
// Figures whose line count does not fit the 32-bit count field, or that
// fail validation, are rejected.
func Encode(f *core.Figure) ([]byte, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	if uint64(len(f.Lines)) > uint64(^uint32(0)) {
		return nil, core.ErrTooLarge
	}

	out := make([]byte, headerSize+bytesPerLine*len(f.Lines))
	copy(out[offMagic:], magic)
	binary.BigEndian.PutUint16(out[offVersion:], versionMajor)
	binary.BigEndian.PutUint16(out[offVersion+2:], versionMinor)
	binary.BigEndian.PutUint16(out[offVersion+4:], versionPatch)
	binary.BigEndian.PutUint32(out[offLineCount:], uint32(len(f.Lines)))
	binary.BigEndian.PutUint32(out[offReservedA:], reservedWord)
	binary.BigEndian.PutUint32(out[offReservedB:], reservedWord)
	binary.BigEndian.PutUint32(out[offLinesRemaining:], f.LinesRemaining)

	for i, ln := range f.Lines {
		word := uint32(ln.Direction)<<30 | uint32(ln.Length)
		binary.BigEndian.PutUint32(out[headerSize+bytesPerLine*i:], word)
	}

	return out, nil
}

// Decode parses a serialized figure.
//
// It reports ErrBadData for anything structurally wrong (short header,
// wrong magic, truncated or oversized body) and ErrVersion for data written
// by a format revision this package cannot read.
func Decode(data []byte) (*core.Figure, error) {
	if len(data) < headerSize {
		return nil, ErrBadData
	}
	if !bytes.Equal(data[offMagic:offMagic+len(magic)], magic) {
		return nil, ErrBadData
	}

	major := binary.BigEndian.Uint16(data[offVersion:])
	minor := binary.BigEndian.Uint16(data[offVersion+2:])
	if major != versionMajor || minor < minMinorVersion {
		return nil, ErrVersion
	}

	count := binary.BigEndian.Uint32(data[offLineCount:])
	body := data[headerSize:]
	if uint64(len(body)) != uint64(count)*bytesPerLine {
		return nil, ErrBadData
	}

	f := &core.Figure{
		Lines:          make([]core.Line, count),
		LinesRemaining: binary.BigEndian.Uint32(data[offLinesRemaining:]),
	}
	for i := range f.Lines {
		word := binary.BigEndian.Uint32(body[bytesPerLine*i:])
		f.Lines[i] = core.Line{
			Direction: core.Direction(word >> 30),
			Length:    core.Length(word & uint32(core.MaxLength)),
		}
	}

	return f, nil
}
