package format

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Dims holds field dimensions for the formats and callers that need to
// pass them out-of-band.
type Dims struct {
	Width, Height int
}

// S15 is the canonical 15x15 board size. Applies to Training Program,
// among others.
var S15 = Dims{Width: 15, Height: 15}

// Panels returns the number of panels a field of these dimensions holds.
func (d Dims) Panels() int {
	return d.Width * d.Height
}

func (d Dims) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// SizeError reports a decoded panel count that does not match the
// declared or required dimensions.
type SizeError struct {
	Expected, Got int // panel counts
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("invalid size of data: expected %d panels, got %d", e.Expected, e.Got)
}

// readU16 reads a little-endian uint16. A short read, including an
// immediate EOF, is io.ErrUnexpectedEOF: the caller asked for a value
// that must be present.
func readU16(r io.Reader) (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return 0, err
	}
	return binary.LittleEndian.Uint16(buf[:]), nil
}

// writeU16 writes a little-endian uint16.
func writeU16(w io.Writer, v uint16) error {
	var buf [2]byte
	binary.LittleEndian.PutUint16(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}
