package format

import (
	"fmt"
	"io"

	"github.com/oj-tools/citrus/field"
)

// Each .fld panel record is two 4-byte integers of which only the low
// byte ever mattered, likely a limitation of the game's original
// encoder. The other three bytes of each integer are written as zero
// and ignored on decode.
const fldRecordSize = 8

// EncodeFLD writes f to w in the .fld format: 8 bytes per panel,
// row-major, no header. The format does not store dimensions, so they
// are returned for the caller to carry out-of-band.
func EncodeFLD(w io.Writer, f *field.Field) (Dims, error) {
	var rec [fldRecordSize]byte
	for x, y := range f.Positions() {
		p := f.At(x, y)
		rec[0] = byte(p.Kind)
		rec[4] = p.PackedExits()
		if _, err := w.Write(rec[:]); err != nil {
			return Dims{}, fmt.Errorf("write panel (%d,%d): %w", x, y, err)
		}
	}
	return Dims{Width: f.Width(), Height: f.Height()}, nil
}

// DecodeFLD reads a field in the .fld format from r. The dimensions must
// be supplied by the caller; the stream carries none. Constants such as
// S15 cover the known board sizes.
//
// Fails with a field.UnknownKindError for unassigned kind bytes and with
// a SizeError when the stream does not hold exactly dims.Panels()
// records. A trailing partial record is io.ErrUnexpectedEOF.
func DecodeFLD(r io.Reader, dims Dims) (*field.Field, error) {
	data := make([]field.Panel, 0, dims.Panels())

	var rec [fldRecordSize]byte
	for i := 0; ; i++ {
		if _, err := io.ReadFull(r, rec[:]); err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("read panel %d: %w", i, err)
		}

		p, err := field.PanelFromPacked(rec[0], rec[4])
		if err != nil {
			return nil, fmt.Errorf("panel %d: %w", i, err)
		}
		data = append(data, p)
	}

	if len(data) != dims.Panels() {
		return nil, &SizeError{Expected: dims.Panels(), Got: len(data)}
	}
	return field.NewBuffer(data, dims.Width, dims.Height)
}
