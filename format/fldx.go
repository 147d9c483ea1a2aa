package format

import (
	"fmt"
	"io"
	"math"

	"github.com/oj-tools/citrus/field"
)

const fldxRecordSize = 2

// EncodeFLDX writes f to w in the .fldx format: a 4-byte header of two
// little-endian uint16s (width, then height), followed by 2 bytes per
// panel (kind byte, packed exit byte), row-major.
//
// Dimensions beyond 65535 cannot be represented and are an error rather
// than being truncated.
func EncodeFLDX(w io.Writer, f *field.Field) error {
	if f.Width() > math.MaxUint16 || f.Height() > math.MaxUint16 {
		return fmt.Errorf("dimensions %dx%d exceed the format's uint16 range", f.Width(), f.Height())
	}
	if err := writeU16(w, uint16(f.Width())); err != nil {
		return fmt.Errorf("write width: %w", err)
	}
	if err := writeU16(w, uint16(f.Height())); err != nil {
		return fmt.Errorf("write height: %w", err)
	}

	var rec [fldxRecordSize]byte
	for x, y := range f.Positions() {
		p := f.At(x, y)
		rec[0] = byte(p.Kind)
		rec[1] = p.PackedExits()
		if _, err := w.Write(rec[:]); err != nil {
			return fmt.Errorf("write panel (%d,%d): %w", x, y, err)
		}
	}
	return nil
}

// DecodeFLDX reads a field in the .fldx format from r, taking the
// dimensions from the stream's own header.
//
// A missing or short header is io.ErrUnexpectedEOF. Unassigned kind
// bytes fail with a field.UnknownKindError, and a panel count that does
// not match the declared dimensions fails with a SizeError.
func DecodeFLDX(r io.Reader) (*field.Field, error) {
	width, err := readU16(r)
	if err != nil {
		return nil, fmt.Errorf("read width: %w", err)
	}
	height, err := readU16(r)
	if err != nil {
		return nil, fmt.Errorf("read height: %w", err)
	}
	dims := Dims{Width: int(width), Height: int(height)}

	// Capacity grows with the records actually present, never from the
	// header: a 4-byte stream can declare 65535x65535 and would otherwise
	// force a multi-gigabyte allocation before the count check runs.
	var data []field.Panel

	var rec [fldxRecordSize]byte
	for i := 0; ; i++ {
		if _, err := io.ReadFull(r, rec[:]); err == io.EOF {
			break
		} else if err != nil {
			return nil, fmt.Errorf("read panel %d: %w", i, err)
		}

		p, err := field.PanelFromPacked(rec[0], rec[1])
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
