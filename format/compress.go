package format

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/oj-tools/citrus/field"
)

// EncodeFLDXCompressed writes f as a .fldx stream inside a zstd frame
// (the ".fldx.zst" container). The wrapper has no semantic effect on the
// format; it only shrinks large boards for storage or transfer.
func EncodeFLDXCompressed(w io.Writer, f *field.Field) error {
	zw, err := zstd.NewWriter(w)
	if err != nil {
		return fmt.Errorf("zstd encode: %w", err)
	}
	if err := EncodeFLDX(zw, f); err != nil {
		zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("zstd encode: %w", err)
	}
	return nil
}

// DecodeFLDXCompressed reads a field from a zstd-compressed .fldx
// stream.
func DecodeFLDXCompressed(r io.Reader) (*field.Field, error) {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("zstd decode: %w", err)
	}
	defer zr.Close()
	return DecodeFLDX(zr)
}
