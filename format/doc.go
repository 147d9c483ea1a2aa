// Package format encodes and decodes fields to the binary field-file
// formats:
//
//   - .fld: the game's own format. 8 bytes per panel, no header; the
//     dimensions are not stored and must be supplied out-of-band.
//   - .fldx: the community format. A 4-byte little-endian header with
//     the width and height, then 2 bytes per panel.
//
// Both encoders are deterministic: the same field always produces the
// same bytes, and decoding them reproduces an equal field. Decoding is
// strict: unassigned kind bytes and panel-count mismatches are errors,
// never coerced.
//
// The raw streams can additionally be carried as URL-safe base64 text or
// inside a zstd frame; neither wrapper changes the formats themselves.
package format
