package format

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/oj-tools/citrus/field"
)

// The textual transport uses the URL-safe alphabet with padding, for
// easy embedding in links and chat messages.
var base64Encoding = base64.URLEncoding

// EncodeFLDBase64 encodes f in the .fld format wrapped in base64.
func EncodeFLDBase64(f *field.Field) (string, Dims, error) {
	var sb strings.Builder
	enc := base64.NewEncoder(base64Encoding, &sb)
	dims, err := EncodeFLD(enc, f)
	if err != nil {
		return "", Dims{}, err
	}
	if err := enc.Close(); err != nil {
		return "", Dims{}, fmt.Errorf("flush base64: %w", err)
	}
	return sb.String(), dims, nil
}

// DecodeFLDBase64 decodes a base64-wrapped .fld stream. As with
// DecodeFLD, the dimensions must come from the caller.
func DecodeFLDBase64(s string, dims Dims) (*field.Field, error) {
	return DecodeFLD(base64.NewDecoder(base64Encoding, strings.NewReader(s)), dims)
}

// EncodeFLDXBase64 encodes f in the .fldx format wrapped in base64.
func EncodeFLDXBase64(f *field.Field) (string, error) {
	var sb strings.Builder
	enc := base64.NewEncoder(base64Encoding, &sb)
	if err := EncodeFLDX(enc, f); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("flush base64: %w", err)
	}
	return sb.String(), nil
}

// DecodeFLDXBase64 decodes a base64-wrapped .fldx stream.
func DecodeFLDXBase64(s string) (*field.Field, error) {
	return DecodeFLDX(base64.NewDecoder(base64Encoding, strings.NewReader(s)))
}
