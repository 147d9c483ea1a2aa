package format

import (
	"testing"
)

func TestFLDXBase64Golden(t *testing.T) {
	s, err := EncodeFLDXBase64(twoPanelField(t))
	if err != nil {
		t.Fatalf("EncodeFLDXBase64: %v", err)
	}
	// URL-safe, padded base64 of 02 00 01 00 02 04 01 01.
	if want := "AgABAAIEAQE="; s != want {
		t.Fatalf("encoded %q, want %q", s, want)
	}

	got, err := DecodeFLDXBase64(s)
	if err != nil {
		t.Fatalf("DecodeFLDXBase64: %v", err)
	}
	if !got.Equal(twoPanelField(t)) {
		t.Errorf("round trip mismatch: %v", got)
	}
}

func TestFLDBase64RoundTrip(t *testing.T) {
	f := twoPanelField(t)

	s, dims, err := EncodeFLDBase64(f)
	if err != nil {
		t.Fatalf("EncodeFLDBase64: %v", err)
	}
	if dims != (Dims{Width: 2, Height: 1}) {
		t.Errorf("dims = %v", dims)
	}

	got, err := DecodeFLDBase64(s, dims)
	if err != nil {
		t.Fatalf("DecodeFLDBase64: %v", err)
	}
	if !got.Equal(f) {
		t.Errorf("round trip mismatch: %v", got)
	}
}

func TestDecodeFLDXBase64Invalid(t *testing.T) {
	if _, err := DecodeFLDXBase64("not*base64*"); err == nil {
		t.Error("invalid base64 should fail")
	}
}
