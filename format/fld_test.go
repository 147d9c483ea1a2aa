package format

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/oj-tools/citrus/field"
)

func twoPanelField(t *testing.T) *field.Field {
	t.Helper()
	f, err := field.NewRows([][]field.Panel{
		{field.NewPanel(field.Home), field.NewPanel(field.Neutral)},
	})
	if err != nil {
		t.Fatalf("NewRows: %v", err)
	}
	f.At(0, 0).Exits = field.East
	f.At(1, 0).Exits = field.West
	return f
}

func TestEncodeFLDGolden(t *testing.T) {
	var buf bytes.Buffer
	dims, err := EncodeFLD(&buf, twoPanelField(t))
	if err != nil {
		t.Fatalf("EncodeFLD: %v", err)
	}
	if dims != (Dims{Width: 2, Height: 1}) {
		t.Errorf("dims = %v", dims)
	}

	want := []byte{
		0x02, 0, 0, 0, 0x04, 0, 0, 0, // Home, exits East
		0x01, 0, 0, 0, 0x01, 0, 0, 0, // Neutral, exits West
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("encoded % X, want % X", buf.Bytes(), want)
	}
}

func TestDecodeFLDRoundTrip(t *testing.T) {
	f := twoPanelField(t)
	f.BuildBacktrack()

	var buf bytes.Buffer
	dims, err := EncodeFLD(&buf, f)
	if err != nil {
		t.Fatalf("EncodeFLD: %v", err)
	}

	got, err := DecodeFLD(bytes.NewReader(buf.Bytes()), dims)
	if err != nil {
		t.Fatalf("DecodeFLD: %v", err)
	}
	if !got.Equal(f) {
		t.Errorf("round trip mismatch:\ngot  %v\nwant %v", got, f)
	}

	// Deterministic: re-encoding reproduces the bytes.
	var again bytes.Buffer
	if _, err := EncodeFLD(&again, got); err != nil {
		t.Fatalf("re-encode: %v", err)
	}
	if !bytes.Equal(again.Bytes(), buf.Bytes()) {
		t.Errorf("re-encode differs:\nfirst  % X\nsecond % X", buf.Bytes(), again.Bytes())
	}
}

func TestDecodeFLDPaddingIgnored(t *testing.T) {
	// The 3 padding bytes of each integer are an artifact of the
	// legacy 4-byte encoding; whatever they hold is ignored.
	stream := []byte{0x02, 0xAA, 0xBB, 0xCC, 0x04, 0xDD, 0xEE, 0xFF}
	f, err := DecodeFLD(bytes.NewReader(stream), Dims{Width: 1, Height: 1})
	if err != nil {
		t.Fatalf("DecodeFLD: %v", err)
	}
	p := f.At(0, 0)
	if p.Kind != field.Home || p.Exits != field.East || p.ExitsBacktrack != field.NoExits {
		t.Errorf("decoded panel %+v", p)
	}
}

func TestDecodeFLDUnknownKind(t *testing.T) {
	stream := []byte{0xFF, 0, 0, 0, 0, 0, 0, 0}
	_, err := DecodeFLD(bytes.NewReader(stream), Dims{Width: 1, Height: 1})
	var uk *field.UnknownKindError
	if !errors.As(err, &uk) {
		t.Fatalf("error = %v, want UnknownKindError", err)
	}
	if uk.Code != 0xFF {
		t.Errorf("error carries code %#02x, want 0xFF", uk.Code)
	}
}

func TestDecodeFLDSizeMismatch(t *testing.T) {
	// Three records against declared 2x2 dimensions.
	stream := bytes.Repeat([]byte{0x01, 0, 0, 0, 0, 0, 0, 0}, 3)
	_, err := DecodeFLD(bytes.NewReader(stream), Dims{Width: 2, Height: 2})
	var se *SizeError
	if !errors.As(err, &se) {
		t.Fatalf("error = %v, want SizeError", err)
	}
	if se.Expected != 4 || se.Got != 3 {
		t.Errorf("SizeError = %+v, want expected 4 got 3", se)
	}
}

func TestDecodeFLDPartialRecord(t *testing.T) {
	stream := []byte{0x01, 0, 0, 0, 0}
	_, err := DecodeFLD(bytes.NewReader(stream), Dims{Width: 1, Height: 1})
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("error = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestS15(t *testing.T) {
	if S15.Panels() != 225 {
		t.Errorf("S15 holds %d panels", S15.Panels())
	}
}
