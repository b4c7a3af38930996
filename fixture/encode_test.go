package fixture

import (
	"bytes"
	"errors"
	"testing"

	"github.com/mrjoshuak/go-hdrfixture/exr"
	"github.com/mrjoshuak/go-hdrfixture/radiance"
)

const radianceHeader8x8 = "#?RADIANCE\nFORMAT=32-bit_rle_rgbe\n\n-Y 8 +X 8\n"

func TestFormatString(t *testing.T) {
	tests := []struct {
		f    Format
		want string
	}{
		{FormatEXR, "exr"},
		{FormatRadianceFlat, "radiance-flat"},
		{FormatRadianceRLE, "radiance-rle"},
		{Format(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("Format(%d).String() = %q, want %q", int(tt.f), got, tt.want)
		}
	}
}

func TestEncodeEXR(t *testing.T) {
	data, err := Encode(Gradient(8, 8), FormatEXR)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !bytes.HasPrefix(data, exr.MagicNumber) {
		t.Errorf("EXR output starts % x, want % x", data[:4], exr.MagicNumber)
	}
	if len(data) != 1209 {
		t.Errorf("EXR output is %d bytes, want 1209", len(data))
	}
}

func TestEncodeRadianceFlat(t *testing.T) {
	data, err := Encode(Gradient(8, 8), FormatRadianceFlat)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !bytes.HasPrefix(data, []byte(radianceHeader8x8)) {
		t.Errorf("flat output header = %q", data[:min(len(data), len(radianceHeader8x8))])
	}
	if want := len(radianceHeader8x8) + 4*8*8; len(data) != want {
		t.Errorf("flat output is %d bytes, want %d", len(data), want)
	}
}

func TestEncodeRadianceRLE(t *testing.T) {
	data, err := Encode(Gradient(32, 8), FormatRadianceRLE)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	header := "#?RADIANCE\nFORMAT=32-bit_rle_rgbe\n\n-Y 8 +X 32\n"
	if !bytes.HasPrefix(data, []byte(header)) {
		t.Fatalf("RLE output header = %q", data[:min(len(data), len(header))])
	}
	if marker := data[len(header) : len(header)+4]; !bytes.Equal(marker, []byte{0x02, 0x02, 0x00, 0x20}) {
		t.Errorf("first scanline marker = %v, want [2 2 0 32]", marker)
	}
}

func TestEncodeNilImage(t *testing.T) {
	for _, f := range []Format{FormatEXR, FormatRadianceFlat, FormatRadianceRLE} {
		if _, err := Encode(nil, f); !errors.Is(err, ErrNilImage) {
			t.Errorf("Encode(nil, %v) error = %v, want %v", f, err, ErrNilImage)
		}
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	if _, err := Encode(Gradient(2, 2), Format(42)); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Encode(Format(42)) error = %v, want %v", err, ErrUnknownFormat)
	}
}

// TestEncodeErrorPropagation checks that encoder sentinels surface through
// the dispatch layer unchanged.
func TestEncodeErrorPropagation(t *testing.T) {
	if _, err := Encode(Gradient(4, 4), FormatRadianceRLE); !errors.Is(err, radiance.ErrRLEWidth) {
		t.Errorf("Encode(4x4, RLE) error = %v, want %v", err, radiance.ErrRLEWidth)
	}
	if _, err := Encode(NewFloatImage(0, 0), FormatEXR); !errors.Is(err, exr.ErrInvalidDimensions) {
		t.Errorf("Encode(0x0, EXR) error = %v, want %v", err, exr.ErrInvalidDimensions)
	}
	if _, err := Encode(NewFloatImage(0, 0), FormatRadianceFlat); !errors.Is(err, radiance.ErrInvalidDimensions) {
		t.Errorf("Encode(0x0, flat) error = %v, want %v", err, radiance.ErrInvalidDimensions)
	}
}
