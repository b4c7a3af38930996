package radiance

import (
	"bytes"
	"math"
	"testing"

	"github.com/mdouchement/hdr"
	"github.com/mdouchement/hdr/codec/rgbe"
)

// decodeHDR runs an independent third-party decoder over an encoded picture.
func decodeHDR(t *testing.T, data []byte) hdr.Image {
	t.Helper()
	img, err := rgbe.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("rgbe.Decode() error = %v", err)
	}
	hdrImg, ok := img.(hdr.Image)
	if !ok {
		t.Fatalf("rgbe.Decode() returned %T, want hdr.Image", img)
	}
	return hdrImg
}

// checkDecoded compares every decoded pixel against the original triple,
// allowing one mantissa step of quantization error at the pixel's exponent.
func checkDecoded(t *testing.T, img hdr.Image, width, height int, pix []float32) {
	t.Helper()
	bounds := img.Bounds()
	if bounds.Dx() != width || bounds.Dy() != height {
		t.Fatalf("decoded bounds = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), width, height)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			i := (y*width + x) * 3
			p := ToRGBE(pix[i], pix[i+1], pix[i+2])
			step := math.Ldexp(1, int(p[3])-(128+8))

			r, g, b, _ := img.HDRAt(bounds.Min.X+x, bounds.Min.Y+y).HDRRGBA()
			for c, got := range [3]float64{r, g, b} {
				want := float64(pix[i+c])
				if math.Abs(got-want) >= step {
					t.Fatalf("pixel (%d, %d) channel %d = %v, want %v within %v",
						x, y, c, got, want, step)
				}
			}
		}
	}
}

func TestEncodeCrossDecode(t *testing.T) {
	width, height := 32, 8
	pix := gradientPix(width, height)

	data, err := Encode(width, height, pix)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	checkDecoded(t, decodeHDR(t, data), width, height, pix)
}

func TestEncodeRLECrossDecode(t *testing.T) {
	width, height := 32, 8
	pix := gradientPix(width, height)

	data, err := EncodeRLE(width, height, pix)
	if err != nil {
		t.Fatalf("EncodeRLE() error = %v", err)
	}
	checkDecoded(t, decodeHDR(t, data), width, height, pix)
}
