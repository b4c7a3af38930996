// Package radiance writes Radiance RGBE picture files (.hdr).
//
// Pixels are quantized to the shared-exponent RGBE form and written either
// flat (4 bytes per pixel) or with the new-style run-length coded scanlines
// that current Radiance tools emit. Both encoders are deterministic: the
// same pixels always produce the same bytes.
package radiance

import (
	"errors"
	"fmt"
)

// Writer errors
var (
	// ErrInvalidDimensions indicates non-positive image dimensions.
	ErrInvalidDimensions = errors.New("radiance: invalid dimensions")

	// ErrPixelCount indicates that the pixel buffer does not hold
	// width*height RGB triples.
	ErrPixelCount = errors.New("radiance: pixel buffer length mismatch")

	// ErrRLEWidth indicates a width outside the range run-length coded
	// scanlines can represent.
	ErrRLEWidth = errors.New("radiance: width not encodable as RLE")
)

// New-style RLE scanlines carry the width in 15 bits, and the reference
// tools fall back to flat output for rows narrower than 8 pixels.
const (
	minRLEWidth = 8
	maxRLEWidth = 0x7fff
)

// Encode writes a flat Radiance picture: the ASCII header and resolution
// line, then one RGBE quadruple per pixel in scan order. pix holds RGB
// triples, row-major from the top-left corner.
func Encode(width, height int, pix []float32) ([]byte, error) {
	if err := checkDimensions(width, height, pix); err != nil {
		return nil, err
	}

	buf := make([]byte, 0, 64+4*width*height)
	buf = appendHeader(buf, width, height)
	for i := 0; i < width*height; i++ {
		p := ToRGBE(pix[i*3], pix[i*3+1], pix[i*3+2])
		buf = append(buf, p[:]...)
	}
	return buf, nil
}

// EncodeRLE writes a Radiance picture with new-style run-length coded
// scanlines. Each row starts with the marker 0x02 0x02 and the width in
// big-endian order, followed by the row's R, G, B and E streams, each
// run-length coded independently.
func EncodeRLE(width, height int, pix []float32) ([]byte, error) {
	if err := checkDimensions(width, height, pix); err != nil {
		return nil, err
	}
	if width < minRLEWidth || width > maxRLEWidth {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrRLEWidth, width, minRLEWidth, maxRLEWidth)
	}

	var channels [4][]byte
	for c := range channels {
		channels[c] = make([]byte, width)
	}

	buf := make([]byte, 0, 64+height*(4+4*width))
	buf = appendHeader(buf, width, height)
	for y := 0; y < height; y++ {
		row := pix[y*width*3 : (y+1)*width*3]
		for x := 0; x < width; x++ {
			p := ToRGBE(row[x*3], row[x*3+1], row[x*3+2])
			channels[0][x] = p[0]
			channels[1][x] = p[1]
			channels[2][x] = p[2]
			channels[3][x] = p[3]
		}

		buf = append(buf, 0x02, 0x02, byte(width>>8), byte(width))
		for _, ch := range channels {
			buf = rleAppend(buf, ch)
		}
	}
	return buf, nil
}

// appendHeader appends the picture header and the resolution line for
// top-down, left-to-right pixel order.
func appendHeader(dst []byte, width, height int) []byte {
	dst = append(dst, "#?RADIANCE\n"...)
	dst = append(dst, "FORMAT=32-bit_rle_rgbe\n"...)
	dst = append(dst, '\n')
	return fmt.Appendf(dst, "-Y %d +X %d\n", height, width)
}

func checkDimensions(width, height int, pix []float32) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if want := 3 * width * height; len(pix) != want {
		return fmt.Errorf("%w: have %d floats, want %d for %dx%d RGB",
			ErrPixelCount, len(pix), want, width, height)
	}
	return nil
}
