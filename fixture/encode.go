// Package fixture builds deterministic HDR sample files for decoder tests:
// an in-memory float image model, encoders into the OpenEXR and Radiance
// containers, and a named corpus of valid, corrupt and empty files.
package fixture

import (
	"errors"
	"fmt"

	"github.com/mrjoshuak/go-hdrfixture/exr"
	"github.com/mrjoshuak/go-hdrfixture/radiance"
)

// Encoding errors
var (
	// ErrNilImage indicates a nil image argument.
	ErrNilImage = errors.New("fixture: nil image")

	// ErrUnknownFormat indicates an unrecognized output format.
	ErrUnknownFormat = errors.New("fixture: unknown format")
)

// Format selects the output container.
type Format int

// Output formats
const (
	// FormatEXR is a single-part scanline OpenEXR file with uncompressed
	// FLOAT R, G, B channels.
	FormatEXR Format = iota

	// FormatRadianceFlat is a Radiance RGBE picture with flat scanlines.
	FormatRadianceFlat

	// FormatRadianceRLE is a Radiance RGBE picture with new-style
	// run-length coded scanlines.
	FormatRadianceRLE
)

// String returns a short lowercase name for the format.
func (f Format) String() string {
	switch f {
	case FormatEXR:
		return "exr"
	case FormatRadianceFlat:
		return "radiance-flat"
	case FormatRadianceRLE:
		return "radiance-rle"
	default:
		return "unknown"
	}
}

// Encode serializes img into the selected container format. The image is
// read only; every call returns a fresh buffer.
func Encode(img *FloatImage, f Format) ([]byte, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	switch f {
	case FormatEXR:
		return exr.Encode(exr.NewScanlineHeader(img.Width, img.Height), img.Pix)
	case FormatRadianceFlat:
		return radiance.Encode(img.Width, img.Height, img.Pix)
	case FormatRadianceRLE:
		return radiance.EncodeRLE(img.Width, img.Height, img.Pix)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, int(f))
	}
}
