package fixture

import (
	"image"

	"github.com/mdouchement/hdr"
)

// FloatImage is a linear-light RGB raster: interleaved R,G,B float32
// triples, row-major from the top-left corner. Values are non-negative
// finite radiance. Encoders never mutate the buffer.
type FloatImage struct {
	Width  int
	Height int
	Pix    []float32
}

// NewFloatImage allocates a black image of the given size.
func NewFloatImage(width, height int) *FloatImage {
	return &FloatImage{
		Width:  width,
		Height: height,
		Pix:    make([]float32, 3*width*height),
	}
}

// SetRGB sets the pixel at (x, y).
func (m *FloatImage) SetRGB(x, y int, r, g, b float32) {
	i := (y*m.Width + x) * 3
	m.Pix[i] = r
	m.Pix[i+1] = g
	m.Pix[i+2] = b
}

// RGB returns the pixel at (x, y).
func (m *FloatImage) RGB(x, y int) (r, g, b float32) {
	i := (y*m.Width + x) * 3
	return m.Pix[i], m.Pix[i+1], m.Pix[i+2]
}

// Gradient builds the canonical test gradient: red ramps left to right up
// to 2.0, green ramps top to bottom up to 1.5, blue holds 0.5. The red
// channel crosses 1.0, so the image carries above-display-range values.
func Gradient(width, height int) *FloatImage {
	img := NewFloatImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGB(x, y,
				float32(x+1)/float32(width)*2.0,
				float32(y+1)/float32(height)*1.5,
				0.5)
		}
	}
	return img
}

// FromImage converts any image.Image to a FloatImage. HDR sources
// (hdr.Image) pass their linear values through unchanged; LDR sources are
// scaled from 16-bit color to [0, 1]. No tone mapping is applied.
func FromImage(m image.Image) *FloatImage {
	bounds := m.Bounds()
	img := NewFloatImage(bounds.Dx(), bounds.Dy())

	if hdrImg, ok := m.(hdr.Image); ok {
		for y := 0; y < img.Height; y++ {
			for x := 0; x < img.Width; x++ {
				r, g, b, _ := hdrImg.HDRAt(bounds.Min.X+x, bounds.Min.Y+y).HDRRGBA()
				img.SetRGB(x, y, float32(r), float32(g), float32(b))
			}
		}
		return img
	}

	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			r, g, b, _ := m.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			img.SetRGB(x, y,
				float32(r)/65535,
				float32(g)/65535,
				float32(b)/65535)
		}
	}
	return img
}
