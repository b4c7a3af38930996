package radiance

import (
	"math"
)

// minNormal is the smallest brightness that still yields a nonzero code.
// Triples whose brightest channel is below 2^-106 map to RGBE{0,0,0,0}
// exactly.
const minNormal = 0x1p-106

// RGBE is one pixel in Radiance shared-exponent form: three 8-bit mantissas
// and a common exponent biased by 128.
type RGBE [4]byte

// ToRGBE quantizes a linear RGB triple to shared-exponent form. The
// brightest channel determines the exponent; each mantissa is the truncated
// product channel*scale, so reconstruction never rounds up. Negative and
// non-finite inputs are outside the contract.
func ToRGBE(r, g, b float32) RGBE {
	v := r
	if g > v {
		v = g
	}
	if b > v {
		v = b
	}
	if float64(v) < minNormal {
		return RGBE{}
	}

	m, e := math.Frexp(float64(v))
	scale := m * 256 / float64(v)

	return RGBE{
		quantize(r, scale),
		quantize(g, scale),
		quantize(b, scale),
		byte(e + 128),
	}
}

func quantize(ch float32, scale float64) byte {
	q := int(float64(ch) * scale)
	if q < 0 {
		return 0
	}
	if q > 255 {
		return 255
	}
	return byte(q)
}

// Float reconstructs the linear RGB triple as channel = mantissa *
// 2^(exponent-128-8). The all-zero code decodes to black.
func (p RGBE) Float() (r, g, b float32) {
	if p[3] == 0 {
		return 0, 0, 0
	}
	f := math.Ldexp(1, int(p[3])-(128+8))
	return float32(float64(p[0]) * f),
		float32(float64(p[1]) * f),
		float32(float64(p[2]) * f)
}
