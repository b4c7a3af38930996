package radiance

import (
	"math"
	"testing"
)

func TestToRGBE(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b float32
		want    RGBE
	}{
		{"black", 0, 0, 0, RGBE{0, 0, 0, 0}},
		{"below threshold", 0x1p-107, 0x1p-107, 0x1p-107, RGBE{0, 0, 0, 0}},
		{"at threshold", 0x1p-106, 0, 0, RGBE{128, 0, 0, 23}},
		{"gradient corner", 0.25, 0.1875, 0.5, RGBE{64, 48, 128, 128}},
		{"half grey", 0.5, 0.5, 0.5, RGBE{128, 128, 128, 128}},
		{"unit white", 1, 1, 1, RGBE{128, 128, 128, 129}},
		{"pure red", 1, 0, 0, RGBE{128, 0, 0, 129}},
		{"bright", 1000, 100, 10, RGBE{250, 25, 2, 138}},
		{"truncating", 0.7, 0.2, 0.1, RGBE{179, 51, 25, 128}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToRGBE(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("ToRGBE(%v, %v, %v) = %v, want %v", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}

func TestRGBEFloat(t *testing.T) {
	tests := []struct {
		name    string
		p       RGBE
		r, g, b float32
	}{
		{"zero code", RGBE{0, 0, 0, 0}, 0, 0, 0},
		{"zero exponent", RGBE{5, 10, 20, 0}, 0, 0, 0},
		{"gradient corner", RGBE{64, 48, 128, 128}, 0.25, 0.1875, 0.5},
		{"unit white", RGBE{128, 128, 128, 129}, 1, 1, 1},
		{"bright", RGBE{250, 25, 2, 138}, 1000, 100, 8},
		{"tiny", RGBE{128, 0, 0, 23}, 0x1p-106, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := tt.p.Float()
			if r != tt.r || g != tt.g || b != tt.b {
				t.Errorf("%v.Float() = (%v, %v, %v), want (%v, %v, %v)",
					tt.p, r, g, b, tt.r, tt.g, tt.b)
			}
		})
	}
}

// TestRGBERoundTrip checks the quantization error bound: decoding never
// overshoots the original value and falls short by less than one mantissa
// step at the pixel's exponent.
func TestRGBERoundTrip(t *testing.T) {
	triples := [][3]float32{
		{0.25, 0.1875, 0.5},
		{1, 1, 1},
		{0.7, 0.2, 0.1},
		{1000, 100, 10},
		{3.14159, 2.71828, 1.41421},
		{1e6, 0.5, 1e-3},
		{0x1p-100, 0x1p-101, 0x1p-102},
		{0x1p100, 0x1p99, 0x1p98},
	}
	for _, tr := range triples {
		p := ToRGBE(tr[0], tr[1], tr[2])
		if p[0] < 128 && p[1] < 128 && p[2] < 128 {
			t.Errorf("ToRGBE(%v) = %v: brightest mantissa below 128", tr, p)
		}

		r, g, b := p.Float()
		step := math.Ldexp(1, int(p[3])-(128+8))
		for i, got := range [3]float32{r, g, b} {
			want := float64(tr[i])
			if float64(got) > want || want-float64(got) >= step {
				t.Errorf("ToRGBE(%v).Float()[%d] = %v, want in (%v, %v]",
					tr, i, got, want-step, want)
			}
		}
	}
}
