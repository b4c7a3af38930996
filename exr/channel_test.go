package exr

import (
	"bytes"
	"testing"

	"github.com/mrjoshuak/go-hdrfixture/internal/xdr"
)

func TestPixelType(t *testing.T) {
	tests := []struct {
		pt   PixelType
		str  string
		size int
	}{
		{PixelTypeUint, "uint", 4},
		{PixelTypeHalf, "half", 2},
		{PixelTypeFloat, "float", 4},
		{PixelType(99), "unknown", 0},
	}

	for _, tt := range tests {
		if s := tt.pt.String(); s != tt.str {
			t.Errorf("%v.String() = %q, want %q", tt.pt, s, tt.str)
		}
		if sz := tt.pt.Size(); sz != tt.size {
			t.Errorf("%v.Size() = %d, want %d", tt.pt, sz, tt.size)
		}
	}
}

func TestNewChannel(t *testing.T) {
	c := NewChannel("R", PixelTypeFloat)
	if c.Name != "R" {
		t.Errorf("Name = %q, want %q", c.Name, "R")
	}
	if c.Type != PixelTypeFloat {
		t.Errorf("Type = %v, want %v", c.Type, PixelTypeFloat)
	}
	if c.XSampling != 1 || c.YSampling != 1 {
		t.Errorf("Sampling = %dx%d, want 1x1", c.XSampling, c.YSampling)
	}
	if c.PLinear {
		t.Error("PLinear should be false by default")
	}
}

func TestChannelList(t *testing.T) {
	cl := NewChannelList()

	if !cl.Add(NewChannel("R", PixelTypeFloat)) {
		t.Error("Add(R) should succeed")
	}
	if !cl.Add(NewChannel("G", PixelTypeFloat)) {
		t.Error("Add(G) should succeed")
	}
	if !cl.Add(NewChannel("B", PixelTypeFloat)) {
		t.Error("Add(B) should succeed")
	}
	if cl.Add(NewChannel("R", PixelTypeHalf)) {
		t.Error("Add(R) again should fail")
	}

	if cl.Len() != 3 {
		t.Errorf("Len() = %d, want 3", cl.Len())
	}

	ch := cl.Get("G")
	if ch == nil {
		t.Fatal("Get(G) returned nil")
	}
	if ch.Type != PixelTypeFloat {
		t.Errorf("Get(G).Type = %v, want float", ch.Type)
	}
	if cl.Get("A") != nil {
		t.Error("Get(A) should return nil")
	}

	if !cl.HasRGB() {
		t.Error("HasRGB() should be true")
	}

	names := cl.Names()
	if len(names) != 3 || names[0] != "R" || names[1] != "G" || names[2] != "B" {
		t.Errorf("Names() = %v, want [R G B]", names)
	}
}

func TestChannelListSortedByName(t *testing.T) {
	cl := NewChannelList()
	cl.Add(NewChannel("R", PixelTypeFloat))
	cl.Add(NewChannel("G", PixelTypeFloat))
	cl.Add(NewChannel("B", PixelTypeFloat))

	sorted := cl.SortedByName()
	if len(sorted) != 3 {
		t.Fatalf("SortedByName() len = %d, want 3", len(sorted))
	}
	if sorted[0].Name != "B" || sorted[1].Name != "G" || sorted[2].Name != "R" {
		t.Errorf("SortedByName() order = %s,%s,%s, want B,G,R",
			sorted[0].Name, sorted[1].Name, sorted[2].Name)
	}

	// Insertion order is preserved in the list itself.
	if cl.At(0).Name != "R" {
		t.Errorf("At(0) = %s, want R", cl.At(0).Name)
	}
}

func TestWriteChannelList(t *testing.T) {
	cl := NewChannelList()
	// Added in pixel-buffer order; serialization must sort to B, G, R.
	cl.Add(NewChannel("R", PixelTypeFloat))
	cl.Add(NewChannel("G", PixelTypeFloat))
	cl.Add(NewChannel("B", PixelTypeFloat))

	w := xdr.NewBufferWriter(64)
	WriteChannelList(w, cl)

	// Each entry: name\0, pixel type (LE u32), pLinear, 3 reserved bytes,
	// xSampling (LE i32), ySampling (LE i32). List ends with one null byte.
	entry := func(name byte) []byte {
		return []byte{
			name, 0x00,
			0x02, 0x00, 0x00, 0x00, // FLOAT
			0x00,             // pLinear
			0x00, 0x00, 0x00, // reserved
			0x01, 0x00, 0x00, 0x00, // xSampling
			0x01, 0x00, 0x00, 0x00, // ySampling
		}
	}
	want := append(entry('B'), entry('G')...)
	want = append(want, entry('R')...)
	want = append(want, 0x00)

	if !bytes.Equal(w.Bytes(), want) {
		t.Errorf("WriteChannelList bytes =\n%x\nwant\n%x", w.Bytes(), want)
	}
	if w.Len() != 55 {
		t.Errorf("WriteChannelList wrote %d bytes, want 55", w.Len())
	}
}

func TestChannelListRoundTrip(t *testing.T) {
	cl := NewChannelList()
	cl.Add(NewChannel("R", PixelTypeFloat))
	cl.Add(NewChannel("G", PixelTypeFloat))
	cl.Add(NewChannel("B", PixelTypeFloat))

	w := xdr.NewBufferWriter(64)
	WriteChannelList(w, cl)

	r := xdr.NewReader(w.Bytes())
	got, err := ReadChannelList(r)
	if err != nil {
		t.Fatalf("ReadChannelList() error = %v", err)
	}

	if got.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", got.Len())
	}
	// File order is sorted.
	if got.At(0).Name != "B" || got.At(1).Name != "G" || got.At(2).Name != "R" {
		t.Errorf("read order = %v, want [B G R]", got.Names())
	}
	for _, name := range []string{"R", "G", "B"} {
		ch := got.Get(name)
		if ch == nil {
			t.Fatalf("Get(%s) returned nil", name)
		}
		if ch.Type != PixelTypeFloat {
			t.Errorf("channel %s type = %v, want float", name, ch.Type)
		}
		if ch.XSampling != 1 || ch.YSampling != 1 {
			t.Errorf("channel %s sampling = %dx%d, want 1x1", name, ch.XSampling, ch.YSampling)
		}
		if ch.PLinear {
			t.Errorf("channel %s PLinear = true, want false", name)
		}
	}
}

func TestReadChannelListTruncated(t *testing.T) {
	// Name but no properties.
	r := xdr.NewReader([]byte{'R', 0x00, 0x02})
	if _, err := ReadChannelList(r); err == nil {
		t.Error("ReadChannelList should fail on truncated input")
	}
}

func TestChannelListBytes(t *testing.T) {
	cl := NewChannelList()
	cl.Add(NewChannel("R", PixelTypeFloat))
	cl.Add(NewChannel("G", PixelTypeFloat))
	cl.Add(NewChannel("B", PixelTypeFloat))

	if got := cl.BytesPerPixel(); got != 12 {
		t.Errorf("BytesPerPixel() = %d, want 12", got)
	}
	if got := cl.BytesPerScanline(8); got != 96 {
		t.Errorf("BytesPerScanline(8) = %d, want 96", got)
	}
	if got := cl.BytesPerScanline(32); got != 384 {
		t.Errorf("BytesPerScanline(32) = %d, want 384", got)
	}
}
