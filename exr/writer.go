package exr

import (
	"errors"
	"fmt"

	"github.com/mrjoshuak/go-hdrfixture/internal/xdr"
)

// MagicNumber identifies an OpenEXR file.
var MagicNumber = []byte{0x76, 0x2f, 0x31, 0x01}

// CurrentVersion is the format version written. Version 2 with no flag bits
// set means a single-part scanline file.
const CurrentVersion = 2

// Writer errors
var (
	ErrPixelCount          = errors.New("exr: pixel buffer length mismatch")
	ErrUnsupportedChannels = errors.New("exr: unsupported channel set")
)

// componentIndex maps a channel name to its component offset within an
// interleaved RGB pixel triple.
func componentIndex(name string) int {
	switch name {
	case "R":
		return 0
	case "G":
		return 1
	case "B":
		return 2
	}
	return -1
}

// Encode serializes a complete single-part scanline OpenEXR file and returns
// its bytes. The header must carry the full required attribute set with
// exactly the R, G, B channels, all FLOAT at full resolution, and
// CompressionNone. pix holds interleaved RGB triples, row-major from the
// top-left pixel, len(pix) == 3*width*height.
//
// The output is deterministic: attributes serialize in sorted name order,
// scanline offsets are computed up front from the fixed block size, and each
// scanline block stores its channels in sorted name order (B, then G, then R)
// as the format requires.
func Encode(h *Header, pix []float32) ([]byte, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}

	cl := h.Channels()
	if cl.Len() != 3 || !cl.HasRGB() {
		return nil, fmt.Errorf("%w: want R, G, B; have %v", ErrUnsupportedChannels, cl.Names())
	}
	for _, name := range []string{"R", "G", "B"} {
		ch := cl.Get(name)
		if ch.Type != PixelTypeFloat {
			return nil, fmt.Errorf("%w: channel %s has type %s, want float", ErrUnsupportedChannels, name, ch.Type)
		}
		if ch.XSampling != 1 || ch.YSampling != 1 {
			return nil, fmt.Errorf("%w: channel %s is subsampled", ErrUnsupportedChannels, name)
		}
	}

	if comp := h.Compression(); comp != CompressionNone {
		return nil, errors.New("exr: compression not supported for writing: " + comp.String())
	}

	dw := h.DataWindow()
	width := int(dw.Width())
	height := int(dw.Height())
	minY := int(dw.Min.Y)

	if len(pix) != 3*width*height {
		return nil, fmt.Errorf("%w: have %d floats, want %d for %dx%d RGB",
			ErrPixelCount, len(pix), 3*width*height, width, height)
	}

	// Serialize the header first so the scanline offsets can be computed
	// exactly, with no patching after the fact.
	headerBuf := xdr.NewBufferWriter(512)
	if err := WriteHeader(headerBuf, h); err != nil {
		return nil, err
	}
	headerBytes := headerBuf.Bytes()

	// Each scanline block is an 8-byte chunk header (y coordinate and
	// payload size) followed by the uncompressed channel data.
	blockSize := 8 + cl.BytesPerScanline(width)
	dataStart := len(MagicNumber) + 4 + len(headerBytes) + 8*height
	total := dataStart + height*blockSize

	w := xdr.NewBufferWriter(total)
	w.WriteBytes(MagicNumber)
	w.WriteUint32(CurrentVersion)
	w.WriteBytes(headerBytes)

	// Offset table: one absolute file offset per scanline, increasing by
	// the constant block size.
	for y := 0; y < height; y++ {
		w.WriteUint64(uint64(dataStart + y*blockSize))
	}

	// Scanline blocks in increasing y order, channels sorted by name
	// within each block.
	channels := cl.SortedByName()
	payloadSize := uint32(blockSize - 8)
	for row := 0; row < height; row++ {
		w.WriteInt32(int32(minY + row))
		w.WriteUint32(payloadSize)
		base := row * width * 3
		for _, ch := range channels {
			c := componentIndex(ch.Name)
			for x := 0; x < width; x++ {
				w.WriteFloat32(pix[base+x*3+c])
			}
		}
	}

	return w.Bytes(), nil
}
