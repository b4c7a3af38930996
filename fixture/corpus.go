package fixture

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// File is a named fixture ready to persist.
type File struct {
	Name string
	Data []byte
}

// Corpus builds the named fixture set. Every call returns byte-identical
// files:
//
//	simple.exr      8x8 gradient, scanline EXR, uncompressed FLOAT RGB
//	corrupt.exr     64 bytes of garbage with no valid magic
//	empty.exr       zero bytes
//	not-an-exr.dat  PNG signature followed by zero padding
//	simple.hdr      8x8 gradient, flat Radiance RGBE
//	simple-rle.hdr  32x8 gradient, run-length coded Radiance RGBE
//	corrupt.hdr     same garbage as corrupt.exr
//	empty.hdr       zero bytes
func Corpus() ([]File, error) {
	simpleEXR, err := Encode(Gradient(8, 8), FormatEXR)
	if err != nil {
		return nil, fmt.Errorf("fixture: simple.exr: %w", err)
	}
	simpleHDR, err := Encode(Gradient(8, 8), FormatRadianceFlat)
	if err != nil {
		return nil, fmt.Errorf("fixture: simple.hdr: %w", err)
	}
	simpleRLE, err := Encode(Gradient(32, 8), FormatRadianceRLE)
	if err != nil {
		return nil, fmt.Errorf("fixture: simple-rle.hdr: %w", err)
	}

	return []File{
		{Name: "simple.exr", Data: simpleEXR},
		{Name: "corrupt.exr", Data: corruptBytes()},
		{Name: "empty.exr", Data: nil},
		{Name: "not-an-exr.dat", Data: notAnEXRBytes()},
		{Name: "simple.hdr", Data: simpleHDR},
		{Name: "simple-rle.hdr", Data: simpleRLE},
		{Name: "corrupt.hdr", Data: corruptBytes()},
		{Name: "empty.hdr", Data: nil},
	}, nil
}

// corruptBytes is 64 bytes of recognizable garbage: not empty, and not any
// container magic.
func corruptBytes() []byte {
	return bytes.Repeat([]byte{0xde, 0xad, 0xbe, 0xef}, 16)
}

// notAnEXRBytes is a valid PNG signature followed by 64 zero bytes.
func notAnEXRBytes() []byte {
	return append([]byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}, make([]byte, 64)...)
}

// WriteDir persists files into dir, creating the directory if needed.
func WriteDir(dir string, files []File) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("fixture: create %s: %w", dir, err)
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f.Name), f.Data, 0644); err != nil {
			return fmt.Errorf("fixture: write %s: %w", f.Name, err)
		}
	}
	return nil
}
