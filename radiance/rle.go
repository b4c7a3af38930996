package radiance

import (
	"errors"
)

// RLE coding errors
var (
	// ErrRLECorrupted indicates that RLE data is malformed or truncated.
	ErrRLECorrupted = errors.New("radiance: corrupted RLE data")

	// ErrRLEOverflow indicates that decompressed data would exceed the
	// expected size.
	ErrRLEOverflow = errors.New("radiance: RLE decompressed size overflow")
)

// RLE constants
const (
	// rleMinRunLength is the minimum run worth a run code. Shorter
	// repeats are folded into the surrounding literal span.
	rleMinRunLength = 3

	// rleMaxRunLength is the maximum run a single code can carry. The
	// count byte holds 128+n, so n tops out at 127.
	rleMaxRunLength = 127

	// rleMaxLiteralLength is the maximum literal span a single code can
	// carry. The count byte holds n directly, n in [1, 128].
	rleMaxLiteralLength = 128
)

// RLECompress encodes one channel of a scanline using the new-style
// Radiance run-length scheme.
//
// A count byte above 128 marks a run: (count-128) copies of the byte that
// follows. A count byte in [1, 128] marks a literal span of that many raw
// bytes. Runs of at least 3 always become run codes, so a literal span
// never starts a 3-byte repeat and a zero count is never produced.
//
// For example:
//
//	[A, A, A, A, B, C, D] -> [132, A, 3, B, C, D]
//	(run of 4 A's, then 3 literal bytes)
func RLECompress(src []byte) []byte {
	if len(src) == 0 {
		return nil
	}
	return rleAppend(make([]byte, 0, len(src)+len(src)/2), src)
}

// rleAppend appends the encoding of src to dst and returns the extended
// buffer.
func rleAppend(dst, src []byte) []byte {
	i := 0
	for i < len(src) {
		// Measure the run at the cursor.
		val := src[i]
		runEnd := i + 1
		for runEnd < len(src) && src[runEnd] == val && runEnd-i < rleMaxRunLength {
			runEnd++
		}

		if runEnd-i >= rleMinRunLength {
			dst = append(dst, byte(128+(runEnd-i)), val)
			i = runEnd
			continue
		}

		// Collect a literal span. It stops before any position that
		// starts a run of 3; no such run starts at the cursor, so the
		// span holds at least one byte.
		literalStart := i
		for i < len(src) && i-literalStart < rleMaxLiteralLength {
			if i+rleMinRunLength <= len(src) && src[i] == src[i+1] && src[i] == src[i+2] {
				break
			}
			i++
		}

		dst = append(dst, byte(i-literalStart))
		dst = append(dst, src[literalStart:i]...)
	}
	return dst
}

// RLEDecompress decodes RLE data produced by RLECompress. The expected
// decompressed size must be known from context (for scanline channels it is
// the image width).
func RLEDecompress(src []byte, expectedSize int) ([]byte, error) {
	if len(src) == 0 {
		if expectedSize != 0 {
			return nil, ErrRLECorrupted
		}
		return nil, nil
	}

	dst := make([]byte, expectedSize)
	dstPos := 0

	i := 0
	for i < len(src) {
		count := int(src[i])
		i++

		switch {
		case count > 128:
			// Run: repeat the next byte (count-128) times.
			runLength := count - 128
			if i >= len(src) {
				return nil, ErrRLECorrupted
			}
			if dstPos+runLength > expectedSize {
				return nil, ErrRLEOverflow
			}
			val := src[i]
			i++
			for end := dstPos + runLength; dstPos < end; dstPos++ {
				dst[dstPos] = val
			}
		case count > 0:
			// Literal: copy the next count bytes verbatim.
			if i+count > len(src) {
				return nil, ErrRLECorrupted
			}
			if dstPos+count > expectedSize {
				return nil, ErrRLEOverflow
			}
			copy(dst[dstPos:], src[i:i+count])
			dstPos += count
			i += count
		default:
			// The encoder never produces a zero count.
			return nil, ErrRLECorrupted
		}
	}

	if dstPos != expectedSize {
		return nil, ErrRLECorrupted
	}

	return dst, nil
}
