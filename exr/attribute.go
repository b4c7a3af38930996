package exr

import (
	"errors"
	"fmt"

	"github.com/mrjoshuak/go-hdrfixture/internal/xdr"
)

// Compression defines the compression method for pixel data.
//
// Only CompressionNone is writable here; the other values exist so headers
// and error messages can name what a file asked for.
type Compression uint8

const (
	// CompressionNone stores uncompressed data.
	CompressionNone Compression = 0
	// CompressionRLE uses run-length encoding.
	CompressionRLE Compression = 1
	// CompressionZIPS uses zlib compression on single scanlines.
	CompressionZIPS Compression = 2
	// CompressionZIP uses zlib compression on 16 scanlines.
	CompressionZIP Compression = 3
	// CompressionPIZ uses wavelet compression.
	CompressionPIZ Compression = 4
	// CompressionPXR24 uses 24-bit float conversion with zlib.
	CompressionPXR24 Compression = 5
	// CompressionB44 uses 4x4 block lossy compression.
	CompressionB44 Compression = 6
	// CompressionB44A uses B44 with flat area detection.
	CompressionB44A Compression = 7
	// CompressionDWAA uses DCT-based lossy compression (32 scanlines).
	CompressionDWAA Compression = 8
	// CompressionDWAB uses DCT-based lossy compression (256 scanlines).
	CompressionDWAB Compression = 9
)

// String returns a string representation of the compression type.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionRLE:
		return "rle"
	case CompressionZIPS:
		return "zips"
	case CompressionZIP:
		return "zip"
	case CompressionPIZ:
		return "piz"
	case CompressionPXR24:
		return "pxr24"
	case CompressionB44:
		return "b44"
	case CompressionB44A:
		return "b44a"
	case CompressionDWAA:
		return "dwaa"
	case CompressionDWAB:
		return "dwab"
	default:
		return "unknown"
	}
}

// LineOrder defines the order of scanlines in the file.
type LineOrder uint8

const (
	// LineOrderIncreasing stores scanlines from top to bottom (y=0 first).
	LineOrderIncreasing LineOrder = 0
	// LineOrderDecreasing stores scanlines from bottom to top (y=max first).
	LineOrderDecreasing LineOrder = 1
	// LineOrderRandom allows scanlines in any order (for tiled images).
	LineOrderRandom LineOrder = 2
)

// String returns a string representation of the line order.
func (lo LineOrder) String() string {
	switch lo {
	case LineOrderIncreasing:
		return "increasing_y"
	case LineOrderDecreasing:
		return "decreasing_y"
	case LineOrderRandom:
		return "random_y"
	default:
		return "unknown"
	}
}

// Attribute errors
var (
	ErrUnknownAttributeValue = errors.New("exr: unknown attribute value type")
)

// AttributeType identifies the type of an attribute.
type AttributeType string

// Attribute types used by the canonical scanline header.
const (
	AttrTypeBox2i       AttributeType = "box2i"
	AttrTypeChlist      AttributeType = "chlist"
	AttrTypeCompression AttributeType = "compression"
	AttrTypeFloat       AttributeType = "float"
	AttrTypeLineOrder   AttributeType = "lineOrder"
	AttrTypeV2f         AttributeType = "v2f"
)

// Attribute represents a single header attribute.
type Attribute struct {
	Name  string
	Type  AttributeType
	Value interface{}
}

// ReadAttribute reads a single attribute from the reader.
// Returns nil when the header terminator (empty name) is reached.
func ReadAttribute(r *xdr.Reader) (*Attribute, error) {
	// Read attribute name
	name, err := r.ReadString()
	if err != nil {
		return nil, err
	}

	// Empty name marks end of header
	if name == "" {
		return nil, nil
	}

	// Read attribute type
	typeName, err := r.ReadString()
	if err != nil {
		return nil, err
	}

	// Read attribute size
	size, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	if size < 0 {
		return nil, xdr.ErrNegativeSize
	}

	attr := &Attribute{
		Name: name,
		Type: AttributeType(typeName),
	}

	// Read attribute value based on type
	switch attr.Type {
	case AttrTypeBox2i:
		attr.Value, err = ReadBox2i(r)
	case AttrTypeChlist:
		attr.Value, err = ReadChannelList(r)
	case AttrTypeCompression:
		b, e := r.ReadByte()
		attr.Value, err = Compression(b), e
	case AttrTypeFloat:
		attr.Value, err = r.ReadFloat32()
	case AttrTypeLineOrder:
		b, e := r.ReadByte()
		attr.Value, err = LineOrder(b), e
	case AttrTypeV2f:
		attr.Value, err = ReadV2f(r)
	default:
		// Unknown attribute type: read raw bytes
		rawBytes, e := r.ReadBytes(int(size))
		if e == nil {
			attr.Value = rawBytes
		}
		err = e
	}

	if err != nil {
		return nil, err
	}

	return attr, nil
}

// WriteAttribute writes an attribute to the writer: name and type as
// null-terminated strings, a 4-byte payload length, then the payload.
func WriteAttribute(w *xdr.BufferWriter, attr *Attribute) error {
	// Write name and type
	w.WriteString(attr.Name)
	w.WriteString(string(attr.Type))

	// Write value to temporary buffer to get size
	valueWriter := xdr.NewBufferWriter(64)
	if err := writeAttributeValue(valueWriter, attr); err != nil {
		return err
	}

	// Write size and value
	w.WriteInt32(int32(valueWriter.Len()))
	w.WriteBytes(valueWriter.Bytes())

	return nil
}

// writeAttributeValue writes the value portion of an attribute to the buffer.
// The type-specific encoding is determined by the attribute's Type field.
func writeAttributeValue(w *xdr.BufferWriter, attr *Attribute) error {
	switch attr.Type {
	case AttrTypeBox2i:
		WriteBox2i(w, attr.Value.(Box2i))
	case AttrTypeChlist:
		WriteChannelList(w, attr.Value.(*ChannelList))
	case AttrTypeCompression:
		w.WriteByte(byte(attr.Value.(Compression)))
	case AttrTypeFloat:
		w.WriteFloat32(attr.Value.(float32))
	case AttrTypeLineOrder:
		w.WriteByte(byte(attr.Value.(LineOrder)))
	case AttrTypeV2f:
		WriteV2f(w, attr.Value.(V2f))
	default:
		// Raw bytes for unknown types
		if bytes, ok := attr.Value.([]byte); ok {
			w.WriteBytes(bytes)
		} else {
			return fmt.Errorf("%w: %s", ErrUnknownAttributeValue, attr.Type)
		}
	}
	return nil
}
