package exr

import (
	"sort"

	"github.com/mrjoshuak/go-hdrfixture/internal/xdr"
)

// PixelType defines the data type for pixel channel values.
type PixelType uint32

const (
	// PixelTypeUint is a 32-bit unsigned integer.
	PixelTypeUint PixelType = 0
	// PixelTypeHalf is a 16-bit IEEE 754 half-precision float.
	PixelTypeHalf PixelType = 1
	// PixelTypeFloat is a 32-bit IEEE 754 single-precision float.
	PixelTypeFloat PixelType = 2
)

// String returns a string representation of the pixel type.
func (pt PixelType) String() string {
	switch pt {
	case PixelTypeUint:
		return "uint"
	case PixelTypeHalf:
		return "half"
	case PixelTypeFloat:
		return "float"
	default:
		return "unknown"
	}
}

// Size returns the size in bytes of one pixel value.
func (pt PixelType) Size() int {
	switch pt {
	case PixelTypeUint:
		return 4
	case PixelTypeHalf:
		return 2
	case PixelTypeFloat:
		return 4
	default:
		return 0
	}
}

// Channel describes a single image channel.
type Channel struct {
	// Name is the channel name (e.g., "R", "G", "B").
	Name string
	// Type is the pixel data type.
	Type PixelType
	// XSampling is the horizontal subsampling factor (1 = full resolution).
	XSampling int32
	// YSampling is the vertical subsampling factor (1 = full resolution).
	YSampling int32
	// PLinear indicates if the channel stores perceptually linear data.
	// This is a hint for display applications.
	PLinear bool
}

// NewChannel creates a new channel with the given name and type.
// XSampling and YSampling default to 1 (full resolution).
func NewChannel(name string, pixelType PixelType) Channel {
	return Channel{
		Name:      name,
		Type:      pixelType,
		XSampling: 1,
		YSampling: 1,
		PLinear:   false,
	}
}

// ChannelList represents a collection of channels.
type ChannelList struct {
	channels []Channel
	byName   map[string]int // Index by name
}

// NewChannelList creates an empty channel list.
func NewChannelList() *ChannelList {
	return &ChannelList{
		channels: make([]Channel, 0),
		byName:   make(map[string]int),
	}
}

// Add adds a channel to the list. Returns false if a channel
// with the same name already exists.
func (cl *ChannelList) Add(c Channel) bool {
	if _, exists := cl.byName[c.Name]; exists {
		return false
	}
	cl.byName[c.Name] = len(cl.channels)
	cl.channels = append(cl.channels, c)
	return true
}

// Get returns a channel by name, or nil if not found.
func (cl *ChannelList) Get(name string) *Channel {
	idx, exists := cl.byName[name]
	if !exists {
		return nil
	}
	return &cl.channels[idx]
}

// Len returns the number of channels.
func (cl *ChannelList) Len() int {
	return len(cl.channels)
}

// At returns the channel at the given index, in insertion order.
func (cl *ChannelList) At(i int) Channel {
	return cl.channels[i]
}

// Names returns a slice of all channel names in insertion order.
func (cl *ChannelList) Names() []string {
	names := make([]string, len(cl.channels))
	for i, c := range cl.channels {
		names[i] = c.Name
	}
	return names
}

// SortedByName returns a copy of all channels sorted alphabetically by name.
// This is the canonical order for the channel list attribute and for the
// pixel data within a scanline block.
func (cl *ChannelList) SortedByName() []Channel {
	result := make([]Channel, len(cl.channels))
	copy(result, cl.channels)
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result
}

// HasRGB returns true if the channel list contains R, G, and B channels.
func (cl *ChannelList) HasRGB() bool {
	_, hasR := cl.byName["R"]
	_, hasG := cl.byName["G"]
	_, hasB := cl.byName["B"]
	return hasR && hasG && hasB
}

// ReadChannelList reads a channel list from the reader.
// The format is: channel entries followed by a null byte.
// Each channel entry is: name\0, type (4 bytes), pLinear (1 byte),
// reserved (3 bytes), xSampling (4 bytes), ySampling (4 bytes).
func ReadChannelList(r *xdr.Reader) (*ChannelList, error) {
	cl := NewChannelList()

	for {
		// Read channel name
		name, err := r.ReadString()
		if err != nil {
			return nil, err
		}

		// Empty name marks end of channel list
		if name == "" {
			break
		}

		// Read channel properties
		pixelType, err := r.ReadUint32()
		if err != nil {
			return nil, err
		}

		pLinear, err := r.ReadByte()
		if err != nil {
			return nil, err
		}

		// Skip 3 reserved bytes
		if err := r.Skip(3); err != nil {
			return nil, err
		}

		xSampling, err := r.ReadInt32()
		if err != nil {
			return nil, err
		}

		ySampling, err := r.ReadInt32()
		if err != nil {
			return nil, err
		}

		cl.Add(Channel{
			Name:      name,
			Type:      PixelType(pixelType),
			PLinear:   pLinear != 0,
			XSampling: xSampling,
			YSampling: ySampling,
		})
	}

	return cl, nil
}

// WriteChannelList writes a channel list to the writer. Channels are
// serialized sorted by name regardless of insertion order, as the format
// requires.
func WriteChannelList(w *xdr.BufferWriter, cl *ChannelList) {
	for _, c := range cl.SortedByName() {
		w.WriteString(c.Name)
		w.WriteUint32(uint32(c.Type))
		if c.PLinear {
			w.WriteByte(1)
		} else {
			w.WriteByte(0)
		}
		// 3 reserved bytes
		w.WriteByte(0)
		w.WriteByte(0)
		w.WriteByte(0)
		w.WriteInt32(c.XSampling)
		w.WriteInt32(c.YSampling)
	}
	// Terminating null byte
	w.WriteByte(0)
}

// BytesPerPixel returns the total bytes needed per pixel for all channels.
func (cl *ChannelList) BytesPerPixel() int {
	total := 0
	for _, c := range cl.channels {
		total += c.Type.Size()
	}
	return total
}

// BytesPerScanline returns bytes needed for one scanline of the given width,
// accounting for subsampling.
func (cl *ChannelList) BytesPerScanline(width int) int {
	total := 0
	for _, c := range cl.channels {
		sampledWidth := (width + int(c.XSampling) - 1) / int(c.XSampling)
		total += sampledWidth * c.Type.Size()
	}
	return total
}
