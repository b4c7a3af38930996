package exr

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mrjoshuak/go-hdrfixture/internal/xdr"
)

// Standard header attribute names
const (
	AttrNameChannels           = "channels"
	AttrNameCompression        = "compression"
	AttrNameDataWindow         = "dataWindow"
	AttrNameDisplayWindow      = "displayWindow"
	AttrNameLineOrder          = "lineOrder"
	AttrNamePixelAspectRatio   = "pixelAspectRatio"
	AttrNameScreenWindowCenter = "screenWindowCenter"
	AttrNameScreenWindowWidth  = "screenWindowWidth"
)

// Header errors
var (
	ErrMissingAttribute  = errors.New("exr: missing required attribute")
	ErrInvalidDimensions = errors.New("exr: invalid dimensions")
)

// Header represents the header of a single-part scanline OpenEXR file.
type Header struct {
	attrs map[string]*Attribute
}

// NewHeader creates a new empty header.
func NewHeader() *Header {
	return &Header{
		attrs: make(map[string]*Attribute),
	}
}

// NewScanlineHeader creates a header for an uncompressed RGB FLOAT scanline
// image of the given dimensions, with the full required attribute set.
func NewScanlineHeader(width, height int) *Header {
	h := NewHeader()

	dataWindow := Box2i{Min: V2i{0, 0}, Max: V2i{int32(width - 1), int32(height - 1)}}
	h.SetDataWindow(dataWindow)
	h.SetDisplayWindow(dataWindow)
	h.SetCompression(CompressionNone)
	h.SetLineOrder(LineOrderIncreasing)
	h.SetPixelAspectRatio(1.0)
	h.SetScreenWindowCenter(V2f{0, 0})
	h.SetScreenWindowWidth(1.0)

	cl := NewChannelList()
	cl.Add(NewChannel("R", PixelTypeFloat))
	cl.Add(NewChannel("G", PixelTypeFloat))
	cl.Add(NewChannel("B", PixelTypeFloat))
	h.SetChannels(cl)

	return h
}

// Set sets an attribute value.
func (h *Header) Set(attr *Attribute) {
	h.attrs[attr.Name] = attr
}

// Get returns an attribute by name, or nil if not found.
func (h *Header) Get(name string) *Attribute {
	return h.attrs[name]
}

// Has returns true if the header has an attribute with the given name.
func (h *Header) Has(name string) bool {
	_, ok := h.attrs[name]
	return ok
}

// Remove removes an attribute by name.
func (h *Header) Remove(name string) {
	delete(h.attrs, name)
}

// Attributes returns all attributes as a slice, sorted by name for
// deterministic iteration.
func (h *Header) Attributes() []*Attribute {
	names := h.sortedAttributeNames()
	result := make([]*Attribute, len(names))
	for i, name := range names {
		result[i] = h.attrs[name]
	}
	return result
}

// sortedAttributeNames returns attribute names in sorted order for
// deterministic serialization. For the canonical scanline attribute set the
// sorted order is also the order the format convention expects.
func (h *Header) sortedAttributeNames() []string {
	names := make([]string, 0, len(h.attrs))
	for name := range h.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Required attribute accessors

// Channels returns the channel list.
func (h *Header) Channels() *ChannelList {
	attr := h.attrs[AttrNameChannels]
	if attr == nil {
		return nil
	}
	if cl, ok := attr.Value.(*ChannelList); ok {
		return cl
	}
	return nil
}

// SetChannels sets the channel list.
func (h *Header) SetChannels(cl *ChannelList) {
	h.Set(&Attribute{Name: AttrNameChannels, Type: AttrTypeChlist, Value: cl})
}

// Compression returns the compression method.
func (h *Header) Compression() Compression {
	attr := h.attrs[AttrNameCompression]
	if attr == nil {
		return CompressionNone
	}
	if c, ok := attr.Value.(Compression); ok {
		return c
	}
	return CompressionNone
}

// SetCompression sets the compression method.
func (h *Header) SetCompression(c Compression) {
	h.Set(&Attribute{Name: AttrNameCompression, Type: AttrTypeCompression, Value: c})
}

// DataWindow returns the data window (bounding box of actual pixel data).
func (h *Header) DataWindow() Box2i {
	attr := h.attrs[AttrNameDataWindow]
	if attr == nil {
		return Box2i{}
	}
	if b, ok := attr.Value.(Box2i); ok {
		return b
	}
	return Box2i{}
}

// SetDataWindow sets the data window.
func (h *Header) SetDataWindow(b Box2i) {
	h.Set(&Attribute{Name: AttrNameDataWindow, Type: AttrTypeBox2i, Value: b})
}

// DisplayWindow returns the display window (full image dimensions).
func (h *Header) DisplayWindow() Box2i {
	attr := h.attrs[AttrNameDisplayWindow]
	if attr == nil {
		return Box2i{}
	}
	if b, ok := attr.Value.(Box2i); ok {
		return b
	}
	return Box2i{}
}

// SetDisplayWindow sets the display window.
func (h *Header) SetDisplayWindow(b Box2i) {
	h.Set(&Attribute{Name: AttrNameDisplayWindow, Type: AttrTypeBox2i, Value: b})
}

// LineOrder returns the scanline ordering.
func (h *Header) LineOrder() LineOrder {
	attr := h.attrs[AttrNameLineOrder]
	if attr == nil {
		return LineOrderIncreasing
	}
	if lo, ok := attr.Value.(LineOrder); ok {
		return lo
	}
	return LineOrderIncreasing
}

// SetLineOrder sets the scanline ordering.
func (h *Header) SetLineOrder(lo LineOrder) {
	h.Set(&Attribute{Name: AttrNameLineOrder, Type: AttrTypeLineOrder, Value: lo})
}

// PixelAspectRatio returns the pixel aspect ratio.
func (h *Header) PixelAspectRatio() float32 {
	attr := h.attrs[AttrNamePixelAspectRatio]
	if attr == nil {
		return 1.0
	}
	if ratio, ok := attr.Value.(float32); ok {
		return ratio
	}
	return 1.0
}

// SetPixelAspectRatio sets the pixel aspect ratio.
func (h *Header) SetPixelAspectRatio(ratio float32) {
	h.Set(&Attribute{Name: AttrNamePixelAspectRatio, Type: AttrTypeFloat, Value: ratio})
}

// ScreenWindowCenter returns the screen window center.
func (h *Header) ScreenWindowCenter() V2f {
	attr := h.attrs[AttrNameScreenWindowCenter]
	if attr == nil {
		return V2f{0, 0}
	}
	if v, ok := attr.Value.(V2f); ok {
		return v
	}
	return V2f{0, 0}
}

// SetScreenWindowCenter sets the screen window center.
func (h *Header) SetScreenWindowCenter(center V2f) {
	h.Set(&Attribute{Name: AttrNameScreenWindowCenter, Type: AttrTypeV2f, Value: center})
}

// ScreenWindowWidth returns the screen window width.
func (h *Header) ScreenWindowWidth() float32 {
	attr := h.attrs[AttrNameScreenWindowWidth]
	if attr == nil {
		return 1.0
	}
	if w, ok := attr.Value.(float32); ok {
		return w
	}
	return 1.0
}

// SetScreenWindowWidth sets the screen window width.
func (h *Header) SetScreenWindowWidth(width float32) {
	h.Set(&Attribute{Name: AttrNameScreenWindowWidth, Type: AttrTypeFloat, Value: width})
}

// Helper methods

// Width returns the width of the data window.
func (h *Header) Width() int {
	return int(h.DataWindow().Width())
}

// Height returns the height of the data window.
func (h *Header) Height() int {
	return int(h.DataWindow().Height())
}

// Validate checks that all required attributes are present and valid.
func (h *Header) Validate() error {
	required := []string{
		AttrNameChannels,
		AttrNameCompression,
		AttrNameDataWindow,
		AttrNameDisplayWindow,
		AttrNameLineOrder,
		AttrNamePixelAspectRatio,
		AttrNameScreenWindowCenter,
		AttrNameScreenWindowWidth,
	}

	for _, name := range required {
		if !h.Has(name) {
			return fmt.Errorf("%w: %s", ErrMissingAttribute, name)
		}
	}

	dw := h.DataWindow()
	if dw.IsEmpty() {
		return fmt.Errorf("%w: data window is empty", ErrInvalidDimensions)
	}

	cl := h.Channels()
	if cl == nil || cl.Len() == 0 {
		return fmt.Errorf("%w: no channels defined", ErrUnsupportedChannels)
	}

	return nil
}

// ReadHeader reads a header from the reader.
func ReadHeader(r *xdr.Reader) (*Header, error) {
	h := NewHeader()

	for {
		attr, err := ReadAttribute(r)
		if err != nil {
			return nil, err
		}
		if attr == nil {
			// End of header
			break
		}
		h.Set(attr)
	}

	return h, nil
}

// WriteHeader writes a header to the writer, attributes in sorted name order,
// terminated with a null byte (empty name).
func WriteHeader(w *xdr.BufferWriter, h *Header) error {
	names := h.sortedAttributeNames()
	for _, name := range names {
		attr := h.attrs[name]
		if err := WriteAttribute(w, attr); err != nil {
			return err
		}
	}
	// Header terminator
	w.WriteByte(0)
	return nil
}
