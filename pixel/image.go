package pixel

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// Image is a drawable image that can be cleared and filled.
type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Plane is an image with a fixed depth whose pixels can be accessed as plain integer values.
type Plane interface {
	Image

	// Depth of the pixels.
	Depth() Depth

	// Value returns the pixel value at (x, y), or 0 if (x, y) is out of bounds.
	Value(x, y int) uint32

	// SetValue sets the pixel value at (x, y), truncated to the plane depth.
	SetValue(x, y int, v uint32)

	// FillValue sets all pixels to v, truncated to the plane depth.
	FillValue(v uint32)

	// CopyFrom copies all pixels from src, which must have the same size and depth.
	CopyFrom(src Plane) error

	// IsZero reports if all pixels are zero.
	IsZero() bool
}

// New returns a zeroed plane of the requested depth.
func New(depth Depth, w, h int) (Plane, error) {
	switch depth {
	case Binary:
		return NewMonoImage(w, h), nil
	case Gray:
		return NewGrayImage(w, h), nil
	case Int32:
		return NewInt32Image(w, h), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrDepth, uint8(depth))
	}
}

// Buffer holds the pixel values and is a container that is used by all plane formats in this package.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

func (p *Buffer) IsZero() bool {
	for _, v := range p.Pix {
		if v != 0 {
			return false
		}
	}
	return true
}

func (p *Buffer) buffer() *Buffer {
	return p
}

func makeBuffer(w, h, stride, size int) Buffer {
	return Buffer{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, size),
		Stride: stride,
	}
}

type buffered interface {
	buffer() *Buffer
}

// MonoImage is a 1-bit per pixel monochrome image.
type MonoImage struct {
	Buffer
}

func NewMonoImage(w, h int) *MonoImage {
	stride := ((w + 7) & ^7) / 8 // round up to whole bytes
	return &MonoImage{
		Buffer: makeBuffer(w, h, stride, stride*h),
	}
}

func (p *MonoImage) ColorModel() color.Model {
	return MonoModel
}

func (p *MonoImage) Depth() Depth {
	return Binary
}

func (p *MonoImage) PixOffset(x, y int) int {
	return y*p.Stride + x/8
}

func (p *MonoImage) At(x, y int) color.Color {
	if !(image.Point{x, y}).In(p.Rect) {
		return color.Transparent
	}

	index := y*p.Stride + x/8
	pixel := p.Pix[index] & (1 << uint(x%8))

	if pixel != 0 {
		return On
	}
	return Off
}

func (p *MonoImage) Set(x, y int, c color.Color) {
	p.SetValue(x, y, boolValue(monoModel(c).(Mono).On))
}

func (p *MonoImage) Value(x, y int) uint32 {
	if !(image.Point{x, y}).In(p.Rect) {
		return 0
	}
	return uint32(p.Pix[y*p.Stride+x/8]>>uint(x%8)) & 1
}

func (p *MonoImage) SetValue(x, y int, v uint32) {
	if !(image.Point{x, y}).In(p.Rect) {
		return
	}

	index := y*p.Stride + x/8
	if v != 0 {
		p.Pix[index] |= (1 << uint(x%8))
	} else {
		p.Pix[index] &^= (1 << uint(x%8))
	}
}

func (p *MonoImage) Fill(c color.Color) {
	p.FillValue(boolValue(monoModel(c).(Mono).On))
}

// FillValue sets all pixels. The padding bits at the end of each row are kept clear, so a
// plane that has all pixels cleared is always IsZero.
func (p *MonoImage) FillValue(v uint32) {
	if v == 0 {
		p.Clear()
		return
	}
	var (
		w    = p.Rect.Dx()
		last = byte(0xff)
	)
	if r := w % 8; r != 0 {
		last = byte(1<<uint(r)) - 1
	}
	for y := 0; y < p.Rect.Dy(); y++ {
		row := p.Pix[y*p.Stride : (y+1)*p.Stride]
		for i := range row {
			row[i] = 0xff
		}
		if len(row) > 0 {
			row[len(row)-1] = last
		}
	}
}

func (p *MonoImage) CopyFrom(src Plane) error {
	return copyPlane(p, src)
}

// GrayImage is an 8-bit per pixel gray scale image.
type GrayImage struct {
	Buffer
}

func NewGrayImage(w, h int) *GrayImage {
	return &GrayImage{
		Buffer: makeBuffer(w, h, w, w*h),
	}
}

func (p *GrayImage) ColorModel() color.Model {
	return GrayModel
}

func (p *GrayImage) Depth() Depth {
	return Gray
}

func (p *GrayImage) At(x, y int) color.Color {
	if !(image.Point{x, y}).In(p.Rect) {
		return color.Transparent
	}
	return color.Gray{Y: p.Pix[y*p.Stride+x]}
}

func (p *GrayImage) Set(x, y int, c color.Color) {
	p.SetValue(x, y, uint32(GrayModel.Convert(c).(color.Gray).Y))
}

func (p *GrayImage) Value(x, y int) uint32 {
	if !(image.Point{x, y}).In(p.Rect) {
		return 0
	}
	return uint32(p.Pix[y*p.Stride+x])
}

func (p *GrayImage) SetValue(x, y int, v uint32) {
	if !(image.Point{x, y}).In(p.Rect) {
		return
	}
	p.Pix[y*p.Stride+x] = uint8(v)
}

func (p *GrayImage) Fill(c color.Color) {
	p.FillValue(uint32(GrayModel.Convert(c).(color.Gray).Y))
}

func (p *GrayImage) FillValue(v uint32) {
	value := uint8(v)
	for i := range p.Pix {
		p.Pix[i] = value
	}
}

func (p *GrayImage) CopyFrom(src Plane) error {
	return copyPlane(p, src)
}

// Int32Image is a 32-bits per pixel integer image.
type Int32Image struct {
	Buffer
	Order binary.ByteOrder
}

func NewInt32Image(w, h int) *Int32Image {
	return &Int32Image{
		Buffer: makeBuffer(w, h, w*4, w*4*h),
		Order:  binary.BigEndian,
	}
}

func (p *Int32Image) ColorModel() color.Model {
	return Int32Model
}

func (p *Int32Image) Depth() Depth {
	return Int32
}

func (p *Int32Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return Int32Color{p.Order.Uint32(p.Pix[x*4+y*p.Stride:])}
}

func (p *Int32Image) Set(x, y int, c color.Color) {
	p.SetValue(x, y, int32Model(c).(Int32Color).V)
}

func (p *Int32Image) Value(x, y int) uint32 {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return 0
	}
	return p.Order.Uint32(p.Pix[x*4+y*p.Stride:])
}

func (p *Int32Image) SetValue(x, y int, v uint32) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.Order.PutUint32(p.Pix[x*4+y*p.Stride:], v)
}

func (p *Int32Image) Fill(c color.Color) {
	p.FillValue(int32Model(c).(Int32Color).V)
}

func (p *Int32Image) FillValue(v uint32) {
	bytes := make([]byte, 4)
	p.Order.PutUint32(bytes, v)
	for i, l := 0, len(p.Pix); i < l; i += 4 {
		copy(p.Pix[i:], bytes)
	}
}

func (p *Int32Image) CopyFrom(src Plane) error {
	if s, ok := src.(*Int32Image); ok && s.Order != p.Order {
		if err := checkPlanes(p, src); err != nil {
			return err
		}
		copyValues(p, src)
		return nil
	}
	return copyPlane(p, src)
}

func boolValue(on bool) uint32 {
	if on {
		return 1
	}
	return 0
}

func checkPlanes(a, b Plane) error {
	if a.Depth() != b.Depth() {
		return fmt.Errorf("%w: depth %s vs %s", ErrMismatch, a.Depth(), b.Depth())
	}
	if ra, rb := a.Bounds(), b.Bounds(); !ra.Eq(rb) {
		return fmt.Errorf("%w: bounds %s vs %s", ErrMismatch, ra, rb)
	}
	return nil
}

func copyPlane(dst, src Plane) error {
	if err := checkPlanes(dst, src); err != nil {
		return err
	}
	d, dok := dst.(buffered)
	s, sok := src.(buffered)
	if dok && sok && len(d.buffer().Pix) == len(s.buffer().Pix) {
		copy(d.buffer().Pix, s.buffer().Pix)
		return nil
	}
	copyValues(dst, src)
	return nil
}

func copyValues(dst, src Plane) {
	r := dst.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			dst.SetValue(x, y, src.Value(x, y))
		}
	}
}

// Interface checks.
var (
	_ Plane = (*MonoImage)(nil)
	_ Plane = (*GrayImage)(nil)
	_ Plane = (*Int32Image)(nil)
)
