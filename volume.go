// Package volume implements volumetric images and the primitives that 3D morphology is built from.
//
// A volumetric [Image] is a fixed length stack of same sized [pixel.Plane] values. The primitives
// in this package test a volume for emptiness ([IsEmpty]), compare two volumes ([Compare]),
// translate a volume along a grid direction ([Shift]) and mark its outer shell ([DrawEdge]).
//
// All operations run synchronously on the calling goroutine. Images are not safe for concurrent
// mutation.
package volume

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/BeatGlow/volume/pixel"
)

// Image is a volumetric image: a stack of planes sharing width, height and depth.
type Image struct {
	planes []pixel.Plane
	width  int
	height int
	depth  pixel.Depth
}

// New returns a zeroed volume of width × height × length voxels.
func New(width, height, length int, depth pixel.Depth) (*Image, error) {
	if width <= 0 || height <= 0 || length <= 0 {
		return nil, fmt.Errorf("%w: %dx%dx%d", ErrInvalidSize, width, height, length)
	}
	if !depth.Valid() {
		return nil, fmt.Errorf("%w: %d", pixel.ErrDepth, uint8(depth))
	}

	v := &Image{
		planes: make([]pixel.Plane, length),
		width:  width,
		height: height,
		depth:  depth,
	}
	for z := range v.planes {
		p, err := pixel.New(depth, width, height)
		if err != nil {
			return nil, err
		}
		v.planes[z] = p
	}
	if debug {
		Debugf("volume: new %s (%s)", v, humanSize(v))
	}
	return v, nil
}

// NewDefault returns a zeroed volume with the library wide default size.
func NewDefault(depth pixel.Depth) (*Image, error) {
	s := DefaultSize()
	return New(s.X, s.Y, s.Z, depth)
}

// Width of each plane.
func (v *Image) Width() int { return v.width }

// Height of each plane.
func (v *Image) Height() int { return v.height }

// Length is the number of planes.
func (v *Image) Length() int { return len(v.planes) }

// Depth of the voxels.
func (v *Image) Depth() pixel.Depth { return v.depth }

// Size returns width, height and length as a Point.
func (v *Image) Size() Point {
	return Point{v.width, v.height, len(v.planes)}
}

// Bounds returns the box covering all voxels.
func (v *Image) Bounds() Box {
	return Box{Max: v.Size()}
}

// Plane returns the plane at index z. It panics if z is out of range.
func (v *Image) Plane(z int) pixel.Plane {
	return v.planes[z]
}

// Planes returns the planes in z order. The slice must not be modified.
func (v *Image) Planes() []pixel.Plane {
	return v.planes
}

// SameShape reports if o has the same width, height, length and depth as v.
func (v *Image) SameShape(o *Image) bool {
	return v.width == o.width &&
		v.height == o.height &&
		len(v.planes) == len(o.planes) &&
		v.depth == o.depth
}

// Value returns the voxel value at p, or 0 if p is out of bounds.
func (v *Image) Value(p Point) uint32 {
	if !p.In(v.Bounds()) {
		return 0
	}
	return v.planes[p.Z].Value(p.X, p.Y)
}

// SetValue sets the voxel at p, truncated to the depth. Out of bounds positions are ignored.
func (v *Image) SetValue(p Point, value uint32) {
	if !p.In(v.Bounds()) {
		return
	}
	v.planes[p.Z].SetValue(p.X, p.Y, value)
}

// Fill sets all voxels to value.
func (v *Image) Fill(value uint32) {
	for _, p := range v.planes {
		p.FillValue(value)
	}
}

// Clear sets all voxels to zero.
func (v *Image) Clear() {
	for _, p := range v.planes {
		p.Clear()
	}
}

// Clone returns a deep copy of v.
func (v *Image) Clone() *Image {
	c, err := New(v.width, v.height, len(v.planes), v.depth)
	if err != nil {
		// v was constructed with the same arguments.
		panic(err)
	}
	for z, p := range v.planes {
		if err = c.planes[z].CopyFrom(p); err != nil {
			panic(err)
		}
	}
	return c
}

// CopyFrom copies all voxels of src into v.
func (v *Image) CopyFrom(src *Image) error {
	if err := check(v, src); err != nil {
		return err
	}
	if err := checkShape(v, src); err != nil {
		return err
	}
	if v == src {
		return nil
	}
	for z, p := range src.planes {
		if err := v.planes[z].CopyFrom(p); err != nil {
			return err
		}
	}
	return nil
}

// Range returns the smallest and largest voxel values.
func (v *Image) Range() (min, max uint32) {
	for z, p := range v.planes {
		lo, hi := pixel.Range(p)
		if z == 0 || lo < min {
			min = lo
		}
		if hi > max {
			max = hi
		}
	}
	return
}

// Volume returns the sum of all voxel values.
func (v *Image) Volume() (sum uint64) {
	for _, p := range v.planes {
		sum += pixel.Sum(p)
	}
	return
}

// Sum64 returns a digest of the volume shape and all voxel values. Two volumes with equal contents
// have equal digests.
func (v *Image) Sum64() uint64 {
	var (
		h      = xxhash.New()
		header [13]byte
	)
	header[0] = byte(v.depth)
	binary.BigEndian.PutUint32(header[1:], uint32(v.width))
	binary.BigEndian.PutUint32(header[5:], uint32(v.height))
	binary.BigEndian.PutUint32(header[9:], uint32(len(v.planes)))
	_, _ = h.Write(header[:])

	// Hash values rather than buffers, so the digest does not depend on the plane layout.
	row := make([]byte, 4*v.width)
	for _, p := range v.planes {
		for y := 0; y < v.height; y++ {
			for x := 0; x < v.width; x++ {
				binary.BigEndian.PutUint32(row[x*4:], p.Value(x, y))
			}
			_, _ = h.Write(row)
		}
	}
	return h.Sum64()
}

func (v *Image) String() string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%dx%dx%d %s", v.width, v.height, len(v.planes), v.depth)
}
