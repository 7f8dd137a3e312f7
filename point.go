package volume

import "fmt"

// Point is a voxel position, or a displacement between two voxel positions.
type Point struct {
	X, Y, Z int
}

// Pt is shorthand for Point{X: x, Y: y, Z: z}.
func Pt(x, y, z int) Point {
	return Point{X: x, Y: y, Z: z}
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}

// Mul scales p by k.
func (p Point) Mul(k int) Point {
	return Point{p.X * k, p.Y * k, p.Z * k}
}

// In reports if p lies inside b.
func (p Point) In(b Box) bool {
	return b.Min.X <= p.X && p.X < b.Max.X &&
		b.Min.Y <= p.Y && p.Y < b.Max.Y &&
		b.Min.Z <= p.Z && p.Z < b.Max.Z
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d,%d)", p.X, p.Y, p.Z)
}

// Box is a 3D box, Min is inclusive and Max is exclusive like in [image.Rectangle].
type Box struct {
	Min, Max Point
}

// Size of the box along each axis.
func (b Box) Size() Point {
	return b.Max.Sub(b.Min)
}

// Empty reports if the box contains no voxels.
func (b Box) Empty() bool {
	return b.Min.X >= b.Max.X || b.Min.Y >= b.Max.Y || b.Min.Z >= b.Max.Z
}

func (b Box) String() string {
	return b.Min.String() + "-" + b.Max.String()
}
