package pixel

import "image"

// AbsDiff sets every pixel of out to the absolute difference of the pixels of a and b. For binary
// planes this is the exclusive or.
//
// The three planes must have the same size and depth. Each pixel is read before it is written,
// so out may be a or b.
func AbsDiff(a, b, out Plane) error {
	if err := checkPlanes(a, b); err != nil {
		return err
	}
	if err := checkPlanes(a, out); err != nil {
		return err
	}

	r := out.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			va, vb := a.Value(x, y), b.Value(x, y)
			if va > vb {
				out.SetValue(x, y, va-vb)
			} else {
				out.SetValue(x, y, vb-va)
			}
		}
	}
	return nil
}

// FirstNonZero returns the first nonzero pixel in raster order (rows top to bottom, pixels left
// to right). It returns false if all pixels are zero.
func FirstNonZero(p Plane) (image.Point, bool) {
	if p.IsZero() {
		return image.Point{}, false
	}
	r := p.Bounds()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if p.Value(x, y) != 0 {
				return image.Pt(x, y), true
			}
		}
	}
	return image.Point{}, false
}

// Range returns the smallest and largest pixel values. An empty plane returns (0, 0).
func Range(p Plane) (min, max uint32) {
	r := p.Bounds()
	if r.Empty() {
		return 0, 0
	}
	min = p.Depth().MaxValue()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			v := p.Value(x, y)
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}
	}
	return
}

// Sum returns the sum of all pixel values.
func Sum(p Plane) uint64 {
	var (
		r   = p.Bounds()
		sum uint64
	)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			sum += uint64(p.Value(x, y))
		}
	}
	return sum
}
