package volume

import "github.com/BeatGlow/volume/pixel"

// NoDifference is returned by [Compare] for equal volumes. Any position with a negative Z means
// the volumes are equal.
var NoDifference = Point{-1, -1, -1}

// Compare compares a and b voxel by voxel and returns the position of the first voxel where they
// differ. Voxels are scanned by increasing plane index, and in raster order within a plane.
// If the volumes are equal, [NoDifference] is returned.
//
// Every voxel of out is set to the absolute difference of a and b (exclusive or for binary
// volumes), so out is zero exactly where the volumes are equal. out may be a or b.
func Compare(a, b, out *Image) (Point, error) {
	if err := check(a, b, out); err != nil {
		return NoDifference, err
	}
	if err := checkShape(a, b, out); err != nil {
		return NoDifference, err
	}

	first := NoDifference
	for z := range out.planes {
		if err := pixel.AbsDiff(a.planes[z], b.planes[z], out.planes[z]); err != nil {
			return NoDifference, err
		}
		if first.Z >= 0 {
			continue
		}
		if p, ok := pixel.FirstNonZero(out.planes[z]); ok {
			first = Point{p.X, p.Y, z}
		}
	}

	if debug {
		if first.Z < 0 {
			Debugf("volume: compare %s: equal", a)
		} else {
			Debugf("volume: compare %s: first difference at %s", a, first)
		}
	}
	return first, nil
}
