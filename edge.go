package volume

import "github.com/BeatGlow/volume/draw"

// DrawEdge sets every voxel on the outer shell of v to value: all of the first and the last plane,
// and the border pixels of every plane in between. The other voxels are untouched.
func DrawEdge(v *Image, value uint32) error {
	if err := check(v); err != nil {
		return err
	}

	last := len(v.planes) - 1
	for z, p := range v.planes {
		if z == 0 || z == last {
			p.FillValue(value)
			continue
		}
		draw.RectangleValue(p, p.Bounds(), value)
	}
	return nil
}

// DrawEdgeMax draws the edge of v with the largest value its depth can hold.
func DrawEdgeMax(v *Image) error {
	if err := check(v); err != nil {
		return err
	}
	return DrawEdge(v, v.depth.MaxValue())
}
