package volume

// Shift translates src by amplitude steps in direction dir of grid and writes the result to dst.
//
// Every voxel p of dst is set to src[p-d], where d is the displacement of the direction, or to
// fill when p-d lies outside the volume. Nothing wraps around. src and dst may be the same image.
//
// All arguments are checked before dst is written: on error dst is unmodified.
func Shift(src, dst *Image, dir Direction, amplitude int, fill uint32, grid Grid) error {
	if err := check(src, dst); err != nil {
		return err
	}
	if err := checkShape(src, dst); err != nil {
		return err
	}
	d, err := grid.Displacement(dir, amplitude)
	if err != nil {
		return err
	}
	if debug {
		Debugf("volume: shift %s direction %d x%d on %s grid by %s", src, dir, amplitude, grid, d)
	}
	return shift(src, dst, d, fill)
}

// ShiftVector translates src by the displacement d and writes the result to dst. Voxels that
// would be read from outside src are set to fill.
func ShiftVector(src, dst *Image, d Point, fill uint32) error {
	if err := check(src, dst); err != nil {
		return err
	}
	if err := checkShape(src, dst); err != nil {
		return err
	}
	return shift(src, dst, d, fill)
}

func shift(src, dst *Image, d Point, fill uint32) error {
	if d == (Point{}) {
		return dst.CopyFrom(src)
	}
	if src == dst {
		src = src.Clone()
	}

	fill = dst.depth.Truncate(fill)
	for z, out := range dst.planes {
		sz := z - d.Z
		if sz < 0 || sz >= len(src.planes) {
			out.FillValue(fill)
			continue
		}
		in := src.planes[sz]
		for y := 0; y < dst.height; y++ {
			sy := y - d.Y
			for x := 0; x < dst.width; x++ {
				sx := x - d.X
				if sx < 0 || sx >= src.width || sy < 0 || sy >= src.height {
					out.SetValue(x, y, fill)
				} else {
					out.SetValue(x, y, in.Value(sx, sy))
				}
			}
		}
	}
	return nil
}
