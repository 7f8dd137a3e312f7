package volume

// IsEmpty reports if all voxels of v are zero.
func IsEmpty(v *Image) (bool, error) {
	if err := check(v); err != nil {
		return false, err
	}
	for _, p := range v.planes {
		if !p.IsZero() {
			return false, nil
		}
	}
	return true, nil
}
