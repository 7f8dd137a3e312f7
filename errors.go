package volume

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrSizeMismatch        = errors.New("volume: size or depth mismatch")
	ErrInvalidHandle       = errors.New("volume: invalid image")
	ErrOutOfRangeDirection = errors.New("volume: direction out of range for grid")
	ErrInvalidAmplitude    = errors.New("volume: amplitude must be positive")
	ErrInvalidSize         = errors.New("volume: invalid size")
)

// check returns ErrInvalidHandle for nil or unconstructed images.
func check(images ...*Image) error {
	for i, v := range images {
		if v == nil || len(v.planes) == 0 {
			return fmt.Errorf("%w: operand %d", ErrInvalidHandle, i)
		}
	}
	return nil
}

// checkShape returns ErrSizeMismatch unless all images have the same size and depth.
func checkShape(images ...*Image) error {
	first := images[0]
	for _, v := range images[1:] {
		if !first.SameShape(v) {
			return fmt.Errorf("%w: %s vs %s", ErrSizeMismatch, first, v)
		}
	}
	return nil
}
