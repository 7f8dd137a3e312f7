package pixel

import (
	"errors"
	"fmt"
	"image/color"
	"strings"
)

// Errors
var (
	ErrDepth    = errors.New("pixel: unsupported depth")
	ErrMismatch = errors.New("pixel: plane size or depth mismatch")
)

// Depth is the number of bits used to store one pixel.
type Depth uint8

// Supported depths.
const (
	Binary Depth = 1  // 1-bit, 0 or 1
	Gray   Depth = 8  // 8-bit gray scale
	Int32  Depth = 32 // 32-bit unsigned integer
)

// Valid reports if d is one of the supported depths.
func (d Depth) Valid() bool {
	switch d {
	case Binary, Gray, Int32:
		return true
	default:
		return false
	}
}

// Bits per pixel.
func (d Depth) Bits() int {
	return int(d)
}

// MaxValue is the largest value a pixel of this depth can hold.
func (d Depth) MaxValue() uint32 {
	switch d {
	case Binary:
		return 1
	case Gray:
		return 0xff
	case Int32:
		return 0xffffffff
	default:
		return 0
	}
}

// Truncate reduces v to a value that a pixel of this depth can hold.
func (d Depth) Truncate(v uint32) uint32 {
	switch d {
	case Binary:
		if v != 0 {
			return 1
		}
		return 0
	case Gray:
		return v & 0xff
	default:
		return v
	}
}

// Color returns the color of a pixel with value v in the color model of this depth.
func (d Depth) Color(v uint32) color.Color {
	switch d {
	case Binary:
		return Mono{On: v != 0}
	case Gray:
		return color.Gray{Y: uint8(v)}
	default:
		return Int32Color{V: v}
	}
}

// Model returns the color model of planes with this depth.
func (d Depth) Model() color.Model {
	switch d {
	case Binary:
		return MonoModel
	case Gray:
		return GrayModel
	case Int32:
		return Int32Model
	default:
		return nil
	}
}

func (d Depth) String() string {
	switch d {
	case Binary:
		return "binary"
	case Gray:
		return "gray"
	case Int32:
		return "int32"
	default:
		return fmt.Sprintf("depth(%d)", uint8(d))
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (d Depth) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrDepth, uint8(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler], it accepts both names and bit counts.
func (d *Depth) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "binary", "bin", "1":
		*d = Binary
	case "gray", "grey", "8":
		*d = Gray
	case "int32", "int", "32":
		*d = Int32
	default:
		return fmt.Errorf("%w: %q", ErrDepth, text)
	}
	return nil
}
