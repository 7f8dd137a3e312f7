package pixel

import "image/color"

// Models for the plane color types.
var (
	MonoModel  color.Model = color.ModelFunc(monoModel)
	GrayModel  color.Model = color.GrayModel
	Int32Model color.Model = color.ModelFunc(int32Model)
)

// Binary pixel colors.
var (
	Off = Mono{false}
	On  = Mono{true}
)

// Mono represents a 1-bit monochrome color.
type Mono struct {
	On bool
}

func (c Mono) RGBA() (r, g, b, a uint32) {
	if c.On {
		return 0xffff, 0xffff, 0xffff, 0xffff
	}
	return 0, 0, 0, 0xffff
}

func monoModel(c color.Color) color.Color {
	switch c := c.(type) {
	case Mono:
		return c
	case Int32Color:
		return Mono{On: c.V != 0}
	}
	// Pixels at least half as bright as white are on.
	return Mono{On: luma(c) >= 0x8000}
}

// Int32Color represents a 32-bit integer pixel value.
//
// Values above 0xffff saturate to white when converted to RGBA.
type Int32Color struct {
	V uint32
}

func (c Int32Color) RGBA() (r, g, b, a uint32) {
	y := c.V
	if y > 0xffff {
		y = 0xffff
	}
	return y, y, y, 0xffff
}

func int32Model(c color.Color) color.Color {
	switch c := c.(type) {
	case Int32Color:
		return c
	case Mono:
		if c.On {
			return Int32Color{1}
		}
		return Int32Color{}
	case color.Gray:
		return Int32Color{uint32(c.Y)}
	default:
		return Int32Color{luma(c)}
	}
}

// luma is the 16-bit gray level of c.
func luma(c color.Color) uint32 {
	return uint32(color.Gray16Model.Convert(c).(color.Gray16).Y)
}
