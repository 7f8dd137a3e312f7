// Package draw provides drawing primitives for planes.
//
// Every shape comes in two flavors: one that draws a color on any [Image], and a Value variant that
// stores a raw pixel value in a [pixel.Plane] without going through a color model. Pixels outside
// the destination are silently clipped.
package draw

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/BeatGlow/volume/pixel"
)

// Image is an alias for [image/draw.Image].
type Image = draw.Image

// Op is an alias for image/draw.Op
type Op = draw.Op

const (
	// Over specifies ``(src in mask) over dst''.
	Over Op = iota

	// Src specifies ``src in mask''.
	Src
)

// Draw aligns r.Min in dst with sp in src and then replaces the rectangle r in dst with the
// result of the composition op.
func Draw(dst Image, r image.Rectangle, src image.Image, sp image.Point, op Op) {
	draw.Draw(dst, r, src, sp, op)
}

// plotter sets a single pixel.
type plotter func(x, y int)

func colorPlotter(dst Image, c color.Color) plotter {
	return func(x, y int) {
		dst.Set(x, y, c)
	}
}

func valuePlotter(dst pixel.Plane, v uint32) plotter {
	v = dst.Depth().Truncate(v)
	return func(x, y int) {
		dst.SetValue(x, y, v)
	}
}
