package draw

import (
	"image"
	"image/color"

	"github.com/BeatGlow/volume/pixel"
)

// Line draws a line between two points, both included.
func Line(dst Image, a, b image.Point, c color.Color) {
	line(a, b, colorPlotter(dst, c))
}

// LineValue is like [Line] but stores v.
func LineValue(dst pixel.Plane, a, b image.Point, v uint32) {
	line(a, b, valuePlotter(dst, v))
}

// HorizontalLine draws a line between (x,y) and (x+w-1,y).
func HorizontalLine(dst Image, x, y, w int, c color.Color) {
	if w > 0 {
		line(image.Pt(x, y), image.Pt(x+w-1, y), colorPlotter(dst, c))
	}
}

// VerticalLine draws a line between (x,y) and (x,y+h-1).
func VerticalLine(dst Image, x, y, h int, c color.Color) {
	if h > 0 {
		line(image.Pt(x, y), image.Pt(x, y+h-1), colorPlotter(dst, c))
	}
}

// Rectangle draws the outline of rect. The outline covers the outermost pixels inside rect, so
// rect.Max is exclusive just like it is for [image.Rectangle].
func Rectangle(dst Image, rect image.Rectangle, c color.Color) {
	outline(rect, colorPlotter(dst, c))
}

// RectangleValue is like [Rectangle] but stores v.
func RectangleValue(dst pixel.Plane, rect image.Rectangle, v uint32) {
	outline(rect, valuePlotter(dst, v))
}

// Box draws a filled rectangle.
func Box(dst Image, rect image.Rectangle, c color.Color) {
	box(rect, colorPlotter(dst, c))
}

// BoxValue is like [Box] but stores v.
func BoxValue(dst pixel.Plane, rect image.Rectangle, v uint32) {
	box(rect, valuePlotter(dst, v))
}

func outline(r image.Rectangle, plot plotter) {
	if r.Empty() {
		return
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		plot(x, r.Min.Y)
		plot(x, r.Max.Y-1)
	}
	for y := r.Min.Y + 1; y < r.Max.Y-1; y++ {
		plot(r.Min.X, y)
		plot(r.Max.X-1, y)
	}
}

func box(r image.Rectangle, plot plotter) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			plot(x, y)
		}
	}
}

// line walks from a to b using Bresenham's integer algorithm, it handles all octants with a
// single error term.
func line(a, b image.Point, plot plotter) {
	var (
		dx, sx = abs(b.X - a.X), sign(b.X - a.X)
		dy, sy = -abs(b.Y - a.Y), sign(b.Y - a.Y)
		e      = dx + dy
	)
	for {
		plot(a.X, a.Y)
		if a == b {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			a.X += sx
		}
		if e2 <= dx {
			e += dx
			a.Y += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
