// Package preview renders volumetric images for inspection.
//
// A contact sheet tiles every plane of a volume into a single gray scale image, optionally
// scaled and labeled with the plane index. The sheet remembers its layout, so a user interface
// can map a position on the sheet back to the voxel under it.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/BeatGlow/volume"
	"github.com/BeatGlow/volume/draw"
	"github.com/BeatGlow/volume/pixel"
)

// Font used for labels.
var Font *truetype.Font

func init() {
	var err error
	if Font, err = freetype.ParseFont(goregular.TTF); err != nil {
		panic("preview: can't parse label font: " + err.Error())
	}
}

// Sheet colors.
var (
	Background = color.Gray{Y: 0x40}
	LabelColor = color.Gray{Y: 0xff}
)

// Options for rendering a contact sheet.
type Options struct {
	// Columns of tiles, 0 picks a square-ish layout.
	Columns int

	// Scale is the tile size in pixels per voxel, at least 1.
	Scale int

	// Gap in pixels between tiles.
	Gap int

	// Labels enables the "z=N" label on each tile.
	Labels bool

	// FontSize of the labels in points.
	FontSize float64
}

// DefaultOptions are used when no options are given.
var DefaultOptions = Options{
	Scale:    1,
	Gap:      2,
	Labels:   true,
	FontSize: 10,
}

// Sheet is a rendered contact sheet.
type Sheet struct {
	*image.Gray

	columns int
	tile    image.Point // tile size in pixels
	gap     int
	scale   int
	size    volume.Point
}

// Render draws all planes of v onto a new contact sheet.
//
// Binary voxels render black and white, gray voxels as is, and 32-bit voxels are scaled so that
// the largest value in the volume is white.
func Render(v *volume.Image, o *Options) (*Sheet, error) {
	if v == nil || v.Length() == 0 {
		return nil, fmt.Errorf("%w: nothing to render", volume.ErrInvalidHandle)
	}
	if o == nil {
		o = new(Options)
		*o = DefaultOptions
	}

	s := &Sheet{
		columns: o.Columns,
		gap:     o.Gap,
		scale:   o.Scale,
		size:    v.Size(),
	}
	if s.columns <= 0 {
		s.columns = int(math.Ceil(math.Sqrt(float64(v.Length()))))
	}
	if s.columns > v.Length() {
		s.columns = v.Length()
	}
	if s.scale < 1 {
		s.scale = 1
	}
	if s.gap < 0 {
		s.gap = 0
	}
	s.tile = image.Pt(v.Width()*s.scale, v.Height()*s.scale)

	rows := (v.Length() + s.columns - 1) / s.columns
	s.Gray = image.NewGray(image.Rect(0, 0,
		s.columns*s.tile.X+(s.columns+1)*s.gap,
		rows*s.tile.Y+(rows+1)*s.gap))
	draw.Draw(s.Gray, s.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)

	var max uint32
	if v.Depth() == pixel.Int32 {
		_, max = v.Range()
	}
	for z, p := range v.Planes() {
		tile := grayTile(p, max)
		xdraw.NearestNeighbor.Scale(s.Gray, s.Tile(z), tile, tile.Bounds(), draw.Src, nil)
	}

	if o.Labels {
		if err := s.label(v.Length(), o.FontSize); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Tile returns the area of the sheet that shows plane z.
func (s *Sheet) Tile(z int) image.Rectangle {
	col, row := z%s.columns, z/s.columns
	min := image.Pt(
		s.gap+col*(s.tile.X+s.gap),
		s.gap+row*(s.tile.Y+s.gap),
	)
	return image.Rectangle{Min: min, Max: min.Add(s.tile)}
}

// Voxel returns the voxel shown at pt, it returns false if pt is not on any tile.
func (s *Sheet) Voxel(pt image.Point) (volume.Point, bool) {
	if !pt.In(s.Bounds()) {
		return volume.Point{}, false
	}
	var (
		pitch = s.tile.Add(image.Pt(s.gap, s.gap))
		rel   = pt.Sub(image.Pt(s.gap, s.gap))
	)
	if rel.X < 0 || rel.Y < 0 {
		return volume.Point{}, false
	}
	col, row := rel.X/pitch.X, rel.Y/pitch.Y
	if col >= s.columns {
		return volume.Point{}, false
	}
	z := row*s.columns + col
	if z >= s.size.Z {
		return volume.Point{}, false
	}
	in := pt.Sub(s.Tile(z).Min)
	if !in.In(image.Rectangle{Max: s.tile}) {
		return volume.Point{}, false
	}
	return volume.Pt(in.X/s.scale, in.Y/s.scale, z), true
}

func (s *Sheet) label(length int, size float64) error {
	if size <= 0 {
		size = DefaultOptions.FontSize
	}

	c := freetype.NewContext()
	c.SetDPI(72)
	c.SetFont(Font)
	c.SetFontSize(size)
	c.SetDst(s.Gray)
	c.SetSrc(image.NewUniform(LabelColor))

	ascent := int(c.PointToFixed(size) >> 6)
	for z := 0; z < length; z++ {
		r := s.Tile(z)
		c.SetClip(r)
		if _, err := c.DrawString(fmt.Sprintf("z=%d", z), freetype.Pt(r.Min.X+1, r.Min.Y+ascent)); err != nil {
			return err
		}
	}
	return nil
}

func grayTile(p pixel.Plane, max uint32) *image.Gray {
	var (
		r    = p.Bounds()
		tile = image.NewGray(r)
	)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			v := p.Value(x, y)
			switch p.Depth() {
			case pixel.Binary:
				v *= 0xff
			case pixel.Int32:
				if max > 0 {
					v = uint32(uint64(v) * 0xff / uint64(max))
				}
			}
			tile.Pix[tile.PixOffset(x, y)] = uint8(v)
		}
	}
	return tile
}
