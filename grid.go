package volume

import (
	"fmt"
	"strings"
)

// Grid defines the neighbor connectivity of voxels.
type Grid uint8

// Supported grids.
const (
	Cubic     Grid = iota // 26 neighbors, 8 in the plane and 9 on either side
	Hexagonal             // 6 hexagonal neighbors in the plane, 2 along z
)

// Direction names one neighbor of a voxel in a grid. Direction 0 is the voxel itself.
type Direction uint

// Cubic grid directions. Y grows downward, Z grows toward higher plane indexes.
//
// Directions 1 to 8 are the square neighbors in the plane, clockwise from north. Direction 9+d is
// in-plane direction d moved to the previous plane, and 18+d is the same on the next plane, so
// CubicDown and CubicUp are the neighbors straight below and above. The cubic grid has 26 neighbors.
const (
	CubicNone Direction = iota
	CubicNorth
	CubicNorthEast
	CubicEast
	CubicSouthEast
	CubicSouth
	CubicSouthWest
	CubicWest
	CubicNorthWest
	CubicDown // previous plane
)

// CubicUp is the neighbor on the next plane.
const CubicUp = CubicDown + 9

// Hexagonal grid directions, clockwise in the plane starting at north-east.
//
// Hexagonal planes are addressed in axial coordinates: the north-east neighbor of (x, y) is
// (x+1, y-1) and the south-west neighbor is (x-1, y+1).
const (
	HexNone Direction = iota
	HexNorthEast
	HexEast
	HexSouthEast
	HexSouthWest
	HexWest
	HexNorthWest
	HexDown // previous plane
	HexUp   // next plane
)

var cubicTable = [...]Point{
	// Same plane.
	{0, 0, 0}, {0, -1, 0}, {1, -1, 0}, {1, 0, 0}, {1, 1, 0},
	{0, 1, 0}, {-1, 1, 0}, {-1, 0, 0}, {-1, -1, 0},
	// Previous plane.
	{0, 0, -1}, {0, -1, -1}, {1, -1, -1}, {1, 0, -1}, {1, 1, -1},
	{0, 1, -1}, {-1, 1, -1}, {-1, 0, -1}, {-1, -1, -1},
	// Next plane.
	{0, 0, 1}, {0, -1, 1}, {1, -1, 1}, {1, 0, 1}, {1, 1, 1},
	{0, 1, 1}, {-1, 1, 1}, {-1, 0, 1}, {-1, -1, 1},
}

var hexTable = [...]Point{
	HexNone:      {0, 0, 0},
	HexNorthEast: {1, -1, 0},
	HexEast:      {1, 0, 0},
	HexSouthEast: {0, 1, 0},
	HexSouthWest: {-1, 1, 0},
	HexWest:      {-1, 0, 0},
	HexNorthWest: {0, -1, 0},
	HexDown:      {0, 0, -1},
	HexUp:        {0, 0, 1},
}

func (g Grid) table() []Point {
	switch g {
	case Cubic:
		return cubicTable[:]
	case Hexagonal:
		return hexTable[:]
	default:
		return nil
	}
}

// Valid reports if g is a supported grid.
func (g Grid) Valid() bool {
	return g.table() != nil
}

// MaxDirection is the largest direction id of the grid.
func (g Grid) MaxDirection() Direction {
	t := g.table()
	if len(t) == 0 {
		return 0
	}
	return Direction(len(t) - 1)
}

// Directions returns all neighbor directions of the grid, excluding direction 0.
func (g Grid) Directions() []Direction {
	dirs := make([]Direction, 0, g.MaxDirection())
	for d := Direction(1); d <= g.MaxDirection(); d++ {
		dirs = append(dirs, d)
	}
	return dirs
}

// Displacement returns the vector that moves a voxel amplitude steps in direction dir.
func (g Grid) Displacement(dir Direction, amplitude int) (Point, error) {
	t := g.table()
	if t == nil {
		return Point{}, fmt.Errorf("%w: unknown grid %d", ErrOutOfRangeDirection, uint8(g))
	}
	if int(dir) >= len(t) {
		return Point{}, fmt.Errorf("%w: direction %d on %s grid", ErrOutOfRangeDirection, dir, g)
	}
	if amplitude <= 0 {
		return Point{}, fmt.Errorf("%w: %d", ErrInvalidAmplitude, amplitude)
	}
	return t[dir].Mul(amplitude), nil
}

// Transpose returns the direction opposite to dir.
func (g Grid) Transpose(dir Direction) (Direction, error) {
	t := g.table()
	if t == nil || int(dir) >= len(t) {
		return 0, fmt.Errorf("%w: direction %d on %s grid", ErrOutOfRangeDirection, dir, g)
	}
	want := t[dir].Mul(-1)
	for i, v := range t {
		if v == want {
			return Direction(i), nil
		}
	}
	// Every table is symmetric.
	panic("volume: no opposite direction in " + g.String() + " grid")
}

func (g Grid) String() string {
	switch g {
	case Cubic:
		return "cubic"
	case Hexagonal:
		return "hexagonal"
	default:
		return fmt.Sprintf("grid(%d)", uint8(g))
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (g Grid) MarshalText() ([]byte, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("volume: invalid grid %d", uint8(g))
	}
	return []byte(g.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (g *Grid) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "cubic", "cube":
		*g = Cubic
	case "hexagonal", "hex":
		*g = Hexagonal
	default:
		return fmt.Errorf("volume: invalid grid %q", text)
	}
	return nil
}

var defaultGrid = Cubic

// DefaultGrid returns the library wide default grid.
func DefaultGrid() Grid {
	return defaultGrid
}

// SetDefaultGrid changes the library wide default grid.
func SetDefaultGrid(g Grid) error {
	if !g.Valid() {
		return fmt.Errorf("volume: invalid grid %d", uint8(g))
	}
	defaultGrid = g
	return nil
}
