package volume

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridDisplacement(t *testing.T) {
	tests := []struct {
		Grid Grid
		Want map[Direction]Point
	}{
		{Cubic, map[Direction]Point{
			CubicNone:      {0, 0, 0},
			CubicNorth:     {0, -1, 0},
			CubicNorthEast: {1, -1, 0},
			CubicEast:      {1, 0, 0},
			CubicSouthEast: {1, 1, 0},
			CubicSouth:     {0, 1, 0},
			CubicSouthWest: {-1, 1, 0},
			CubicWest:      {-1, 0, 0},
			CubicNorthWest: {-1, -1, 0},

			CubicDown:                  {0, 0, -1},
			CubicDown + CubicNorth:     {0, -1, -1},
			CubicDown + CubicNorthEast: {1, -1, -1},
			CubicDown + CubicEast:      {1, 0, -1},
			CubicDown + CubicSouthEast: {1, 1, -1},
			CubicDown + CubicSouth:     {0, 1, -1},
			CubicDown + CubicSouthWest: {-1, 1, -1},
			CubicDown + CubicWest:      {-1, 0, -1},
			CubicDown + CubicNorthWest: {-1, -1, -1},

			CubicUp:                  {0, 0, 1},
			CubicUp + CubicNorth:     {0, -1, 1},
			CubicUp + CubicNorthEast: {1, -1, 1},
			CubicUp + CubicEast:      {1, 0, 1},
			CubicUp + CubicSouthEast: {1, 1, 1},
			CubicUp + CubicSouth:     {0, 1, 1},
			CubicUp + CubicSouthWest: {-1, 1, 1},
			CubicUp + CubicWest:      {-1, 0, 1},
			CubicUp + CubicNorthWest: {-1, -1, 1},
		}},
		{Hexagonal, map[Direction]Point{
			HexNone:      {0, 0, 0},
			HexNorthEast: {1, -1, 0},
			HexEast:      {1, 0, 0},
			HexSouthEast: {0, 1, 0},
			HexSouthWest: {-1, 1, 0},
			HexWest:      {-1, 0, 0},
			HexNorthWest: {0, -1, 0},
			HexDown:      {0, 0, -1},
			HexUp:        {0, 0, 1},
		}},
	}
	for _, test := range tests {
		t.Run(test.Grid.String(), func(t *testing.T) {
			require.Equal(t, Direction(len(test.Want)-1), test.Grid.MaxDirection())

			for _, amplitude := range []int{1, 2, 7} {
				got := make(map[Direction]Point)
				for dir := Direction(0); dir <= test.Grid.MaxDirection(); dir++ {
					d, err := test.Grid.Displacement(dir, amplitude)
					require.NoError(t, err)
					got[dir] = d
				}
				want := make(map[Direction]Point)
				for dir, d := range test.Want {
					want[dir] = d.Mul(amplitude)
				}
				if diff := cmp.Diff(want, got); diff != "" {
					t.Errorf("amplitude %d displacement mismatch (-want +got):\n%s", amplitude, diff)
				}
			}
		})
	}
}

func TestGridDisplacementErrors(t *testing.T) {
	_, err := Cubic.Displacement(27, 1)
	assert.True(t, errors.Is(err, ErrOutOfRangeDirection), "got %v", err)

	_, err = Hexagonal.Displacement(9, 1)
	assert.True(t, errors.Is(err, ErrOutOfRangeDirection), "got %v", err)

	_, err = Grid(9).Displacement(1, 1)
	assert.True(t, errors.Is(err, ErrOutOfRangeDirection), "got %v", err)

	_, err = Cubic.Displacement(CubicEast, 0)
	assert.True(t, errors.Is(err, ErrInvalidAmplitude), "got %v", err)

	_, err = Hexagonal.Displacement(HexEast, -3)
	assert.True(t, errors.Is(err, ErrInvalidAmplitude), "got %v", err)
}

func TestCubicFaceNeighbors(t *testing.T) {
	faces := map[Direction]Point{
		1:  {0, -1, 0},
		3:  {1, 0, 0},
		5:  {0, 1, 0},
		7:  {-1, 0, 0},
		9:  {0, 0, -1},
		18: {0, 0, 1},
	}
	for dir, want := range faces {
		d, err := Cubic.Displacement(dir, 1)
		require.NoError(t, err)
		assert.Equal(t, want, d, "direction %d", dir)
	}
}

func TestGridDirections(t *testing.T) {
	dirs := Cubic.Directions()
	require.Len(t, dirs, 26)
	assert.Equal(t, CubicNorth, dirs[0])
	assert.Equal(t, CubicUp+CubicNorthWest, dirs[25])
	assert.Equal(t, []Direction{1, 2, 3, 4, 5, 6, 7, 8}, Hexagonal.Directions())
	assert.Empty(t, Grid(9).Directions())
}

func TestGridTranspose(t *testing.T) {
	for _, g := range []Grid{Cubic, Hexagonal} {
		t.Run(g.String(), func(t *testing.T) {
			for dir := Direction(0); dir <= g.MaxDirection(); dir++ {
				opposite, err := g.Transpose(dir)
				require.NoError(t, err)

				d, _ := g.Displacement(dir, 1)
				o, _ := g.Displacement(opposite, 1)
				assert.Equal(t, Point{}, d.Add(o), "direction %d and %d", dir, opposite)

				back, err := g.Transpose(opposite)
				require.NoError(t, err)
				assert.Equal(t, dir, back)
			}
		})
	}

	assert.Equal(t, CubicSouth, mustTranspose(t, Cubic, CubicNorth))
	assert.Equal(t, CubicUp, mustTranspose(t, Cubic, CubicDown))
	assert.Equal(t, CubicUp+CubicSouthWest, mustTranspose(t, Cubic, CubicDown+CubicNorthEast))
	assert.Equal(t, HexSouthWest, mustTranspose(t, Hexagonal, HexNorthEast))
	assert.Equal(t, HexUp, mustTranspose(t, Hexagonal, HexDown))

	_, err := Cubic.Transpose(Cubic.MaxDirection() + 1)
	assert.True(t, errors.Is(err, ErrOutOfRangeDirection), "got %v", err)
}

func mustTranspose(t *testing.T, g Grid, dir Direction) Direction {
	t.Helper()
	d, err := g.Transpose(dir)
	require.NoError(t, err)
	return d
}

func TestGridText(t *testing.T) {
	for _, g := range []Grid{Cubic, Hexagonal} {
		b, err := g.MarshalText()
		require.NoError(t, err)

		var parsed Grid
		require.NoError(t, parsed.UnmarshalText(b))
		assert.Equal(t, g, parsed)
	}

	var g Grid
	require.NoError(t, g.UnmarshalText([]byte("HEX")))
	assert.Equal(t, Hexagonal, g)
	assert.Error(t, g.UnmarshalText([]byte("square")))

	_, err := Grid(5).MarshalText()
	assert.Error(t, err)
}

func TestDefaultGrid(t *testing.T) {
	defer func(g Grid) { defaultGrid = g }(defaultGrid)

	require.NoError(t, SetDefaultGrid(Hexagonal))
	assert.Equal(t, Hexagonal, DefaultGrid())
	assert.Error(t, SetDefaultGrid(Grid(3)))
	assert.Equal(t, Hexagonal, DefaultGrid())
}
