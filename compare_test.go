package volume

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BeatGlow/volume/pixel"
)

func TestCompareEqual(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	for _, depth := range testDepths {
		t.Run(depth.String(), func(t *testing.T) {
			a := newTestImage(t, 7, 5, 3, depth)
			randomize(a, r)
			out := newTestImage(t, 7, 5, 3, depth)
			out.Fill(1)

			p, err := Compare(a, a, out)
			require.NoError(t, err)
			assert.Less(t, p.Z, 0)
			assert.Equal(t, NoDifference, p)

			empty, err := IsEmpty(out)
			require.NoError(t, err)
			assert.True(t, empty, "discrepancy map of equal volumes must be zero")
		})
	}
}

func TestCompareSingleDifference(t *testing.T) {
	r := rand.New(rand.NewSource(4))
	for _, depth := range testDepths {
		t.Run(depth.String(), func(t *testing.T) {
			a := newTestImage(t, 6, 4, 5, depth)
			randomize(a, r)

			for _, p0 := range []Point{{0, 0, 0}, {5, 3, 4}, {2, 1, 3}, {5, 0, 1}} {
				b := a.Clone()
				if a.Value(p0) == 0 {
					b.SetValue(p0, 1)
				} else {
					b.SetValue(p0, 0)
				}
				out := newTestImage(t, 6, 4, 5, depth)

				p, err := Compare(a, b, out)
				require.NoError(t, err)
				if diff := cmp.Diff(p0, p); diff != "" {
					t.Fatalf("first difference mismatch (-want +got):\n%s", diff)
				}

				assert.NotZero(t, out.Value(p0))
				out.SetValue(p0, 0)
				empty, _ := IsEmpty(out)
				assert.True(t, empty, "discrepancy outside %s", p0)
			}
		})
	}
}

func TestCompareFirstInScanOrder(t *testing.T) {
	a := newTestImage(t, 4, 4, 4, pixel.Gray)
	b := newTestImage(t, 4, 4, 4, pixel.Gray)
	out := newTestImage(t, 4, 4, 4, pixel.Gray)

	// Plane index wins over row, row wins over column.
	b.SetValue(Pt(0, 0, 3), 9)
	b.SetValue(Pt(3, 3, 1), 9)
	b.SetValue(Pt(0, 3, 2), 9)
	b.SetValue(Pt(2, 1, 1), 9)
	b.SetValue(Pt(3, 1, 1), 9)

	p, err := Compare(a, b, out)
	require.NoError(t, err)
	assert.Equal(t, Pt(2, 1, 1), p)

	// The discrepancy map is complete, not just the first difference.
	for _, q := range []Point{{0, 0, 3}, {3, 3, 1}, {0, 3, 2}, {2, 1, 1}, {3, 1, 1}} {
		assert.Equal(t, uint32(9), out.Value(q), "voxel %s", q)
	}
	assert.Equal(t, uint64(5*9), out.Volume())
}

func TestCompareDiscrepancyValues(t *testing.T) {
	a := newTestImage(t, 2, 1, 1, pixel.Int32)
	b := newTestImage(t, 2, 1, 1, pixel.Int32)
	a.SetValue(Pt(0, 0, 0), 10)
	b.SetValue(Pt(0, 0, 0), 250)
	a.SetValue(Pt(1, 0, 0), 7)
	b.SetValue(Pt(1, 0, 0), 7)

	// The discrepancy map may overwrite one of the operands.
	p, err := Compare(a, b, a)
	require.NoError(t, err)
	assert.Equal(t, Pt(0, 0, 0), p)
	assert.Equal(t, uint32(240), a.Value(Pt(0, 0, 0)))
	assert.Zero(t, a.Value(Pt(1, 0, 0)))
}

func TestCompareMismatch(t *testing.T) {
	tests := []struct {
		Name    string
		A, B    *Image
		OutSize Point
		OutDep  pixel.Depth
	}{
		{"width", newTestImage(t, 4, 4, 4, pixel.Gray), newTestImage(t, 5, 4, 4, pixel.Gray), Pt(4, 4, 4), pixel.Gray},
		{"height", newTestImage(t, 4, 4, 4, pixel.Gray), newTestImage(t, 4, 5, 4, pixel.Gray), Pt(4, 4, 4), pixel.Gray},
		{"length", newTestImage(t, 4, 4, 4, pixel.Gray), newTestImage(t, 4, 4, 5, pixel.Gray), Pt(4, 4, 4), pixel.Gray},
		{"depth", newTestImage(t, 4, 4, 4, pixel.Gray), newTestImage(t, 4, 4, 4, pixel.Int32), Pt(4, 4, 4), pixel.Gray},
		{"out-size", newTestImage(t, 4, 4, 4, pixel.Gray), newTestImage(t, 4, 4, 4, pixel.Gray), Pt(4, 4, 3), pixel.Gray},
		{"out-depth", newTestImage(t, 4, 4, 4, pixel.Gray), newTestImage(t, 4, 4, 4, pixel.Gray), Pt(4, 4, 4), pixel.Binary},
	}
	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			test.A.Fill(1)
			out := newTestImage(t, test.OutSize.X, test.OutSize.Y, test.OutSize.Z, test.OutDep)
			out.Fill(1)
			before := out.Sum64()

			_, err := Compare(test.A, test.B, out)
			assert.True(t, errors.Is(err, ErrSizeMismatch), "got %v", err)
			assert.Equal(t, before, out.Sum64(), "destination was modified")
		})
	}
}

func TestCompareInvalid(t *testing.T) {
	a := newTestImage(t, 2, 2, 2, pixel.Gray)
	for _, args := range [][3]*Image{{nil, a, a}, {a, nil, a}, {a, a, nil}, {a, &Image{}, a}} {
		p, err := Compare(args[0], args[1], args[2])
		assert.True(t, errors.Is(err, ErrInvalidHandle), "got %v", err)
		assert.Equal(t, NoDifference, p)
	}
}

func TestCompareReference(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping full size volume comparison in short mode")
	}

	a := newTestImage(t, 256, 256, 256, pixel.Gray)
	b := newTestImage(t, 256, 256, 256, pixel.Gray)
	out := newTestImage(t, 256, 256, 256, pixel.Gray)
	a.Fill(128)
	b.Fill(128)

	p, err := Compare(a, b, out)
	require.NoError(t, err)
	assert.Less(t, p.Z, 0)

	p0 := Pt(100, 23, 201)
	a.SetValue(p0, 255)
	p, err = Compare(a, b, out)
	require.NoError(t, err)
	assert.Equal(t, p0, p)
	assert.Equal(t, uint32(127), out.Value(p0))
	assert.Equal(t, uint64(127), out.Volume())
}
