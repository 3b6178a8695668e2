package geometry_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dronepath/geometry"
)

// TestClassify covers every quadrant plus both axes and the origin.
func TestClassify(t *testing.T) {
	cases := []struct {
		x, y int
		want geometry.Class
	}{
		{-1, -1, geometry.Medical},
		{-5, -3, geometry.Medical},
		{0, 0, geometry.Border},
		{0, -4, geometry.Border},
		{-4, 0, geometry.Border},
		{7, 0, geometry.Border},
		{1, 1, geometry.Normal},
		{-1, 1, geometry.Normal},
		{1, -1, geometry.Normal},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, geometry.Classify(tc.x, tc.y), "(%d,%d)", tc.x, tc.y)
		assert.Equal(t, tc.want, geometry.NewPoint(tc.x, tc.y).Class)
	}
}

func TestClass_String(t *testing.T) {
	assert.Equal(t, "medical", geometry.Medical.String())
	assert.Equal(t, "normal", geometry.Normal.String())
	assert.Equal(t, "border", geometry.Border.String())
	assert.Equal(t, "unknown", geometry.Class(42).String())
}

// TestPointSet_Immutable verifies that NewPointSet and Points copy their input.
func TestPointSet_Immutable(t *testing.T) {
	src := []geometry.Point{geometry.NewPoint(1, 2), geometry.NewPoint(3, 4)}
	ps := geometry.NewPointSet(src)
	src[0] = geometry.NewPoint(9, 9)
	assert.Equal(t, 1, ps.At(0).X)

	out := ps.Points()
	out[1] = geometry.NewPoint(0, 0)
	assert.Equal(t, 3, ps.At(1).X)
	assert.Equal(t, 2, ps.Len())
}

func TestPointSet_Euclid(t *testing.T) {
	ps := geometry.FromCoords([][2]int{{0, 0}, {3, 4}, {-3, -4}})
	assert.InDelta(t, 5.0, ps.Euclid(0, 1), 1e-12)
	assert.InDelta(t, 5.0, ps.Euclid(1, 0), 1e-12)
	assert.InDelta(t, 10.0, ps.Euclid(1, 2), 1e-12)
	assert.Zero(t, ps.Euclid(2, 2))
}

func TestReadPointSet(t *testing.T) {
	in := "4\n0 0\n0 1\n1 0\n  1\n1\n"
	ps, err := geometry.ReadPointSet(strings.NewReader(in))
	require.NoError(t, err)
	require.Equal(t, 4, ps.Len())
	assert.Equal(t, geometry.NewPoint(1, 1), ps.At(3))
	assert.Equal(t, geometry.Border, ps.At(0).Class)
}

func TestReadPointSet_Errors(t *testing.T) {
	cases := map[string]struct {
		in   string
		want error
	}{
		"empty input":    {"", geometry.ErrMalformedInput},
		"zero count":     {"0\n", geometry.ErrEmptyPointSet},
		"negative count": {"-2\n", geometry.ErrMalformedInput},
		"bad count":      {"two\n", geometry.ErrMalformedInput},
		"short input":    {"2\n1 1\n3\n", geometry.ErrMalformedInput},
		"bad coordinate": {"1\n1 x\n", geometry.ErrMalformedInput},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := geometry.ReadPointSet(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
