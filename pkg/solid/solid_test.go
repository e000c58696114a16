package solid

import (
	"testing"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beetlebugorg/hyperrect/pkg/hyperrect"
)

func TestBox2RoundTrip(t *testing.T) {
	b := sdf.Box2{Min: v2.Vec{X: -1, Y: 2}, Max: v2.Vec{X: 3, Y: 5}}

	r, err := FromBox2(b)
	require.NoError(t, err)
	assert.Equal(t, []float64{-1, 2}, r.MinCorner())
	assert.Equal(t, []float64{3, 5}, r.MaxCorner())
	assert.Equal(t, 12.0, r.Volume())

	back, err := ToBox2(r)
	require.NoError(t, err)
	assert.Equal(t, b, back)
}

func TestBox3RoundTrip(t *testing.T) {
	b := sdf.Box3{Min: v3.Vec{X: 0, Y: 0, Z: 0}, Max: v3.Vec{X: 2, Y: 3, Z: 4}}

	r, err := FromBox3(b)
	require.NoError(t, err)
	assert.Equal(t, 24.0, r.Volume())
	assert.Equal(t, 2, r.DimensionOfMaxWidth())

	back, err := ToBox3(r)
	require.NoError(t, err)
	assert.Equal(t, b, back)
}

func TestToBox_DimensionMismatch(t *testing.T) {
	r, err := hyperrect.New(4)
	require.NoError(t, err)

	_, err = ToBox2(r)
	assert.ErrorIs(t, err, hyperrect.ErrDimensionMismatch)

	_, err = ToBox3(r)
	assert.ErrorIs(t, err, hyperrect.ErrDimensionMismatch)
}

func TestBounds3(t *testing.T) {
	s, err := sdf.Box3D(v3.Vec{X: 2, Y: 4, Z: 6}, 0)
	require.NoError(t, err)

	r, err := Bounds3(s)
	require.NoError(t, err)
	require.Equal(t, 3, r.Dimension())

	ok, err := r.Contains([]float64{0, 0, 0})
	require.NoError(t, err)
	assert.True(t, ok)

	assert.InDelta(t, 48.0, r.Volume(), 1e-6)
	assert.Equal(t, 2, r.DimensionOfMaxWidth())
	assert.Equal(t, 0, r.DimensionOfMinWidth())
}

// rect2 is a minimal 2-D solid for bounding-box tests.
type rect2 struct {
	box sdf.Box2
}

func (r rect2) Evaluate(p v2.Vec) float64 { return 0 }
func (r rect2) BoundingBox() sdf.Box2 { return r.box }

func TestBounds2(t *testing.T) {
	s := rect2{box: sdf.Box2{Min: v2.Vec{X: -1.5, Y: -0.5}, Max: v2.Vec{X: 1.5, Y: 0.5}}}

	r, err := Bounds2(s)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, r.Volume(), 1e-12)
	assert.Equal(t, 0, r.DimensionOfMaxWidth())
}
