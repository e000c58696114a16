// Package solid converts between hyper-rectangles and the bounding boxes of
// the sdfx solid modelling library.
package solid

import (
	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/beetlebugorg/hyperrect/pkg/hyperrect"
)

// FromBox2 returns the 2-D hyper-rectangle of an sdfx Box2.
func FromBox2(b sdf.Box2) (*hyperrect.HyperRect, error) {
	return hyperrect.FromCorners(
		[]float64{b.Min.X, b.Min.Y},
		[]float64{b.Max.X, b.Max.Y},
	)
}

// FromBox3 returns the 3-D hyper-rectangle of an sdfx Box3.
func FromBox3(b sdf.Box3) (*hyperrect.HyperRect, error) {
	return hyperrect.FromCorners(
		[]float64{b.Min.X, b.Min.Y, b.Min.Z},
		[]float64{b.Max.X, b.Max.Y, b.Max.Z},
	)
}

// ToBox2 converts a 2-D hyper-rectangle to an sdfx Box2.
func ToBox2(r *hyperrect.HyperRect) (sdf.Box2, error) {
	if r.Dimension() != 2 {
		return sdf.Box2{}, &hyperrect.MismatchError{Got: r.Dimension(), Want: 2}
	}
	lo, hi := r.MinCorner(), r.MaxCorner()
	return sdf.Box2{
		Min: v2.Vec{X: lo[0], Y: lo[1]},
		Max: v2.Vec{X: hi[0], Y: hi[1]},
	}, nil
}

// ToBox3 converts a 3-D hyper-rectangle to an sdfx Box3.
func ToBox3(r *hyperrect.HyperRect) (sdf.Box3, error) {
	if r.Dimension() != 3 {
		return sdf.Box3{}, &hyperrect.MismatchError{Got: r.Dimension(), Want: 3}
	}
	lo, hi := r.MinCorner(), r.MaxCorner()
	return sdf.Box3{
		Min: v3.Vec{X: lo[0], Y: lo[1], Z: lo[2]},
		Max: v3.Vec{X: hi[0], Y: hi[1], Z: hi[2]},
	}, nil
}

// Bounds2 returns the bounding hyper-rectangle of a 2-D solid.
func Bounds2(s sdf.SDF2) (*hyperrect.HyperRect, error) {
	return FromBox2(s.BoundingBox())
}

// Bounds3 returns the bounding hyper-rectangle of a 3-D solid.
func Bounds3(s sdf.SDF3) (*hyperrect.HyperRect, error) {
	return FromBox3(s.BoundingBox())
}
