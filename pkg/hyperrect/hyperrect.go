package hyperrect

import (
	"math"
	"strconv"
	"strings"

	"github.com/beetlebugorg/hyperrect/internal/span"
)

// HyperRect is an axis-aligned box in N-dimensional space, N >= 1.
//
// The dimension is fixed at construction. Every mutation keeps
// minCorner[i] <= maxCorner[i] for all i; a call that would break this
// fails and leaves the box unchanged.
//
// A HyperRect is not safe for concurrent mutation. Callers sharing one
// across goroutines must synchronize SetMinCornerCoord and SetMaxCornerCoord.
type HyperRect struct {
	minCorner []float64
	maxCorner []float64
}

// New returns a zero-volume box at the origin with the given dimension.
func New(dim int) (*HyperRect, error) {
	if dim <= 0 {
		return nil, &DimensionError{Got: dim}
	}
	return &HyperRect{
		minCorner: make([]float64, dim),
		maxCorner: make([]float64, dim),
	}, nil
}

// FromCorners returns the box spanned by two opposite corners.
//
// The corners need not be ordered: for each dimension the smaller value
// becomes the min corner coordinate and the larger the max. The inputs are
// copied and never retained.
//
// Example:
//
//	r, err := hyperrect.FromCorners([]float64{4, 0}, []float64{1, 3})
//	// r spans [1,4]x[0,3]
func FromCorners(a, b []float64) (*HyperRect, error) {
	if len(a) != len(b) {
		return nil, &MismatchError{Got: len(b), Want: len(a)}
	}
	if len(a) == 0 {
		return nil, &DimensionError{Got: 0}
	}

	r := &HyperRect{
		minCorner: make([]float64, len(a)),
		maxCorner: make([]float64, len(a)),
	}
	for i := range a {
		if math.IsNaN(a[i]) {
			return nil, &CoordinateError{Index: i, Value: a[i]}
		}
		if math.IsNaN(b[i]) {
			return nil, &CoordinateError{Index: i, Value: b[i]}
		}
		r.minCorner[i], r.maxCorner[i] = span.Order(a[i], b[i])
	}
	return r, nil
}

// Infinite returns a box covering all of N-dimensional space: every min
// coordinate is -Inf and every max coordinate is +Inf.
func Infinite(dim int) (*HyperRect, error) {
	r, err := New(dim)
	if err != nil {
		return nil, err
	}
	for i := range r.minCorner {
		r.minCorner[i] = math.Inf(-1)
		r.maxCorner[i] = math.Inf(1)
	}
	return r, nil
}

// Clone returns an independent copy of r.
func (r *HyperRect) Clone() *HyperRect {
	return &HyperRect{
		minCorner: append([]float64(nil), r.minCorner...),
		maxCorner: append([]float64(nil), r.maxCorner...),
	}
}

// Dimension returns N. A nil box has dimension 0.
func (r *HyperRect) Dimension() int {
	if r == nil {
		return 0
	}
	return len(r.minCorner)
}

// MinCornerCoord returns the min corner coordinate of dimension n.
func (r *HyperRect) MinCornerCoord(n int) (float64, error) {
	if err := r.checkIndex(n); err != nil {
		return 0, err
	}
	return r.minCorner[n], nil
}

// MaxCornerCoord returns the max corner coordinate of dimension n.
func (r *HyperRect) MaxCornerCoord(n int) (float64, error) {
	if err := r.checkIndex(n); err != nil {
		return 0, err
	}
	return r.maxCorner[n], nil
}

// SetMinCornerCoord sets the min corner coordinate of dimension n.
// Setting it equal to the max coordinate collapses that dimension to zero width.
func (r *HyperRect) SetMinCornerCoord(n int, value float64) error {
	if err := r.checkIndex(n); err != nil {
		return err
	}
	// !(<=) also rejects NaN
	if !(value <= r.maxCorner[n]) {
		return &BoundOrderError{Index: n, Value: value, Limit: r.maxCorner[n], Corner: "min"}
	}
	r.minCorner[n] = value
	return nil
}

// SetMaxCornerCoord sets the max corner coordinate of dimension n.
// Setting it equal to the min coordinate collapses that dimension to zero width.
func (r *HyperRect) SetMaxCornerCoord(n int, value float64) error {
	if err := r.checkIndex(n); err != nil {
		return err
	}
	if !(value >= r.minCorner[n]) {
		return &BoundOrderError{Index: n, Value: value, Limit: r.minCorner[n], Corner: "max"}
	}
	r.maxCorner[n] = value
	return nil
}

// MinCorner returns a copy of the min corner.
func (r *HyperRect) MinCorner() []float64 {
	return append([]float64(nil), r.minCorner...)
}

// MaxCorner returns a copy of the max corner.
func (r *HyperRect) MaxCorner() []float64 {
	return append([]float64(nil), r.maxCorner...)
}

// Width returns maxCorner[n] - minCorner[n].
func (r *HyperRect) Width(n int) (float64, error) {
	if err := r.checkIndex(n); err != nil {
		return 0, err
	}
	return r.maxCorner[n] - r.minCorner[n], nil
}

// IsPoint reports whether the min and max corners are exactly equal.
func (r *HyperRect) IsPoint() bool {
	for i := range r.minCorner {
		if r.minCorner[i] != r.maxCorner[i] {
			return false
		}
	}
	return true
}

// IsBounded reports whether every corner coordinate is finite.
func (r *HyperRect) IsBounded() bool {
	for i := range r.minCorner {
		if math.IsInf(r.minCorner[i], 0) || math.IsInf(r.maxCorner[i], 0) {
			return false
		}
	}
	return true
}

// DimensionOfMinWidth returns the index of the narrowest dimension.
// The lowest index wins ties.
func (r *HyperRect) DimensionOfMinWidth() int {
	return span.ArgMinWidth(r.minCorner, r.maxCorner)
}

// DimensionOfMaxWidth returns the index of the widest dimension, the usual
// choice of split axis when partitioning space. The lowest index wins ties.
func (r *HyperRect) DimensionOfMaxWidth() int {
	return span.ArgMaxWidth(r.minCorner, r.maxCorner)
}

// Contains reports whether point lies inside r or on its boundary.
func (r *HyperRect) Contains(point []float64) (bool, error) {
	if err := r.checkDimension(len(point)); err != nil {
		return false, err
	}
	for i, v := range point {
		if v < r.minCorner[i] || v > r.maxCorner[i] {
			return false, nil
		}
	}
	return true, nil
}

// ClosestPoint returns the point of r nearest to point, found by clamping
// each coordinate into [min, max]. The result is always a new slice, equal
// to point when point is already contained.
func (r *HyperRect) ClosestPoint(point []float64) ([]float64, error) {
	if err := r.checkDimension(len(point)); err != nil {
		return nil, err
	}
	closest := make([]float64, len(point))
	for i, v := range point {
		closest[i] = span.Clamp(v, r.minCorner[i], r.maxCorner[i])
	}
	return closest, nil
}

// DistanceSquared returns the squared Euclidean distance from point to the
// nearest point of r. It is zero for contained points.
func (r *HyperRect) DistanceSquared(point []float64) (float64, error) {
	if err := r.checkDimension(len(point)); err != nil {
		return 0, err
	}
	var sum float64
	for i, v := range point {
		d := v - span.Clamp(v, r.minCorner[i], r.maxCorner[i])
		sum += d * d
	}
	return sum, nil
}

// IntersectsWith reports whether r and other overlap with positive width in
// every dimension. Boxes that only share a boundary face do not intersect.
func (r *HyperRect) IntersectsWith(other *HyperRect) (bool, error) {
	if err := r.checkDimension(other.Dimension()); err != nil {
		return false, err
	}
	for i := range r.minCorner {
		lo, hi := span.Overlap(r.minCorner[i], r.maxCorner[i], other.minCorner[i], other.maxCorner[i])
		if lo >= hi {
			return false, nil
		}
	}
	return true, nil
}

// IntersectionWith returns the overlap of r and other as a new box.
// It returns nil and no error when IntersectsWith would report false.
func (r *HyperRect) IntersectionWith(other *HyperRect) (*HyperRect, error) {
	dim := other.Dimension()
	if err := r.checkDimension(dim); err != nil {
		return nil, err
	}
	out := &HyperRect{
		minCorner: make([]float64, dim),
		maxCorner: make([]float64, dim),
	}
	for i := 0; i < dim; i++ {
		lo, hi := span.Overlap(r.minCorner[i], r.maxCorner[i], other.minCorner[i], other.maxCorner[i])
		if lo >= hi {
			return nil, nil
		}
		out.minCorner[i] = lo
		out.maxCorner[i] = hi
	}
	return out, nil
}

// Volume returns the product of the widths of all dimensions.
//
// The product is seeded with 1, so a box with positive width everywhere has
// positive volume and a box that is degenerate in any dimension has volume 0.
func (r *HyperRect) Volume() float64 {
	v := 1.0
	for i := range r.minCorner {
		v *= r.maxCorner[i] - r.minCorner[i]
	}
	return v
}

// Equal reports whether r and other have the same dimension and exactly
// equal corners.
func (r *HyperRect) Equal(other *HyperRect) bool {
	if r.Dimension() != other.Dimension() {
		return false
	}
	for i := range r.minCorner {
		if r.minCorner[i] != other.minCorner[i] || r.maxCorner[i] != other.maxCorner[i] {
			return false
		}
	}
	return true
}

// String formats r as [min0,max0]x[min1,max1]...
func (r *HyperRect) String() string {
	if r == nil {
		return "<nil>"
	}
	var sb strings.Builder
	for i := range r.minCorner {
		if i > 0 {
			sb.WriteByte('x')
		}
		sb.WriteByte('[')
		sb.WriteString(strconv.FormatFloat(r.minCorner[i], 'g', -1, 64))
		sb.WriteByte(',')
		sb.WriteString(strconv.FormatFloat(r.maxCorner[i], 'g', -1, 64))
		sb.WriteByte(']')
	}
	return sb.String()
}

func (r *HyperRect) checkDimension(dim int) error {
	if dim != r.Dimension() {
		return &MismatchError{Got: dim, Want: r.Dimension()}
	}
	return nil
}

func (r *HyperRect) checkIndex(n int) error {
	if n < 0 || n >= r.Dimension() {
		return &IndexError{Index: n, Dimension: r.Dimension()}
	}
	return nil
}
