// Package hyperrect provides an axis-aligned bounding box in N-dimensional
// real space.
//
// HyperRect is the bounding volume used by space-partitioning and
// nearest-neighbour algorithms such as KD-tree clustering. It tracks the
// region covered by a subtree, tests whether a query point can fall inside
// it, and picks the axis to split on next.
//
// # Construction
//
//	origin, _ := hyperrect.New(3)                         // zero volume at (0,0,0)
//	box, _ := hyperrect.FromCorners(
//	    []float64{0, 0, 0}, []float64{4, 2, 1})
//	everything, _ := hyperrect.Infinite(3)                // (-Inf, +Inf) everywhere
//
// FromCorners accepts the corners in either order per dimension.
//
// # Queries
//
//	inside, err := box.Contains([]float64{1, 1, 1})      // boundary counts as inside
//	nearest, err := box.ClosestPoint([]float64{9, 9, 9}) // clamps into the box
//	axis := box.DimensionOfMaxWidth()                     // split axis
//
// Intersection is strict: two boxes that only share a face do not intersect,
// and IntersectionWith returns nil for them.
//
// # Errors
//
// Every failure is reported as an error wrapping one of the sentinel values
// (ErrInvalidDimension, ErrDimensionMismatch, ErrBoundOrder,
// ErrIndexOutOfRange, ErrInvalidCoordinate), so callers can test with
// errors.Is. A failing call never modifies the box.
package hyperrect
