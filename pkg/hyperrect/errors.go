package hyperrect

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDimension  = errors.New("invalid dimension")
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrBoundOrder        = errors.New("min corner exceeds max corner")
	ErrIndexOutOfRange   = errors.New("dimension index out of range")
	ErrInvalidCoordinate = errors.New("invalid coordinate")
)

// DimensionError indicates a requested dimension below 1.
type DimensionError struct {
	Got int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("dimension must be > 0, got %d", e.Got)
}

func (e *DimensionError) Is(target error) bool {
	return target == ErrInvalidDimension
}

// MismatchError indicates an operand whose dimension differs from the box's,
// or two corners of different lengths.
type MismatchError struct {
	Got  int
	Want int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("wrong number of dimensions: %d != %d", e.Got, e.Want)
}

func (e *MismatchError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

// BoundOrderError indicates a setter would break min <= max in one dimension.
type BoundOrderError struct {
	Index  int
	Value  float64
	Limit  float64
	Corner string // "min" or "max", the corner being set
}

func (e *BoundOrderError) Error() string {
	if e.Corner == "min" {
		return fmt.Sprintf("min corner coordinate %d exceeds max corner: %g > %g",
			e.Index, e.Value, e.Limit)
	}
	return fmt.Sprintf("max corner coordinate %d less than min corner: %g < %g",
		e.Index, e.Value, e.Limit)
}

func (e *BoundOrderError) Is(target error) bool {
	return target == ErrBoundOrder
}

// IndexError indicates a dimension index outside [0, Dimension).
type IndexError struct {
	Index     int
	Dimension int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("dimension index %d out of range [0, %d)", e.Index, e.Dimension)
}

func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// CoordinateError indicates a NaN corner coordinate.
type CoordinateError struct {
	Index int
	Value float64
}

func (e *CoordinateError) Error() string {
	return fmt.Sprintf("invalid corner coordinate %d: %g", e.Index, e.Value)
}

func (e *CoordinateError) Is(target error) bool {
	return target == ErrInvalidCoordinate
}
