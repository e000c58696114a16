package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/beetlebugorg/hyperrect/pkg/hyperrect"
)

func main() {
	// Corners may be given in any order
	box, err := hyperrect.FromCorners(
		[]float64{4, 0, 1},
		[]float64{0, 2, 3},
	)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Box: %s\n", box)
	fmt.Printf("Volume: %g\n", box.Volume())
	fmt.Printf("Split axis: %d\n", box.DimensionOfMaxWidth())

	inside, err := box.Contains([]float64{4, 2, 3})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Contains max corner: %v\n", inside)

	closest, err := box.ClosestPoint([]float64{10, -1, 2})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Closest point: %v\n", closest)

	// Invariant violations are reported, and the box is left unchanged
	if err := box.SetMinCornerCoord(0, 99); errors.Is(err, hyperrect.ErrBoundOrder) {
		fmt.Printf("Rejected: %v\n", err)
	}
}
