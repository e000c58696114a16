package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/hyperrect/pkg/hyperrect"
	"github.com/beetlebugorg/hyperrect/pkg/index"
)

func main() {
	idx, err := index.New(2, index.DefaultOptions())
	if err != nil {
		log.Fatal(err)
	}

	// Index a 10x10 grid of unit cells
	for x := 0; x < 10; x++ {
		for y := 0; y < 10; y++ {
			cell, err := hyperrect.FromCorners(
				[]float64{float64(x), float64(y)},
				[]float64{float64(x + 1), float64(y + 1)},
			)
			if err != nil {
				log.Fatal(err)
			}
			if _, err := idx.Insert(cell); err != nil {
				log.Fatal(err)
			}
		}
	}

	// Cells sharing only an edge with the viewport are not returned
	viewport, err := hyperrect.FromCorners([]float64{2, 2}, []float64{4, 3})
	if err != nil {
		log.Fatal(err)
	}
	hits, err := idx.SearchIntersect(viewport)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Cells in viewport: %d\n", len(hits))

	near, err := idx.NearestNeighbors(3, []float64{-1, -1})
	if err != nil {
		log.Fatal(err)
	}
	for _, e := range near {
		fmt.Printf("  %s %s\n", e.ID, e.Rect)
	}
}
