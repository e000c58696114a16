// Package span implements the per-dimension interval arithmetic used by the
// hyperrect package.
package span

// Order returns a and b as (lo, hi).
func Order(a, b float64) (lo, hi float64) {
	if a < b {
		return a, b
	}
	return b, a
}

// Clamp limits v to the closed interval [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Overlap returns the overlap of [aLo, aHi] and [bLo, bHi].
// The result is empty (lo >= hi) when the intervals only touch or are disjoint.
func Overlap(aLo, aHi, bLo, bHi float64) (lo, hi float64) {
	lo, hi = aLo, aHi
	if bLo > lo {
		lo = bLo
	}
	if bHi < hi {
		hi = bHi
	}
	return lo, hi
}

// ArgMinWidth returns the index i with the smallest hi[i]-lo[i].
// The first index wins ties. Returns 0 for empty input.
func ArgMinWidth(lo, hi []float64) int {
	best := 0
	if len(lo) == 0 {
		return best
	}
	minWidth := hi[0] - lo[0]
	for i := 1; i < len(lo); i++ {
		if w := hi[i] - lo[i]; w < minWidth {
			minWidth = w
			best = i
		}
	}
	return best
}

// ArgMaxWidth returns the index i with the largest hi[i]-lo[i].
// The first index wins ties. Returns 0 for empty input.
func ArgMaxWidth(lo, hi []float64) int {
	best := 0
	if len(lo) == 0 {
		return best
	}
	maxWidth := hi[0] - lo[0]
	for i := 1; i < len(lo); i++ {
		if w := hi[i] - lo[i]; w > maxWidth {
			maxWidth = w
			best = i
		}
	}
	return best
}
