package span

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrder(t *testing.T) {
	tests := []struct {
		name           string
		a, b           float64
		wantLo, wantHi float64
	}{
		{"already ordered", 1, 2, 1, 2},
		{"reversed", 2, 1, 1, 2},
		{"equal", 3, 3, 3, 3},
		{"negative", -1, -5, -5, -1},
		{"infinite", math.Inf(1), math.Inf(-1), math.Inf(-1), math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := Order(tt.a, tt.b)
			assert.Equal(t, tt.wantLo, lo)
			assert.Equal(t, tt.wantHi, hi)
		})
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-3, 0, 1))
	assert.Equal(t, 1.0, Clamp(7, 0, 1))
	assert.Equal(t, 0.25, Clamp(0.25, 0, 1))
	assert.Equal(t, 1.0, Clamp(1, 0, 1))
	assert.Equal(t, 5.0, Clamp(5, math.Inf(-1), math.Inf(1)))
}

func TestOverlap(t *testing.T) {
	tests := []struct {
		name           string
		a, b           [2]float64
		wantLo, wantHi float64
	}{
		{"partial", [2]float64{0, 2}, [2]float64{1, 3}, 1, 2},
		{"nested", [2]float64{0, 10}, [2]float64{4, 5}, 4, 5},
		{"touching", [2]float64{0, 1}, [2]float64{1, 2}, 1, 1},
		{"disjoint", [2]float64{0, 1}, [2]float64{2, 3}, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := Overlap(tt.a[0], tt.a[1], tt.b[0], tt.b[1])
			assert.Equal(t, tt.wantLo, lo)
			assert.Equal(t, tt.wantHi, hi)
		})
	}
}

func TestArgWidth(t *testing.T) {
	lo := []float64{0, 0, 0, 0}
	hi := []float64{5, 2, 5, 2}

	assert.Equal(t, 0, ArgMaxWidth(lo, hi), "first maximum wins")
	assert.Equal(t, 1, ArgMinWidth(lo, hi), "first minimum wins")
	assert.Equal(t, 0, ArgMaxWidth(nil, nil))
	assert.Equal(t, 0, ArgMinWidth(nil, nil))
}
