package sample

import "math"

// Grid is a square steps×steps array of float64 values stored row-major in a
// flat slice. The first index walks the first grid dimension, the second
// index the second, matching the raveled layout the mesh builder consumes.
type Grid struct {
	steps int
	vals  []float64
}

// NewGrid allocates a zeroed steps×steps grid.
func NewGrid(steps int) *Grid {
	if steps < 1 {
		panic("sample: NewGrid requires steps >= 1")
	}
	return &Grid{steps: steps, vals: make([]float64, steps*steps)}
}

// Steps returns the grid's side length.
func (g *Grid) Steps() int { return g.steps }

// At returns the value at (i, j). Indices must be in [0, steps).
func (g *Grid) At(i, j int) float64 { return g.vals[i*g.steps+j] }

// Set stores v at (i, j). Indices must be in [0, steps).
func (g *Grid) Set(i, j int, v float64) { g.vals[i*g.steps+j] = v }

// Raveled returns the backing row-major slice. The slice is shared, not
// copied; callers treat it as read-only.
func (g *Grid) Raveled() []float64 { return g.vals }

// Grid2D builds the sampling domain for a surface evaluation: two
// steps-length coordinate arrays, one per grid dimension, plus two
// steps×steps broadcast grids. grid1 varies along the first index and is
// constant along the second; grid2 is the transpose of that arrangement.
// Logarithmic dimensions are interpolated in log10 space and exponentiated
// back, mirroring the 1D handling.
func Grid2D(min1, max1 float64, log1 bool, min2, max2 float64, log2 bool, steps int) (steps1, steps2 []float64, grid1, grid2 *Grid) {
	steps1 = spaced(min1, max1, log1, steps)
	steps2 = spaced(min2, max2, log2, steps)

	grid1 = NewGrid(steps)
	grid2 = NewGrid(steps)
	for i := 0; i < steps; i++ {
		for j := 0; j < steps; j++ {
			grid1.Set(i, j, steps1[i])
			grid2.Set(i, j, steps2[j])
		}
	}
	return steps1, steps2, grid1, grid2
}

func spaced(min, max float64, log bool, n int) []float64 {
	if log {
		return Log10(min, max, n)
	}
	return Linear(min, max, n)
}

// AllFinite reports whether every value in vals is neither NaN nor ±Inf.
func AllFinite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
