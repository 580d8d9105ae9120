package plot

import "math"

// Range accumulates the extent of plotted values along one axis. The zero
// value from NewRange is inverted (+inf, -inf) and widens as finite values
// are folded in; it stays inverted if nothing finite ever arrives.
type Range struct {
	Min float64
	Max float64
}

func NewRange() *Range {
	return &Range{Min: math.Inf(1), Max: math.Inf(-1)}
}

// FoldFinite widens the range to cover every finite value in vals.
// Non-finite values are ignored.
func (r *Range) FoldFinite(vals []float64) {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if v < r.Min {
			r.Min = v
		}
		if v > r.Max {
			r.Max = v
		}
	}
}

// Valid reports whether at least one finite value has been folded in.
func (r *Range) Valid() bool { return r.Min <= r.Max }
