package sample

import "math"

// Linear returns n points evenly spaced on [start, end] inclusive.
// n below 2 is a programming error: the configuration layer enforces a
// minimum of 3 steps long before sampling happens.
func Linear(start, end float64, n int) []float64 {
	if n < 2 {
		panic("sample: Linear requires n >= 2")
	}
	vals := make([]float64, n)
	delta := (end - start) / float64(n-1)
	for i := range vals {
		vals[i] = start + float64(i)*delta
	}
	// Land on the endpoint exactly instead of accumulating rounding.
	vals[n-1] = end
	return vals
}

// Log10 returns n points evenly spaced in log10 space on [start, end].
// Both bounds must be positive; axes flagged logarithmic sanitize their
// plotted range before sampling, so non-positive bounds never reach here
// from a well-formed scene.
func Log10(start, end float64, n int) []float64 {
	vals := Linear(math.Log10(start), math.Log10(end), n)
	for i, v := range vals {
		vals[i] = math.Pow(10, v)
	}
	return vals
}
