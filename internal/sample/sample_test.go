package sample

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinear(t *testing.T) {
	testCases := []struct {
		name       string
		start, end float64
		n          int
	}{
		{name: "unit interval", start: 0, end: 1, n: 4},
		{name: "negative span", start: -3, end: 3, n: 7},
		{name: "descending", start: 10, end: -10, n: 5},
		{name: "large n", start: 0.5, end: 2.5, n: 101},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			vals := Linear(tc.start, tc.end, tc.n)
			require.Len(t, vals, tc.n)
			assert.Equal(t, tc.start, vals[0])
			assert.Equal(t, tc.end, vals[tc.n-1])

			ascending := tc.end >= tc.start
			for i := 1; i < len(vals); i++ {
				if ascending {
					assert.GreaterOrEqual(t, vals[i], vals[i-1])
				} else {
					assert.LessOrEqual(t, vals[i], vals[i-1])
				}
			}
		})
	}

	t.Run("four steps on unit interval", func(t *testing.T) {
		vals := Linear(0, 1, 4)
		want := []float64{0, 1.0 / 3, 2.0 / 3, 1}
		require.Len(t, vals, 4)
		for i := range want {
			assert.InDelta(t, want[i], vals[i], 1e-15)
		}
	})

	t.Run("panics below two points", func(t *testing.T) {
		assert.Panics(t, func() { Linear(0, 1, 1) })
	})
}

func TestLog10(t *testing.T) {
	t.Run("decade spacing", func(t *testing.T) {
		vals := Log10(1, 100, 3)
		require.Len(t, vals, 3)
		assert.InDelta(t, 1.0, vals[0], 1e-12)
		assert.InDelta(t, 10.0, vals[1], 1e-12)
		assert.InDelta(t, 100.0, vals[2], 1e-12)
	})

	t.Run("strictly increasing for positive bounds", func(t *testing.T) {
		vals := Log10(0.01, 1000, 25)
		for i := 1; i < len(vals); i++ {
			assert.Greater(t, vals[i], vals[i-1])
		}
	})

	t.Run("endpoints hit bounds", func(t *testing.T) {
		vals := Log10(0.5, 80, 9)
		assert.InDelta(t, 0.5, vals[0], 1e-12)
		assert.InDelta(t, 80.0, vals[len(vals)-1], 1e-12)
	})
}

func TestGrid2D(t *testing.T) {
	t.Run("broadcast layout", func(t *testing.T) {
		steps1, steps2, grid1, grid2 := Grid2D(0, 1, false, 10, 30, false, 3)
		require.Len(t, steps1, 3)
		require.Len(t, steps2, 3)

		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				assert.Equal(t, steps1[i], grid1.At(i, j), "grid1 varies along the first index")
				assert.Equal(t, steps2[j], grid2.At(i, j), "grid2 varies along the second index")
			}
		}
	})

	t.Run("log dimension exponentiated back", func(t *testing.T) {
		steps1, _, grid1, _ := Grid2D(1, 100, true, 0, 1, false, 3)
		assert.InDelta(t, 10.0, steps1[1], 1e-12)
		assert.InDelta(t, 10.0, grid1.At(1, 2), 1e-12)
	})

	t.Run("raveled is row major", func(t *testing.T) {
		g := NewGrid(2)
		g.Set(0, 0, 1)
		g.Set(0, 1, 2)
		g.Set(1, 0, 3)
		g.Set(1, 1, 4)
		assert.Equal(t, []float64{1, 2, 3, 4}, g.Raveled())
	})
}

func TestAllFinite(t *testing.T) {
	assert.True(t, AllFinite(1, -2, 0))
	assert.False(t, AllFinite(1, math.NaN()))
	assert.False(t, AllFinite(math.Inf(1)))
	assert.False(t, AllFinite(0, math.Inf(-1), 2))
	assert.True(t, AllFinite())
}
