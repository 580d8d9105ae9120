package plot_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/surfgrid/internal/plot"
)

func TestLineVals_Parametric(t *testing.T) {
	settings := plot.DefaultSettings("helix")
	settings.Mode = plot.ModeParametric
	settings.FnX = "cos(2*pi*t)"
	settings.FnY = "sin(2*pi*t)"
	settings.FnZ = "t"
	settings.LineSteps = 5
	f := newFunction(t, settings, unitAxes())

	ld, ok := f.LineVals(context.Background())
	require.True(t, ok)
	require.Len(t, ld.X, 5)
	require.Len(t, ld.Y, 5)
	require.Len(t, ld.Z, 5)

	// t runs from exactly 0 to exactly 1.
	assert.Equal(t, 0.0, ld.Z[0])
	assert.Equal(t, 1.0, ld.Z[4])
	assert.InDelta(t, 1.0, ld.X[0], 1e-12)
	assert.InDelta(t, 0.0, ld.Y[0], 1e-12)
	assert.InDelta(t, -1.0, ld.X[2], 1e-12)
}

func TestLineVals_ParametricNeedsAllThree(t *testing.T) {
	settings := plot.DefaultSettings("partial")
	settings.FnX = "t"
	settings.FnY = ""
	settings.FnZ = "t"
	f := newFunction(t, settings, unitAxes())

	_, ok := f.LineVals(context.Background())
	assert.False(t, ok)
}

func TestLineVals_DependentMode(t *testing.T) {
	settings := plot.DefaultSettings("circle")
	settings.Mode = plot.ModeXYOfZ
	settings.FnX = "cos(z)"
	settings.FnY = "sin(z)"
	settings.LineSteps = 3

	axes := axisMap{
		"x": stubAxis{name: "x", min: -1, max: 1},
		"y": stubAxis{name: "y", min: -1, max: 1},
		"z": stubAxis{name: "z", min: 0, max: 2 * math.Pi},
	}
	f := newFunction(t, settings, axes)

	ld, ok := f.LineVals(context.Background())
	require.True(t, ok)

	// The independent coordinate carries the axis samples themselves.
	assert.Equal(t, 0.0, ld.Z[0])
	assert.InDelta(t, math.Pi, ld.Z[1], 1e-12)
	assert.Equal(t, 2*math.Pi, ld.Z[2])

	assert.InDelta(t, 1.0, ld.X[0], 1e-12)
	assert.InDelta(t, -1.0, ld.X[1], 1e-12)
	assert.InDelta(t, 0.0, ld.Y[0], 1e-12)
}

func TestLineVals_LogIndependentAxis(t *testing.T) {
	settings := plot.DefaultSettings("decades")
	settings.Mode = plot.ModeXYOfZ
	settings.FnX = "log10(z)"
	settings.FnY = "1"
	settings.LineSteps = 3

	axes := unitAxes()
	axes["z"] = stubAxis{name: "z", log: true, min: 1, max: 100}
	f := newFunction(t, settings, axes)

	ld, ok := f.LineVals(context.Background())
	require.True(t, ok)
	assert.InDelta(t, 1.0, ld.Z[0], 1e-12)
	assert.InDelta(t, 10.0, ld.Z[1], 1e-12)
	assert.InDelta(t, 100.0, ld.Z[2], 1e-12)
}

func TestLineVals_SurfaceModeHasNone(t *testing.T) {
	settings := plot.DefaultSettings("surface")
	settings.Mode = plot.ModeZOfXY
	settings.FnZ = "x+y"
	f := newFunction(t, settings, unitAxes())

	_, ok := f.LineVals(context.Background())
	assert.False(t, ok)
}

func TestLineVals_MissingAxis(t *testing.T) {
	settings := plot.DefaultSettings("lost")
	settings.Mode = plot.ModeXYOfZ
	settings.FnX = "z"
	settings.FnY = "z"
	axes := axisMap{
		"x": stubAxis{name: "x", min: 0, max: 1},
		"y": stubAxis{name: "y", min: 0, max: 1},
		// no z axis
	}
	f := newFunction(t, settings, axes)

	_, ok := f.LineVals(context.Background())
	assert.False(t, ok)
}

func TestGridVals_HeightsAndSteps(t *testing.T) {
	settings := plot.DefaultSettings("plane")
	settings.Mode = plot.ModeZOfXY
	settings.FnZ = "x + 10*y"
	settings.SurfaceSteps = 3

	axes := axisMap{
		"x": stubAxis{name: "x", min: 0, max: 2},
		"y": stubAxis{name: "y", min: 0, max: 4},
		"z": stubAxis{name: "z", min: 0, max: 1},
	}
	f := newFunction(t, settings, axes)

	gd, ok := f.GridVals(context.Background())
	require.True(t, ok)

	assert.Equal(t, [3]int{2, 0, 1}, gd.AxIdx)
	assert.Equal(t, plot.VarZ, gd.Dep)
	assert.Equal(t, []float64{0, 1, 2}, gd.Steps1)
	assert.Equal(t, []float64{0, 2, 4}, gd.Steps2)

	// Heights are indexed (pos1, pos2) = (x, y).
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, gd.Steps1[i]+10*gd.Steps2[j], gd.Heights.At(i, j), 1e-12)
		}
	}
}

func TestGridVals_YOfXZOrdersDims(t *testing.T) {
	// In y=fn(x,z) the first grid dimension runs along z and the second
	// along x.
	settings := plot.DefaultSettings("sheet")
	settings.Mode = plot.ModeYOfXZ
	settings.FnY = "x + 100*z"
	settings.SurfaceSteps = 3

	axes := axisMap{
		"x": stubAxis{name: "x", min: 0, max: 2},
		"y": stubAxis{name: "y", min: 0, max: 1},
		"z": stubAxis{name: "z", min: 0, max: 6},
	}
	f := newFunction(t, settings, axes)

	gd, ok := f.GridVals(context.Background())
	require.True(t, ok)

	assert.Equal(t, [3]int{1, 2, 0}, gd.AxIdx)
	assert.Equal(t, plot.VarY, gd.Dep)
	assert.Equal(t, []float64{0, 3, 6}, gd.Steps1)
	assert.Equal(t, []float64{0, 1, 2}, gd.Steps2)
	assert.InDelta(t, 2+100*3.0, gd.Heights.At(1, 2), 1e-12)
}

func TestGridVals_XOfYZOrdersDims(t *testing.T) {
	settings := plot.DefaultSettings("wall")
	settings.Mode = plot.ModeXOfYZ
	settings.FnX = "y + 100*z"
	settings.SurfaceSteps = 3

	axes := axisMap{
		"x": stubAxis{name: "x", min: 0, max: 1},
		"y": stubAxis{name: "y", min: 0, max: 2},
		"z": stubAxis{name: "z", min: 0, max: 6},
	}
	f := newFunction(t, settings, axes)

	gd, ok := f.GridVals(context.Background())
	require.True(t, ok)

	assert.Equal(t, [3]int{0, 1, 2}, gd.AxIdx)
	assert.Equal(t, plot.VarX, gd.Dep)
	assert.Equal(t, []float64{0, 1, 2}, gd.Steps1)
	assert.Equal(t, []float64{0, 3, 6}, gd.Steps2)
	assert.InDelta(t, 1+100*3.0, gd.Heights.At(1, 1), 1e-12)
}

func TestGridVals_LineModeHasNone(t *testing.T) {
	settings := plot.DefaultSettings("param")
	settings.FnX, settings.FnY, settings.FnZ = "t", "t", "t"
	f := newFunction(t, settings, unitAxes())

	_, ok := f.GridVals(context.Background())
	assert.False(t, ok)
}

func TestGridVals_BrokenExpression(t *testing.T) {
	settings := plot.DefaultSettings("broken")
	settings.Mode = plot.ModeZOfXY
	settings.FnZ = "x + q"
	f := newFunction(t, settings, unitAxes())

	_, ok := f.GridVals(context.Background())
	assert.False(t, ok)
}

func TestUpdateRange_Parametric(t *testing.T) {
	settings := plot.DefaultSettings("helix")
	settings.FnX = "cos(2*pi*t)"
	settings.FnY = "sin(2*pi*t)"
	settings.FnZ = "5 + t"
	settings.LineSteps = 33
	f := newFunction(t, settings, unitAxes())
	ctx := context.Background()

	x := unitAxes()["x"]

	t.Run("selects coordinate by scope", func(t *testing.T) {
		r := plot.NewRange()
		f.UpdateRange(ctx, x, plot.ScopeSX, r)
		require.True(t, r.Valid())
		assert.InDelta(t, -1.0, r.Min, 1e-12)
		assert.InDelta(t, 1.0, r.Max, 1e-12)

		r = plot.NewRange()
		f.UpdateRange(ctx, x, plot.ScopeSZ, r)
		assert.Equal(t, 5.0, r.Min)
		assert.Equal(t, 6.0, r.Max)
	})

	t.Run("other scopes leave the range alone", func(t *testing.T) {
		r := plot.NewRange()
		f.UpdateRange(ctx, x, plot.ScopeBoth, r)
		assert.False(t, r.Valid())
	})
}

func TestUpdateRange_DependentMode(t *testing.T) {
	settings := plot.DefaultSettings("wave")
	settings.Mode = plot.ModeXYOfZ
	settings.FnX = "2*cos(z)"
	settings.FnY = "sin(z)"
	settings.LineSteps = 65

	axes := axisMap{
		"x": stubAxis{name: "x", min: -1, max: 1},
		"y": stubAxis{name: "y", min: -1, max: 1},
		"z": stubAxis{name: "z", min: 0, max: 2 * math.Pi},
	}
	f := newFunction(t, settings, axes)
	ctx := context.Background()

	t.Run("affected axis folds its coordinate", func(t *testing.T) {
		r := plot.NewRange()
		f.UpdateRange(ctx, axes["x"], plot.ScopeBoth, r)
		require.True(t, r.Valid())
		assert.InDelta(t, -2.0, r.Min, 1e-9)
		assert.InDelta(t, 2.0, r.Max, 1e-9)
	})

	t.Run("independent axis is untouched", func(t *testing.T) {
		r := plot.NewRange()
		f.UpdateRange(ctx, axes["z"], plot.ScopeBoth, r)
		assert.False(t, r.Valid())
	})
}

func TestUpdateRange_Surface(t *testing.T) {
	settings := plot.DefaultSettings("dome")
	settings.Mode = plot.ModeZOfXY
	settings.FnZ = "sqrt(1 - x*x - y*y)"
	settings.SurfaceSteps = 5

	axes := axisMap{
		"x": stubAxis{name: "x", min: -2, max: 2},
		"y": stubAxis{name: "y", min: -2, max: 2},
		"z": stubAxis{name: "z", min: 0, max: 1},
	}
	f := newFunction(t, settings, axes)
	ctx := context.Background()

	t.Run("height axis folds finite heights only", func(t *testing.T) {
		r := plot.NewRange()
		f.UpdateRange(ctx, axes["z"], plot.ScopeBoth, r)
		require.True(t, r.Valid())
		assert.InDelta(t, 0.0, r.Min, 1e-12)
		assert.InDelta(t, 1.0, r.Max, 1e-12)
	})

	t.Run("input axes are untouched", func(t *testing.T) {
		r := plot.NewRange()
		f.UpdateRange(ctx, axes["x"], plot.ScopeBoth, r)
		assert.False(t, r.Valid())
	})
}

func TestUpdateRange_NothingToPlot(t *testing.T) {
	settings := plot.DefaultSettings("empty")
	settings.Mode = plot.ModeZOfXY
	settings.FnZ = ""
	f := newFunction(t, settings, unitAxes())

	r := plot.NewRange()
	f.UpdateRange(context.Background(), unitAxes()["z"], plot.ScopeBoth, r)
	assert.False(t, r.Valid())
}

func TestUpdateRange_BrokenExpression(t *testing.T) {
	settings := plot.DefaultSettings("broken")
	settings.Mode = plot.ModeZOfXY
	settings.FnZ = "x + q"
	f := newFunction(t, settings, unitAxes())

	r := plot.NewRange()
	f.UpdateRange(context.Background(), unitAxes()["z"], plot.ScopeBoth, r)
	assert.False(t, r.Valid())
}
