package plot_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/surfgrid/internal/expr"
	"github.com/vk/surfgrid/internal/plot"
)

// stubAxis is a fixed-range axis with a linear logical mapping.
type stubAxis struct {
	name     string
	log      bool
	min, max float64
}

func (a stubAxis) Name() string { return a.name }

func (a stubAxis) Log() bool { return a.log }

func (a stubAxis) PlottedRange() (float64, float64) { return a.min, a.max }

func (a stubAxis) DataToLogical(vals []float64) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = (v - a.min) / (a.max - a.min)
	}
	return out
}

// axisMap provides axes by name.
type axisMap map[string]plot.Axis

func (m axisMap) AxisForName(name string) (plot.Axis, bool) {
	ax, ok := m[name]
	return ax, ok
}

// unitAxes is the conventional x/y/z trio, each spanning [0, 1].
func unitAxes() axisMap {
	return axisMap{
		"x": stubAxis{name: "x", min: 0, max: 1},
		"y": stubAxis{name: "y", min: 0, max: 1},
		"z": stubAxis{name: "z", min: 0, max: 1},
	}
}

// newFunction builds a plot over the given axes, failing the test on
// invalid settings.
func newFunction(t *testing.T, settings plot.Settings, axes plot.AxisProvider) *plot.Function {
	t.Helper()
	f, err := plot.NewFunction(settings, expr.NewService(nil), axes)
	require.NoError(t, err)
	return f
}
