package plot

import (
	"context"

	"github.com/vk/surfgrid/internal/ctxlog"
	"github.com/vk/surfgrid/internal/sample"
)

// LineData holds the sampled coordinates of a line plot as three parallel
// arrays of LineSteps values. Undefined samples are NaN.
type LineData struct {
	X []float64
	Y []float64
	Z []float64
}

// coord returns the array for one coordinate.
func (ld *LineData) coord(v Var) []float64 {
	switch v {
	case VarX:
		return ld.X
	case VarY:
		return ld.Y
	default:
		return ld.Z
	}
}

// set installs vals as the array for one coordinate.
func (ld *LineData) set(v Var, vals []float64) {
	switch v {
	case VarX:
		ld.X = vals
	case VarY:
		ld.Y = vals
	default:
		ld.Z = vals
	}
}

// GridData holds the sampled height field of a surface plot. Heights is
// indexed (pos1, pos2); Steps1 and Steps2 are the grid positions along the
// two input axes. AxIdx gives the axis indices of the height, pos1 and pos2
// directions, and Dep names the height coordinate.
type GridData struct {
	Heights *sample.Grid
	Steps1  []float64
	Steps2  []float64
	AxIdx   [3]int
	Dep     Var
}

// LineVals samples the plot in a line mode. In the parametric mode all
// three expressions are evaluated over t in [0, 1]; in the dependent modes
// the two dependent expressions are evaluated over the independent axis's
// plotted range, spaced logarithmically when that axis is logarithmic.
// Reports false, meaning nothing to plot, for surface modes, missing or
// broken expressions and a missing axis.
func (f *Function) LineVals(ctx context.Context) (*LineData, bool) {
	s := f.settings
	steps := s.LineSteps

	if s.Mode == ModeParametric {
		px, okx := f.eval.Compile(ctx, s.FnX, "t")
		py, oky := f.eval.Compile(ctx, s.FnY, "t")
		pz, okz := f.eval.Compile(ctx, s.FnZ, "t")
		if !okx || !oky || !okz {
			return nil, false
		}

		bind := map[string][]float64{"t": sample.Linear(0, 1, steps)}
		valsx, okx := f.eval.Vector(ctx, px, bind, steps)
		valsy, oky := f.eval.Vector(ctx, py, bind, steps)
		valsz, okz := f.eval.Vector(ctx, pz, bind, steps)
		if !okx || !oky || !okz {
			return nil, false
		}
		return &LineData{X: valsx, Y: valsy, Z: valsz}, true
	}

	roles, ok := modeVars[s.Mode]
	if !ok {
		return nil, false
	}
	dep1, dep2, indep := roles[0], roles[1], roles[2]

	p1, ok1 := f.eval.Compile(ctx, s.fn(dep1), indep.String())
	p2, ok2 := f.eval.Compile(ctx, s.fn(dep2), indep.String())
	if !ok1 || !ok2 {
		return nil, false
	}

	ax, ok := f.fetchAxis(indep)
	if !ok {
		ctxlog.FromContext(ctx).Debug("plot axis not found", "plot", s.Name, "axis", s.axisName(indep))
		return nil, false
	}
	min, max := ax.PlottedRange()
	var evalpts []float64
	if ax.Log() {
		evalpts = sample.Log10(min, max, steps)
	} else {
		evalpts = sample.Linear(min, max, steps)
	}

	bind := map[string][]float64{indep.String(): evalpts}
	vals1, ok1 := f.eval.Vector(ctx, p1, bind, steps)
	vals2, ok2 := f.eval.Vector(ctx, p2, bind, steps)
	if !ok1 || !ok2 {
		return nil, false
	}

	ld := &LineData{}
	ld.set(dep1, vals1)
	ld.set(dep2, vals2)
	ld.set(indep, evalpts)
	return ld, true
}

// GridVals samples the plot in a surface mode: the dependent expression is
// evaluated over a SurfaceSteps×SurfaceSteps grid spanning the two input
// axes' plotted ranges. Reports false for line modes, missing or broken
// expressions and missing axes.
func (f *Function) GridVals(ctx context.Context) (*GridData, bool) {
	s := f.settings
	roles, ok := modeGrid[s.Mode]
	if !ok {
		return nil, false
	}

	prog, ok := f.eval.Compile(ctx, s.fn(roles.dep), roles.o1.String(), roles.o2.String())
	if !ok {
		return nil, false
	}

	ax1, ok1 := f.fetchAxis(roles.o1)
	ax2, ok2 := f.fetchAxis(roles.o2)
	if !ok1 || !ok2 {
		ctxlog.FromContext(ctx).Debug("plot axis not found", "plot", s.Name)
		return nil, false
	}

	min1, max1 := ax1.PlottedRange()
	min2, max2 := ax2.PlottedRange()
	steps := s.SurfaceSteps
	steps1, steps2, grid1, grid2 := sample.Grid2D(min1, max1, ax1.Log(), min2, max2, ax2.Log(), steps)

	heights, ok := f.eval.Surface(ctx, prog, map[string]*sample.Grid{
		roles.o1.String(): grid1,
		roles.o2.String(): grid2,
	}, steps)
	if !ok {
		return nil, false
	}

	return &GridData{
		Heights: heights,
		Steps1:  steps1,
		Steps2:  steps2,
		AxIdx:   [3]int{roles.dep.AxisIndex(), roles.o1.AxisIndex(), roles.o2.AxisIndex()},
		Dep:     roles.dep,
	}, true
}
